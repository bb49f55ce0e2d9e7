package uploader

import "fmt"

// ValidationError rejects a whole batch before any I/O happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid upload batch: %s", e.Reason)
}

// StorageWriteError reports a failed blob write for one file. If either of
// the two parallel writes fails the file fails; its sibling files continue.
type StorageWriteError struct {
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write %s: %v", e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// RecordInsertError reports a metadata insert that failed after both blobs
// were stored. The orphaned blobs are left in place.
type RecordInsertError struct {
	Err error
}

func (e *RecordInsertError) Error() string {
	return fmt.Sprintf("photo record insert: %v", e.Err)
}

func (e *RecordInsertError) Unwrap() error {
	return e.Err
}
