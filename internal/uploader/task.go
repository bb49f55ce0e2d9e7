package uploader

// Status is the lifecycle of one in-flight file.
type Status string

const (
	StatusCompressing Status = "compressing"
	StatusUploading   Status = "uploading"
	StatusCompleted   Status = "completed"
	StatusError       Status = "error"
)

// Terminal reports whether the status is final for a file.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Task tracks one file transfer for UI feedback. Tasks are ephemeral: they
// live only as long as their batch and are never persisted.
type Task struct {
	ID       string `json:"task_id"`
	FileName string `json:"file_name"`
	Progress int    `json:"progress"`
	Status   Status `json:"status"`
	Error    string `json:"error,omitempty"`
}

// Update is one observed task transition, emitted on the batch stream.
type Update struct {
	BatchID string `json:"batch_id"`
	Task    Task   `json:"task"`
}
