package feed

import "fmt"

// ChannelError reports a live channel that failed to establish or dropped.
// The listener retries after these; they are surfaced in logs rather than
// as user-facing failures.
type ChannelError struct {
	Op  string
	Err error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("live channel %s: %v", e.Op, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
