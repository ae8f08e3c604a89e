package console

import "fmt"

// ValidationError reports a client-side precondition failure; it is always
// raised before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// NotificationTestError carries the backend's human-readable reason for a
// failed test notification.
type NotificationTestError struct {
	Message string
}

func (e *NotificationTestError) Error() string {
	return fmt.Sprintf("Test failed: %s", e.Message)
}

// SaveError reports a settings save that stopped partway: Saved lists the
// keys already persisted before Key failed. There is no rollback.
type SaveError struct {
	Key   string
	Saved []string
	Err   error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save setting %s (after %d saved): %v", e.Key, len(e.Saved), e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
