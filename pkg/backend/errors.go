package backend

import (
	"errors"
	"fmt"
)

// NetworkError covers both transport failures and non-2xx statuses; the
// console has no further classification available and treats them alike.
// StatusCode is 0 when the request never produced a response.
type NetworkError struct {
	Op         string
	Path       string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend %s %s: status %d", e.Op, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("backend %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
