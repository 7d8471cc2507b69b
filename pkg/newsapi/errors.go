package newsapi

import (
	"errors"
	"fmt"
	"newsroom/pkg/serrors"
)

const (
	// DefaultErrorMessage is shown when the backend gave no message of its own.
	DefaultErrorMessage = "An error occurred. Please try again."
	// NetworkErrorMessage is shown when no response was received.
	NetworkErrorMessage = "Network error. Please check your connection."
)

// Error is a failed backend call. Status is serrors.StatusNetwork when no
// response was received.
type Error struct {
	Operation string
	Status    int
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Operation, e.Status, e.Message)
}

// NewError builds the error returned for a failed call, classified by status.
func NewError(operation string, status int, message string, cause error) error {
	if message == "" {
		message = DefaultErrorMessage
		if status == serrors.StatusNetwork {
			message = NetworkErrorMessage
		}
	}
	apiErr := &Error{Operation: operation, Status: status, Message: message}
	if cause != nil {
		return serrors.Wrap(serrors.KindFromStatus(status), errors.Join(apiErr, cause), "%s", message)
	}

	return serrors.Wrap(serrors.KindFromStatus(status), apiErr, "%s", message)
}

// Status recovers the backend status of err, or -1 when err did not come from a backend call.
func Status(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return -1
}

// IsUnauthorized reports whether the backend rejected the visitor's token.
func IsUnauthorized(err error) bool {
	return errors.Is(err, serrors.ErrUnauthorized)
}
