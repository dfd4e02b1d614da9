package schedule

import (
	"errors"
	"fmt"
)

const (
	codeNotFound = "notFound"
	codeBadInput = "badInput"
)

// ScheduleError carries a machine-readable code alongside the message.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(format string, args ...any) error {
	return &ScheduleError{Code: codeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewBadInputError(format string, args ...any) error {
	return &ScheduleError{Code: codeBadInput, Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a schedule not-found error.
func IsNotFound(err error) bool {
	var se *ScheduleError
	return errors.As(err, &se) && se.Code == codeNotFound
}

// IsBadInput reports whether err is a schedule bad-input error.
func IsBadInput(err error) bool {
	var se *ScheduleError
	return errors.As(err, &se) && se.Code == codeBadInput
}
