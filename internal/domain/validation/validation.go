package validation

import (
	"errors"
	"fmt"
)

// Error marks input that failed validation. Handlers map it to a 400
// response; everything else unexpected becomes a 500.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Errorf builds a validation Error with a printf-style message.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is (or wraps) a validation Error.
func Is(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
