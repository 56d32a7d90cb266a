package oerror

import "fmt"

type LocomotionError struct {
	Err string
}

// New formats an error message with the given arguments and returns it as a *LocomotionError.
func New(format string, args ...interface{}) *LocomotionError {
	if len(args) == 0 {
		return &LocomotionError{Err: format}
	}
	return &LocomotionError{Err: fmt.Sprintf(format, args...)}
}

func (e *LocomotionError) Error() string {
	return e.Err
}
