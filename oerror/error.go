package oerror

import "fmt"

// OomphError is returned (or panicked with) when a locomotion component is wired up incorrectly. None
// of the per-tick operations return errors; an OomphError always points at construction-time misuse.
type OomphError struct {
	Err string
}

// New formats a new OomphError.
func New(format string, args ...any) *OomphError {
	if len(args) == 0 {
		return &OomphError{Err: format}
	}
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}
