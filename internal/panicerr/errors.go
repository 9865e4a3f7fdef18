package panicerr

import (
	"errors"
	"fmt"
)

// Error reports a panic, or a runtime.Goexit, that escaped the named
// evaluation.
type Error struct {
	Name   string
	Value  interface{} // the panic value; nil after Goexit
	Stack  []byte
	Goexit bool
}

func (e *Error) Error() string {
	if e.Goexit {
		return e.Name + " called runtime.Goexit"
	}
	return fmt.Sprintf("%v panicked: %v", e.Name, e.Value)
}

// Unwrap returns the panic value when it was an error.
func (e *Error) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && !pe.Goexit
}

// PanicStack returns the stack trace captured with a recovered panic, or "".
func PanicStack(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
