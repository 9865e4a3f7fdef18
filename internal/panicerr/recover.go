// Package panicerr turns a panic, or a runtime.Goexit, escaping an evaluation
// into an ordinary error, so that a bad builtin cannot take the shell down.
package panicerr

import "runtime/debug"

// Recover runs f on its own goroutine, so that runtime.Goexit comes back as
// an *Error too, not just a panic.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if val := recover(); val != nil {
				errch <- &Error{Name: name, Value: val, Stack: debug.Stack()}
			} else if !returned {
				errch <- &Error{Name: name, Goexit: true}
			}
		}()
		err := f()
		returned = true
		errch <- err
	}()
	return <-errch
}

// Guard runs f on the calling goroutine, converting a panic into an *Error;
// unlike Recover it does not survive runtime.Goexit.
func Guard(name string, f func() error) (err error) {
	defer func() {
		if val := recover(); val != nil {
			err = &Error{Name: name, Value: val, Stack: debug.Stack()}
		}
	}()
	return f()
}
