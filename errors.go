package main

import (
	"errors"
	"fmt"
)

var (
	errUnderflow   = errors.New("stack underflow")
	errNoBegin     = errors.New("no matching begin")
	errNoDo        = errors.New("no matching do")
	errNoWhile     = errors.New("no matching while")
	errMultiWhile  = errors.New("multiple while in one begin loop")
	errNotInLoop   = errors.New("not inside a loop")
	errNotNested   = errors.New("not inside a nested loop")
	errNoIndex     = errors.New("loop index not available (not a counted loop)")
	errDivZero     = errors.New("division by zero")
	errDepth       = errors.New("maximum evaluation depth exceeded")
	errNoDirectory = errors.New("directory stack empty")
)

// typeError reports an operand of the wrong kind; it names what was required.
type typeError string

func (te typeError) Error() string { return "requires " + string(te) }

// wordError attributes an error to the word that raised it.
type wordError struct {
	name string
	err  error
}

func (we wordError) Error() string { return fmt.Sprintf("%v: %v", we.name, we.err) }
func (we wordError) Unwrap() error { return we.err }

func wordErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return wordError{name, err}
}
