// Package shellexec runs external commands on behalf of the interpreter,
// capturing their standard output, and resolves command names against PATH.
package shellexec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// Exit codes reported when a command does not run to a normal exit.
const (
	ExitNotRun   = 127
	ExitSignaled = 128
)

// Result is the outcome of a command that was started.
type Result struct {
	Stdout   string
	ExitCode int
}

// Runner executes a command with the given arguments, feeding it stdin if
// non-empty. A non-nil error means the command could not be run at all;
// commands that run and fail are reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdin string) (Result, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct {
	// Stderr receives the child's standard error; nil discards it.
	Stderr io.Writer

	// Dir is the working directory of the child; empty means the current one.
	Dir string
}

// Run starts the command, writes stdin from a separate goroutine so that a
// child filling its output pipe cannot deadlock against us, and waits.
func (ex Exec) Run(ctx context.Context, name string, args []string, stdin string) (Result, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = ex.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = ex.Stderr

	var stdinPipe io.WriteCloser
	if stdin != "" {
		w, err := cmd.StdinPipe()
		if err != nil {
			return Result{ExitCode: ExitNotRun}, err
		}
		stdinPipe = w
	}

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: ExitNotRun}, err
	}

	var eg errgroup.Group
	if stdinPipe != nil {
		eg.Go(func() error {
			defer stdinPipe.Close()
			_, err := io.WriteString(stdinPipe, stdin)
			if isClosedPipe(err) {
				// child exited without reading all of its input
				err = nil
			}
			return err
		})
	}

	waitErr := cmd.Wait()
	writeErr := eg.Wait()

	res := Result{Stdout: stdout.String()}
	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if res.ExitCode < 0 {
			res.ExitCode = ExitSignaled
		}
	default:
		res.ExitCode = ExitNotRun
		return res, waitErr
	}
	if ctx.Err() != nil {
		return res, ctx.Err()
	}
	return res, writeErr
}

func isClosedPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
