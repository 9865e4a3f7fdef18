package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/forsh/internal/logio"
	"github.com/jcorbin/forsh/internal/shellexec"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		if !t.Run(vmt.name, vmt.run) {
			return
		}
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []interface{}
	lines   []string
	batch   bool
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration
	wantErr error
	errText string

	exclusive bool
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withStack(values ...Value) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.stack = append(vm.stack, values...)
	}))
	return vmt
}

func (vmt vmTestCase) withWord(name string, word Word) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.dict[name] = word
	}))
	return vmt
}

// withLines evaluates each line through Eval, as the interactive shell does.
func (vmt vmTestCase) withLines(lines ...string) vmTestCase {
	vmt.lines = append(vmt.lines, lines...)
	return vmt
}

// withInput evaluates named input through Run, as a script.
func (vmt vmTestCase) withInput(name, input string) vmTestCase {
	vmt.opts = append(vmt.opts, WithNamedInput(name, strings.NewReader(input)))
	vmt.batch = true
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectErrorText(text string) vmTestCase {
	vmt.errText = text
	return vmt
}

func (vmt vmTestCase) expectStack(values ...Value) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if values == nil {
			values = []Value{}
		}
		stack := vm.Stack()
		if stack == nil {
			stack = []Value{}
		}
		assert.Equal(t, values, stack, "expected stack values")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithOutput(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectStderr(check func(t *testing.T, stderr string)) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithStderr(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		check(t, out.String())
	})
	return vmt
}

func (vmt vmTestCase) expectPending(pending bool) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, pending, vm.Pending(), "expected pending construct")
	})
	return vmt
}

func (vmt vmTestCase) expectNoFrames() vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Empty(t, vm.frames, "expected no loop frames")
		assert.Equal(t, 0, vm.depth, "expected no evaluation depth")
	})
	return vmt
}

func (vmt vmTestCase) expectWord(name string, word Word) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, word, vm.dict[name], "expected word %q", name)
	})
	return vmt
}

func (vmt vmTestCase) expectExitCode(code int) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		assert.Equal(t, code, vm.LastExitCode(), "expected last exit code")
	})
	return vmt
}

func (vmt vmTestCase) expectCalls(calls ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		fc, _ := vm.runner.(*fakeCommands)
		if assert.NotNil(t, fc, "expected fake command runner") {
			assert.Equal(t, calls, fc.calls, "expected command calls")
		}
	})
	return vmt
}

func (vmt vmTestCase) expectFile(name, content string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		b, err := os.ReadFile(name)
		if assert.NoError(t, err) {
			assert.Equal(t, content, string(b), "expected %v content", name)
		}
	})
	return vmt
}

func (vmt vmTestCase) expectThat(check func(t *testing.T, vm *VM)) vmTestCase {
	vmt.expect = append(vmt.expect, check)
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	var trace []string
	logf := func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	}
	vm := vmt.buildVM(t)
	WithLogf(logf).apply(vm)
	if vm.stderr == io.Discard {
		lw := &logio.Writer{Prefix: "stderr: ", Logf: logf}
		vm.stderr = lw
		vm.closers = append(vm.closers, lw)
	}
	vmt.runVMTest(context.Background(), t, vm)
	if t.Failed() {
		for _, line := range trace {
			t.Log(line)
		}
	}
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			vmt.dumpToTest(t, vm)
		}
	}()

	err := vmt.runVM(ctx, vm)
	switch {
	case vmt.wantErr != nil:
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
		if vmt.errText != "" {
			assert.EqualError(t, err, vmt.errText, "expected error text")
		}
	case vmt.errText != "":
		assert.EqualError(t, err, vmt.errText, "expected error text")
	default:
		assert.NoError(t, err, "unexpected evaluation error")
	}

	for _, expect := range vmt.expect {
		expect(t, vm)
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()
	if vmt.batch {
		return vm.Run(ctx)
	}
	for _, line := range vmt.lines {
		vm.logf(">", "line %q", line)
		if err := vm.Eval(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	fc := newFakeCommands()
	opts := VMOptions{
		WithRunner(fc),
		WithLookPath(fc.lookPath),
	}
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(vmt *vmTestCase, t *testing.T) VMOption:
			opts = append(opts, impl(&vmt, t))
		case VMOption:
			opts = append(opts, impl)
		default:
			t.Logf("unsupported vmTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opts...)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	lw := logio.Writer{Prefix: "dump: ", Logf: t.Logf}
	defer lw.Close()
	vmDumper{vm: vm, out: &lw}.dump()
}

//// fake commands

// fakeCommands stands in for PATH and process execution: commands live under
// /bin, and every call is recorded as "name args... <stdin".
type fakeCommands struct {
	cmds  map[string]func(args []string, stdin string) (string, int)
	calls []string
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{cmds: map[string]func(args []string, stdin string) (string, int){
		"/bin/echo": func(args []string, stdin string) (string, int) {
			return strings.Join(args, " ") + "\n", 0
		},
		"/bin/cat": func(args []string, stdin string) (string, int) {
			return stdin, 0
		},
		"/bin/upper": func(args []string, stdin string) (string, int) {
			return strings.ToUpper(stdin), 0
		},
		"/bin/seq": func(args []string, stdin string) (string, int) {
			var sb strings.Builder
			var n int
			if len(args) > 0 {
				fmt.Sscan(args[0], &n)
			}
			for i := 1; i <= n; i++ {
				fmt.Fprintln(&sb, i)
			}
			return sb.String(), 0
		},
		"/bin/false": func(args []string, stdin string) (string, int) {
			return "", 1
		},
	}}
}

func (fc *fakeCommands) Run(ctx context.Context, name string, args []string, stdin string) (shellexec.Result, error) {
	call := strings.Join(append([]string{name}, args...), " ")
	if stdin != "" {
		call += " <" + stdin
	}
	fc.calls = append(fc.calls, call)
	cmd, defined := fc.cmds[name]
	if !defined {
		return shellexec.Result{ExitCode: shellexec.ExitNotRun}, os.ErrNotExist
	}
	out, code := cmd(args, stdin)
	return shellexec.Result{Stdout: out, ExitCode: code}, nil
}

func (fc *fakeCommands) lookPath(name string) (string, bool) {
	path := name
	if !strings.HasPrefix(name, "/") {
		path = "/bin/" + name
	}
	_, defined := fc.cmds[path]
	return path, defined
}
