package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
)

var errNotFound = errors.New("command not found")

var systemWords = []builtinDef{
	{"exec", "( stdin... args... [n] cmd -- output ) Execute shell command", func(vm *VM, name string) error {
		return vm.execCommand(name)
	}},

	{"?", "( -- code ) Push exit code of last command", func(vm *VM, name string) error {
		vm.push(Int(int64(vm.lastExit)))
		return nil
	}},

	{"hash", "( name -- ) Bind a command found on PATH as a word", func(vm *VM, name string) error {
		cmd, err := vm.popString(name)
		if err != nil {
			return err
		}
		path, found := vm.lookPath(cmd)
		if !found {
			return wordErr(name, fmt.Errorf("%v: %w", cmd, errNotFound))
		}
		vm.logf("#", "hash %v => %v", cmd, path)
		vm.dict[cmd] = ShellCmd(path)
		return nil
	}},

	{"cd", "( path -- ) Change directory", func(vm *VM, name string) error {
		dir, err := vm.popString(name)
		if err != nil {
			return err
		}
		return wordErr(name, os.Chdir(expandHome(dir)))
	}},

	{"pushd", "( path -- ) Push current dir and change to path", func(vm *VM, name string) error {
		dir, err := vm.popString(name)
		if err != nil {
			return err
		}
		cwd, err := os.Getwd()
		if err != nil {
			return wordErr(name, err)
		}
		if err := os.Chdir(expandHome(dir)); err != nil {
			return wordErr(name, err)
		}
		vm.dirs = append(vm.dirs, cwd)
		return nil
	}},

	{"popd", "( -- ) Pop and change to directory from stack", func(vm *VM, name string) error {
		i := len(vm.dirs) - 1
		if i < 0 {
			return wordErr(name, errNoDirectory)
		}
		dir := vm.dirs[i]
		vm.dirs = vm.dirs[:i]
		return wordErr(name, os.Chdir(dir))
	}},
}

var envWords = []builtinDef{
	{"getenv", "( key -- value ) Get environment variable", func(vm *VM, name string) error {
		key, err := vm.popString(name)
		if err != nil {
			return err
		}
		vm.push(Str(os.Getenv(key)))
		return nil
	}},

	{"setenv", "( value key -- ) Set environment variable", func(vm *VM, name string) error {
		ss, err := vm.popStrings(name, 2)
		if err != nil {
			return err
		}
		return wordErr(name, os.Setenv(ss[1], ss[0]))
	}},

	{"unsetenv", "( key -- ) Unset environment variable", func(vm *VM, name string) error {
		key, err := vm.popString(name)
		if err != nil {
			return err
		}
		return wordErr(name, os.Unsetenv(key))
	}},

	{"env-append", "( value key -- ) Append to colon-separated env var", envJoin(func(old, val string) string {
		return old + string(os.PathListSeparator) + val
	})},

	{"env-prepend", "( value key -- ) Prepend to colon-separated env var", envJoin(func(old, val string) string {
		return val + string(os.PathListSeparator) + old
	})},

	{"env", "( -- vars... ) Push all environment variables", func(vm *VM, name string) error {
		vars := os.Environ()
		sort.Strings(vars)
		for _, kv := range vars {
			vm.push(Str(kv))
		}
		return nil
	}},
}

func envJoin(join func(old, val string) string) func(vm *VM, name string) error {
	return func(vm *VM, name string) error {
		ss, err := vm.popStrings(name, 2)
		if err != nil {
			return err
		}
		val, key := ss[0], ss[1]
		if old, set := os.LookupEnv(key); set {
			val = join(old, val)
		}
		return wordErr(name, os.Setenv(key, val))
	}
}

// execCommand runs the command named on top of the stack. An integer below
// the name limits how many arguments are taken; string and integer values
// below that become arguments in stack order, and output values are
// concatenated as the command's stdin.
func (vm *VM) execCommand(name string) error {
	cmdVal, ok := vm.peek()
	switch {
	case !ok:
		return wordErr(name, errUnderflow)
	case cmdVal.Kind != KindString:
		return wordErr(name, typeError("string command name"))
	}
	vm.stack = vm.stack[:len(vm.stack)-1]
	cmd := cmdVal.Str

	limit := -1
	if top, ok := vm.peek(); ok && top.Kind == KindInt {
		vm.stack = vm.stack[:len(vm.stack)-1]
		limit = 0
		if top.Int > 0 {
			limit = int(top.Int)
		}
	}

	var args, stdin []string
	for len(vm.stack) > 0 {
		val := vm.stack[len(vm.stack)-1]
		if val.Kind == KindOutput {
			stdin = append(stdin, val.Str)
		} else if limit >= 0 && len(args) >= limit {
			break
		} else {
			args = append(args, val.Text())
		}
		vm.stack = vm.stack[:len(vm.stack)-1]
	}
	slices.Reverse(args)
	slices.Reverse(stdin)

	vm.logf("$", "%v %q stdin:%v", cmd, args, len(stdin))
	res, err := vm.runner.Run(vm.context(), cmd, args, strings.Join(stdin, ""))
	vm.lastExit = res.ExitCode
	if err != nil {
		return wordErr(name, fmt.Errorf("%v: %w", cmd, err))
	}
	vm.push(Output(res.Stdout))
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return home + rest
		}
	}
	return path
}
