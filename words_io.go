package main

import (
	"fmt"
	"os"
	"strings"
)

var ioWords = []builtinDef{
	{".", "( a -- ) Print and remove top item with newline", func(vm *VM, name string) error {
		val, ok := vm.pop()
		if !ok {
			return wordErr(name, errUnderflow)
		}
		return vm.printf("%v\n", val)
	}},

	{"type", "( a -- ) Print and remove top item without newline", func(vm *VM, name string) error {
		val, ok := vm.pop()
		if !ok {
			return wordErr(name, errUnderflow)
		}
		return vm.writeString(val.Text())
	}},

	{".s", "( -- ) Display entire stack without modifying it", func(vm *VM, name string) error {
		return vm.writeString(formatStack(vm.stack) + "\n")
	}},

	{">output", "( string -- output ) Convert string to output for piping", func(vm *VM, name string) error {
		val, ok := vm.peek()
		switch {
		case !ok:
			return wordErr(name, errUnderflow)
		case val.Kind == KindInt:
			return wordErr(name, typeError("string"))
		}
		vm.stack[len(vm.stack)-1] = Output(val.Str)
		return nil
	}},

	{">string", "( output/int -- string ) Convert output or integer to string", func(vm *VM, name string) error {
		val, ok := vm.peek()
		if !ok {
			return wordErr(name, errUnderflow)
		}
		vm.stack[len(vm.stack)-1] = Str(val.Text())
		return nil
	}},

	{">file", "( content filename -- ) Write content to file", fileWriter(os.O_TRUNC)},
	{">>file", "( content filename -- ) Append content to file", fileWriter(os.O_APPEND)},
}

// formatStack lists values bottom first, prefixed by their count: <3> "a" 1 «out»
func formatStack(vals []Value) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<%d>", len(vals))
	for _, val := range vals {
		fmt.Fprintf(&sb, " %q", val)
	}
	return sb.String()
}

func fileWriter(flag int) func(vm *VM, name string) error {
	return func(vm *VM, name string) error {
		if err := vm.need(name, 2); err != nil {
			return err
		}
		n := len(vm.stack)
		content, file := vm.stack[n-2], vm.stack[n-1]
		if file.Kind != KindString {
			return wordErr(name, typeError("string filename"))
		}
		vm.stack = vm.stack[:n-2]

		f, err := os.OpenFile(expandHome(file.Str), os.O_WRONLY|os.O_CREATE|flag, 0o644)
		if err != nil {
			return wordErr(name, err)
		}
		_, err = f.WriteString(content.Text())
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return wordErr(name, err)
	}
}
