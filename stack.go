package main

func (vm *VM) push(vals ...Value) { vm.stack = append(vm.stack, vals...) }

func (vm *VM) pop() (val Value, ok bool) {
	i := len(vm.stack) - 1
	if i < 0 {
		return Value{}, false
	}
	val, vm.stack = vm.stack[i], vm.stack[:i]
	return val, true
}

func (vm *VM) peek() (val Value, ok bool) {
	if i := len(vm.stack) - 1; i >= 0 {
		return vm.stack[i], true
	}
	return Value{}, false
}

// need returns an underflow error unless the stack holds at least n values.
func (vm *VM) need(name string, n int) error {
	if len(vm.stack) < n {
		return wordErr(name, errUnderflow)
	}
	return nil
}

// popKinds pops len(kinds) values, deepest first in the result, requiring each
// to be of the corresponding kind. On any mismatch nothing is popped.
func (vm *VM) popKinds(name string, want typeError, kinds ...Kind) ([]Value, error) {
	if err := vm.need(name, len(kinds)); err != nil {
		return nil, err
	}
	base := len(vm.stack) - len(kinds)
	vals := vm.stack[base:]
	for i, kind := range kinds {
		if vals[i].Kind != kind {
			return nil, wordErr(name, want)
		}
	}
	out := append([]Value(nil), vals...)
	vm.stack = vm.stack[:base]
	return out, nil
}

func (vm *VM) popInt(name string) (int64, error) {
	vals, err := vm.popKinds(name, "integer", KindInt)
	if err != nil {
		return 0, err
	}
	return vals[0].Int, nil
}

// popInts pops n integers, returned in stack order (deepest first).
func (vm *VM) popInts(name string, n int) ([]int64, error) {
	kinds := make([]Kind, n)
	for i := range kinds {
		kinds[i] = KindInt
	}
	want := typeError("integer")
	switch n {
	case 2:
		want = "two integers"
	case 3:
		want = "three integers"
	}
	vals, err := vm.popKinds(name, want, kinds...)
	if err != nil {
		return nil, err
	}
	ns := make([]int64, n)
	for i, val := range vals {
		ns[i] = val.Int
	}
	return ns, nil
}

func (vm *VM) popString(name string) (string, error) {
	vals, err := vm.popKinds(name, "string", KindString)
	if err != nil {
		return "", err
	}
	return vals[0].Str, nil
}

func (vm *VM) popStrings(name string, n int) ([]string, error) {
	kinds := make([]Kind, n)
	for i := range kinds {
		kinds[i] = KindString
	}
	want := typeError("string")
	if n == 2 {
		want = "two strings"
	}
	vals, err := vm.popKinds(name, want, kinds...)
	if err != nil {
		return nil, err
	}
	ss := make([]string, n)
	for i, val := range vals {
		ss[i] = val.Str
	}
	return ss, nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
