package main

var stackWords = []builtinDef{
	{"dup", "( a -- a a ) Duplicate top item", func(vm *VM, name string) error {
		val, ok := vm.peek()
		if !ok {
			return wordErr(name, errUnderflow)
		}
		vm.push(val)
		return nil
	}},

	{"swap", "( a b -- b a ) Swap top two items", func(vm *VM, name string) error {
		if err := vm.need(name, 2); err != nil {
			return err
		}
		n := len(vm.stack)
		vm.stack[n-2], vm.stack[n-1] = vm.stack[n-1], vm.stack[n-2]
		return nil
	}},

	{"drop", "( a -- ) Remove top item", func(vm *VM, name string) error {
		if _, ok := vm.pop(); !ok {
			return wordErr(name, errUnderflow)
		}
		return nil
	}},

	{"clear", "( ... -- ) Clear entire stack", func(vm *VM, name string) error {
		vm.stack = vm.stack[:0]
		return nil
	}},

	{"over", "( a b -- a b a ) Copy second item to top", func(vm *VM, name string) error {
		if err := vm.need(name, 2); err != nil {
			return err
		}
		vm.push(vm.stack[len(vm.stack)-2])
		return nil
	}},

	{"rot", "( a b c -- b c a ) Rotate top three items", func(vm *VM, name string) error {
		if err := vm.need(name, 3); err != nil {
			return err
		}
		n := len(vm.stack)
		a, b, c := vm.stack[n-3], vm.stack[n-2], vm.stack[n-1]
		vm.stack[n-3], vm.stack[n-2], vm.stack[n-1] = b, c, a
		return nil
	}},
}
