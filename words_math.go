package main

func intOp(op func(a, b int64) int64) func(vm *VM, name string) error {
	return func(vm *VM, name string) error {
		ns, err := vm.popInts(name, 2)
		if err != nil {
			return err
		}
		vm.push(Int(op(ns[0], ns[1])))
		return nil
	}
}

// divOp is an intOp whose divisor must not be zero; the operands stay on the
// stack when it is.
func divOp(op func(a, b int64) []Value) func(vm *VM, name string) error {
	return func(vm *VM, name string) error {
		ns, err := vm.popInts(name, 2)
		if err != nil {
			return err
		}
		if ns[1] == 0 {
			vm.push(Int(ns[0]), Int(ns[1]))
			return wordErr(name, errDivZero)
		}
		vm.push(op(ns[0], ns[1])...)
		return nil
	}
}

func cmpOp(op func(a, b int64) bool) func(vm *VM, name string) error {
	return intOp(func(a, b int64) int64 { return boolInt(op(a, b)) })
}

func equalOp(want bool) func(vm *VM, name string) error {
	return func(vm *VM, name string) error {
		if err := vm.need(name, 2); err != nil {
			return err
		}
		n := len(vm.stack)
		equal, ok := vm.stack[n-2].Equal(vm.stack[n-1])
		if !ok {
			return wordErr(name, typeError("two values of the same type"))
		}
		vm.stack = vm.stack[:n-2]
		vm.push(Int(boolInt(equal == want)))
		return nil
	}
}

var mathWords = []builtinDef{
	{"+", "( a b -- a+b ) Add two numbers", intOp(func(a, b int64) int64 { return a + b })},
	{"-", "( a b -- a-b ) Subtract b from a", intOp(func(a, b int64) int64 { return a - b })},
	{"*", "( a b -- a*b ) Multiply two numbers", intOp(func(a, b int64) int64 { return a * b })},
	{"/", "( a b -- a/b ) Divide a by b", divOp(func(a, b int64) []Value {
		return []Value{Int(a / b)}
	})},
	{"mod", "( a b -- a%b ) Remainder of a/b", divOp(func(a, b int64) []Value {
		return []Value{Int(a % b)}
	})},
	{"/mod", "( a b -- quot rem ) Quotient and remainder", divOp(func(a, b int64) []Value {
		return []Value{Int(a / b), Int(a % b)}
	})},
	{"*/", "( a b c -- a*b/c ) Multiply then divide", func(vm *VM, name string) error {
		ns, err := vm.popInts(name, 3)
		if err != nil {
			return err
		}
		if ns[2] == 0 {
			vm.push(Int(ns[0]), Int(ns[1]), Int(ns[2]))
			return wordErr(name, errDivZero)
		}
		vm.push(Int(ns[0] * ns[1] / ns[2]))
		return nil
	}},

	{"=", "( a b -- flag ) Test equality", equalOp(true)},
	{"<>", "( a b -- flag ) Test inequality", equalOp(false)},
	{">", "( a b -- flag ) Test greater than", cmpOp(func(a, b int64) bool { return a > b })},
	{"<", "( a b -- flag ) Test less than", cmpOp(func(a, b int64) bool { return a < b })},
	{">=", "( a b -- flag ) Test greater or equal", cmpOp(func(a, b int64) bool { return a >= b })},
	{"<=", "( a b -- flag ) Test less or equal", cmpOp(func(a, b int64) bool { return a <= b })},

	{"and", "( a b -- flag ) Boolean AND", cmpOp(func(a, b int64) bool { return a != 0 && b != 0 })},
	{"or", "( a b -- flag ) Boolean OR", cmpOp(func(a, b int64) bool { return a != 0 || b != 0 })},
	{"xor", "( a b -- flag ) Boolean XOR", cmpOp(func(a, b int64) bool { return (a != 0) != (b != 0) })},
	{"not", "( a -- flag ) Boolean NOT", func(vm *VM, name string) error {
		n, err := vm.popInt(name)
		if err != nil {
			return err
		}
		vm.push(Int(boolInt(n == 0)))
		return nil
	}},

	{"concat", "( a b -- ab ) Concatenate two strings", func(vm *VM, name string) error {
		ss, err := vm.popStrings(name, 2)
		if err != nil {
			return err
		}
		vm.push(Str(ss[0] + ss[1]))
		return nil
	}},
}

var loopWords = []builtinDef{
	{"i", "( -- index ) Push current loop index", func(vm *VM, name string) error {
		n, err := vm.loopIndex(0)
		if err != nil {
			return wordErr(name, err)
		}
		vm.push(Int(n))
		return nil
	}},
	{"j", "( -- index ) Push outer loop index (nested loops)", func(vm *VM, name string) error {
		n, err := vm.loopIndex(1)
		if err != nil {
			return wordErr(name, err)
		}
		vm.push(Int(n))
		return nil
	}},
}

// loopIndex returns the current index of the loop frame outer levels below
// the innermost one.
func (vm *VM) loopIndex(outer int) (int64, error) {
	i := len(vm.frames) - 1 - outer
	if i < 0 {
		if outer > 0 {
			return 0, errNotNested
		}
		return 0, errNotInLoop
	}
	if frame := vm.frames[i]; frame.counted() {
		return frame.current, nil
	}
	return 0, errNoIndex
}
