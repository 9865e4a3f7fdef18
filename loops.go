package main

import "github.com/jcorbin/forsh/internal/token"

// collectLoop buffers a loop body, tracking nested loop openers by depth,
// and runs the loop once its closing keyword arrives at depth 0.
func (vm *VM) collectLoop(lc *loopCollection, tok token.Token) error {
	if !tok.Quoted {
		switch tok.Text {
		case "begin", "do":
			lc.depth++

		case "while":
			if lc.depth == 0 && (lc.kind == beginUntil || lc.kind == beginWhile) {
				if lc.whiles == 0 {
					lc.kind = beginWhile
					lc.whileAt = len(lc.body)
				}
				lc.whiles++
			}

		case "until":
			if lc.depth == 0 && lc.kind == beginUntil {
				vm.mode = nil
				return vm.runBeginUntil(lc.body)
			}
			if lc.depth > 0 {
				lc.depth--
			}

		case "repeat":
			if lc.depth == 0 && lc.kind == beginWhile {
				vm.mode = nil
				return vm.runBeginWhile(lc)
			}
			if lc.depth > 0 {
				lc.depth--
			}

		case "loop", "+loop":
			if lc.depth == 0 && lc.kind == doLoop {
				vm.mode = nil
				if tok.Text == "+loop" {
					return vm.runDoPlusLoop(lc.body)
				}
				return vm.runDoLoop(lc.body)
			}
			if lc.depth > 0 {
				lc.depth--
			}
		}
	}
	lc.body = append(lc.body, tok)
	return nil
}

// truncateFrames drops any loop frames above mark, which is the frame count
// when a loop started.
func (vm *VM) truncateFrames(mark int) {
	if len(vm.frames) > mark {
		vm.frames = vm.frames[:mark]
	}
}

// runBeginUntil runs body at least once, then again while the flag it
// leaves is zero.
func (vm *VM) runBeginUntil(body []token.Token) error {
	mark := len(vm.frames)
	defer vm.truncateFrames(mark)
	vm.logf("<", "begin %v until", len(body))
	for {
		vm.frames = append(vm.frames, loopFrame{kind: beginUntil})
		err := vm.replayBody("begin", body)
		vm.truncateFrames(mark)
		if err != nil {
			return err
		}
		flag, err := vm.popInt("until")
		if err != nil {
			return err
		}
		if flag != 0 {
			return nil
		}
	}
}

// runBeginWhile evaluates the condition tokens before the while marker,
// running the tokens after it for as long as the condition is non-zero.
func (vm *VM) runBeginWhile(lc *loopCollection) error {
	if lc.whiles > 1 {
		return wordErr("repeat", errMultiWhile)
	}
	if lc.whileAt < 0 {
		return wordErr("repeat", errNoWhile)
	}
	cond, body := lc.body[:lc.whileAt], lc.body[lc.whileAt+1:]

	mark := len(vm.frames)
	defer vm.truncateFrames(mark)
	vm.logf("<", "begin %v while %v repeat", len(cond), len(body))
	for {
		vm.frames = append(vm.frames, loopFrame{kind: beginWhile})
		if err := vm.replayBody("begin", cond); err != nil {
			return err
		}
		flag, err := vm.popInt("while")
		if err != nil {
			return err
		}
		if flag == 0 {
			return nil
		}
		if err := vm.replayBody("repeat", body); err != nil {
			return err
		}
		vm.truncateFrames(mark)
	}
}

// popBounds pops the start and limit of a counted loop; the limit is on top.
func (vm *VM) popBounds(name string) (start, limit int64, err error) {
	ns, err := vm.popInts(name, 2)
	if err != nil {
		return 0, 0, err
	}
	return ns[0], ns[1], nil
}

// runDoLoop counts up from start to just below limit by one.
func (vm *VM) runDoLoop(body []token.Token) error {
	start, limit, err := vm.popBounds("do")
	if err != nil {
		return err
	}
	mark := len(vm.frames)
	defer vm.truncateFrames(mark)
	vm.logf("<", "do %v %v loop %v", start, limit, len(body))
	for idx := start; idx < limit; idx++ {
		vm.frames = append(vm.frames, loopFrame{
			kind:    doLoop,
			start:   start,
			limit:   limit,
			current: idx,
		})
		err := vm.replayBody("do", body)
		vm.truncateFrames(mark)
		if err != nil {
			return err
		}
	}
	return nil
}

// runDoPlusLoop counts from start towards limit, adding the step that each
// iteration leaves on the stack. The direction is fixed by the initial
// start and limit.
func (vm *VM) runDoPlusLoop(body []token.Token) error {
	start, limit, err := vm.popBounds("do")
	if err != nil {
		return err
	}
	mark := len(vm.frames)
	defer vm.truncateFrames(mark)
	vm.logf("<", "do %v %v +loop %v", start, limit, len(body))
	ascending := start < limit
	for idx := start; ascending && idx < limit || !ascending && idx > limit; {
		vm.frames = append(vm.frames, loopFrame{
			kind:    doPlusLoop,
			start:   start,
			limit:   limit,
			current: idx,
		})
		err := vm.replayBody("do", body)
		vm.truncateFrames(mark)
		if err != nil {
			return err
		}
		step, err := vm.popInt("+loop")
		if err != nil {
			return err
		}
		next := idx + step
		if step > 0 && next < idx || step < 0 && next > idx {
			return nil
		}
		idx = next
	}
	return nil
}

func (vm *VM) beginEach() error {
	vals, err := vm.popKinds("each", "output", KindOutput)
	if err != nil {
		return err
	}
	vm.logf(">", "each collect")
	vm.mode = &eachCollection{text: vals[0].Str}
	return nil
}

// collectEach buffers an each body up to its then, counting the if and each
// openers nested inside it.
func (vm *VM) collectEach(ec *eachCollection, tok token.Token) error {
	if !tok.Quoted {
		switch tok.Text {
		case "if", "each":
			ec.depth++
		case "then":
			if ec.depth == 0 {
				vm.mode = nil
				return vm.runEach(ec.text, ec.body)
			}
			ec.depth--
		}
	}
	ec.body = append(ec.body, tok)
	return nil
}

// runEach pushes every line of text as a string, running body after each.
func (vm *VM) runEach(text string, body []token.Token) error {
	ls := lines(text)
	vm.logf("<", "each %v lines %v", len(ls), len(body))
	for _, line := range ls {
		vm.push(Str(line))
		if err := vm.replayBody("each", body); err != nil {
			return err
		}
	}
	return nil
}
