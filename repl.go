package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"github.com/chzyer/readline"

	"github.com/jcorbin/forsh/internal/logio"
	"github.com/jcorbin/forsh/internal/token"
)

const continuePrompt = "...> "

type repl struct {
	vm     *VM
	log    *logio.Logger
	name   string
	rl     *readline.Instance
	buffer []string
}

func newREPL(vm *VM, log *logio.Logger, name, historyFile string) (*repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            stackPrompt(name, nil),
		HistoryFile:       historyFile,
		AutoComplete:      wordCompleter{vm},
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &repl{vm: vm, log: log, name: name, rl: rl}, nil
}

func (r *repl) Close() error { return r.rl.Close() }

// run reads input until end of file or an exit command. Lines accumulate
// while they leave a construct open, then evaluate together.
func (r *repl) run(ctx context.Context) error {
	for {
		if len(r.buffer) > 0 || r.vm.Pending() {
			r.rl.SetPrompt(continuePrompt)
		} else {
			r.rl.SetPrompt(stackPrompt(r.name, r.vm.stack))
		}

		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			r.buffer = r.buffer[:0]
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if len(r.buffer) == 0 && !r.vm.Pending() {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case "exit", "quit":
				return nil
			}
		}

		r.buffer = append(r.buffer, line)
		if token.Incomplete(strings.Join(r.buffer, "\n")) {
			continue
		}
		lines := r.buffer
		r.buffer = nil
		r.eval(ctx, lines)
	}
}

// eval evaluates the accumulated lines as one unit, so that a quoted string
// spanning lines stays one token; an interrupt cancels whatever command is
// running.
func (r *repl) eval(ctx context.Context, lines []string) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if err := r.vm.Eval(ctx, strings.Join(lines, "\n")); err != nil {
		r.log.ErrorIf(r.vm.endLine())
		r.log.Printf("ERROR", "%v", err)
		return
	}
	r.log.ErrorIf(r.vm.showOutput())
}

// showOutput prints any output value on top of the stack, leaving it there,
// and ends any partial output line.
func (vm *VM) showOutput() error {
	if top, ok := vm.peek(); ok && top.Kind == KindOutput {
		if err := vm.writeString(top.Str); err != nil {
			return err
		}
	}
	return vm.endLine()
}

// stackPrompt shows how many plain values and output values are on the
// stack: name[N:M]>
func stackPrompt(name string, stack []Value) string {
	var vals, outs int
	for _, val := range stack {
		if val.Kind == KindOutput {
			outs++
		} else {
			vals++
		}
	}
	switch {
	case vals == 0 && outs == 0:
		return name + "> "
	case outs == 0:
		return fmt.Sprintf("%v[%d]> ", name, vals)
	case vals == 0:
		return fmt.Sprintf("%v[:%d]> ", name, outs)
	default:
		return fmt.Sprintf("%v[%d:%d]> ", name, vals, outs)
	}
}

// wordCompleter completes the word under the cursor from the dictionary.
type wordCompleter struct{ vm *VM }

func (wc wordCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	for _, name := range wc.vm.wordNames() {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) {
			newLine = append(newLine, []rune(name[len(prefix):]+" "))
		}
	}
	return newLine, pos - start
}
