package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/forsh/internal/token"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	// builtins lists builtin words too, not just user ones.
	builtins bool
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	dump.dumpStack()
	dump.dumpMode()
	dump.dumpFrames()
	fmt.Fprintf(dump.out, "  exit: %v\n", dump.vm.lastExit)
	if len(dump.vm.dirs) > 0 {
		fmt.Fprintf(dump.out, "  dirs: %v\n", dump.vm.dirs)
	}
	dump.dumpDict()
}

func (dump vmDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: %v\n", formatStack(dump.vm.stack))
}

func (dump vmDumper) dumpMode() {
	var buf bytes.Buffer
	switch m := dump.vm.mode.(type) {
	case nil:
		return
	case *eachCollection:
		fmt.Fprintf(&buf, "each over %v lines, depth %v:", len(lines(m.text)), m.depth)
		dump.formatTokens(&buf, m.body)
	case *loopCollection:
		fmt.Fprintf(&buf, "%v depth %v:", m.kind, m.depth)
		dump.formatTokens(&buf, m.body)
	case *definition:
		if m.named {
			fmt.Fprintf(&buf, "defining %v:", m.name)
		} else {
			buf.WriteString("defining (name pending):")
		}
		for _, text := range m.body {
			buf.WriteByte(' ')
			buf.WriteString(text)
		}
	case *skipping:
		target := "else"
		if m.target == skipToThen {
			target = "then"
		}
		fmt.Fprintf(&buf, "skipping to %v, depth %v", target, m.depth)
	}
	fmt.Fprintf(dump.out, "  pending: %s\n", buf.Bytes())
}

func (dump vmDumper) formatTokens(buf *bytes.Buffer, body []token.Token) {
	for _, tok := range body {
		buf.WriteByte(' ')
		buf.WriteString(tok.String())
	}
}

func (dump vmDumper) dumpFrames() {
	if len(dump.vm.frames) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "  loops:\n")
	for i := len(dump.vm.frames) - 1; i >= 0; i-- {
		frame := dump.vm.frames[i]
		if frame.counted() {
			fmt.Fprintf(dump.out, "    %v %v..%v @%v\n", frame.kind, frame.start, frame.limit, frame.current)
		} else {
			fmt.Fprintf(dump.out, "    %v\n", frame.kind)
		}
	}
}

func (dump vmDumper) dumpDict() {
	var builtins []string
	for _, name := range dump.vm.wordNames() {
		switch word := dump.vm.dict[name].(type) {
		case Defined:
			fmt.Fprintf(dump.out, "  : %v %v ;\n", name, strings.Join(word, " "))
		case ShellCmd:
			fmt.Fprintf(dump.out, "  hash %v => %v\n", name, string(word))
		default:
			builtins = append(builtins, name)
		}
	}
	if dump.builtins {
		fmt.Fprintf(dump.out, "  builtins: %v\n", strings.Join(builtins, " "))
	} else {
		fmt.Fprintf(dump.out, "  builtins: %v words\n", len(builtins))
	}
}
