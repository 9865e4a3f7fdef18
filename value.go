package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindString is raw text: user literals, command arguments, command names.
	KindString Kind = iota
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindOutput is text captured from an external command; it differs from
	// a string only in that exec feeds it to the next command as stdin.
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindOutput:
		return "output"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is one stack item.
type Value struct {
	Kind Kind
	Int  int64
	Str  string
}

// Int returns an integer Value.
func Int(n int64) Value { return Value{Kind: KindInt, Int: n} }

// Str returns a string Value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Output returns a captured command output Value.
func Output(s string) Value { return Value{Kind: KindOutput, Str: s} }

// Text returns the value as it prints: the decimal integer, or the string.
func (val Value) Text() string {
	if val.Kind == KindInt {
		return strconv.FormatInt(val.Int, 10)
	}
	return val.Str
}

func (val Value) String() string { return val.Text() }

// Format prints %v as Text, and %q in the form used by stack listings:
// "string", 42, «output».
func (val Value) Format(f fmt.State, c rune) {
	switch c {
	case 'q':
		switch val.Kind {
		case KindInt:
			fmt.Fprint(f, val.Int)
		case KindOutput:
			fmt.Fprintf(f, "«%s»", strings.TrimRight(val.Str, "\n"))
		default:
			fmt.Fprintf(f, "%q", val.Str)
		}
	case 'd':
		fmt.Fprint(f, val.Int)
	case 'v':
		if f.Flag('#') {
			switch val.Kind {
			case KindInt:
				fmt.Fprintf(f, "Int(%d)", val.Int)
			case KindOutput:
				fmt.Fprintf(f, "Output(%q)", val.Str)
			default:
				fmt.Fprintf(f, "Str(%q)", val.Str)
			}
			return
		}
		fmt.Fprint(f, val.Text())
	default:
		fmt.Fprint(f, val.Text())
	}
}

// brief renders a value compactly for trace lines: long or multi-line output
// is summarized.
func (val Value) brief() string {
	switch val.Kind {
	case KindInt:
		return strconv.FormatInt(val.Int, 10)
	case KindOutput:
		trimmed := strings.TrimRight(val.Str, "\n")
		if n := strings.Count(trimmed, "\n") + 1; n > 1 {
			return fmt.Sprintf("<<output %d lines>>", n)
		}
		if len(trimmed) > 30 {
			trimmed = trimmed[:27] + "..."
		}
		return "<<" + trimmed + ">>"
	default:
		return strconv.Quote(val.Str)
	}
}

// Equal compares two values of the same kind; ok is false for values of
// different kinds, which do not compare.
func (val Value) Equal(other Value) (equal, ok bool) {
	if val.Kind != other.Kind {
		return false, false
	}
	if val.Kind == KindInt {
		return val.Int == other.Int, true
	}
	return val.Str == other.Str, true
}

// lines splits output text into lines for each: line endings (\n or \r\n)
// terminate lines, a final unterminated line counts, and empty text has no
// lines at all.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, part := range parts {
		parts[i] = strings.TrimSuffix(part, "\r")
	}
	return parts
}
