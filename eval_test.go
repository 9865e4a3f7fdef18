package main

import (
	"context"
	"testing"
	"time"
)

func Test_eval(t *testing.T) {
	vmTestCases{
		// literals
		vmTest("literals").withLines(`1 -2 "hi" foo`).expectStack(Int(1), Int(-2), Str("hi"), Str("foo")),
		vmTest("quoted keywords").withLines(`"if" "dup" "42"`).expectStack(Str("if"), Str("dup"), Str("42")),
		vmTest("empty quote").withLines(`""`).expectStack(Str("")),

		// conditionals
		vmTest("if true").withLines(`1 if "yes" else "no" then`).expectStack(Str("yes")),
		vmTest("if false").withLines(`0 if "yes" else "no" then`).expectStack(Str("no")),
		vmTest("if without else").withLines(`0 if 1 then 2`).expectStack(Int(2)),
		vmTest("nested if skipped").withLines(`0 if 1 if 99 then then`).expectStack(),
		vmTest("nested else in skipped branch").withLines(`1 if 0 if 98 else 99 then else 100 then`).expectStack(Int(99)),
		vmTest("else inside skipped true branch").withLines(`0 if 1 if 2 else 3 then else 4 then`).expectStack(Int(4)),
		vmTest("quoted then does not close").withLines(`0 if "then" 1 then 2`).expectStack(Int(2)),
		vmTest("if spans lines").withLines(`0 if`, `1`, `else 2`, `then`).expectStack(Int(2)).expectPending(false),
		vmTest("if on string").withStack(Str("x")).withLines(`if`).
			expectError(typeError("integer")).
			expectErrorText("if: requires integer").
			expectStack(Str("x")),
		vmTest("if underflow").withLines(`if`).expectError(errUnderflow).expectErrorText("if: stack underflow"),

		// definitions
		vmTest("define square").withLines(`: square dup * ; 5 square`).expectStack(Int(25)),
		vmTest("define mid line").withLines(`5 : square dup * ; square`).expectStack(Int(25)),
		vmTest("define over lines").withLines(`: square`, `dup *`, `;`, `7 square`).expectStack(Int(49)),
		vmTest("define pending").withLines(`: square dup`).expectPending(true),
		vmTest("redefine").withLines(`: foo 1 ; : foo 2 ; foo`).expectStack(Int(2)).
			expectWord("foo", Defined{"2"}),
		vmTest("define replays unquoted").withLines(`: greet "dup" ; 7 greet`).expectStack(Int(7), Int(7)),
		vmTest("define calls define").withLines(`: sq dup * ; : quad sq sq ; 3 quad`).expectStack(Int(81)),
		vmTest("define empty").withLines(`: nothing ; 1 nothing`).expectStack(Int(1)).expectWord("nothing", Defined(nil)),
		vmTest("recursion limit").withOptions(WithMaxDepth(8)).
			withLines(`: recurse recurse ;`, `recurse`).
			expectError(errDepth).
			expectNoFrames(),

		// begin until
		vmTest("begin until once").withStack(Int(1)).withLines(`begin 7 1 until`).expectStack(Int(1), Int(7)),
		vmTest("begin until count").withLines(`0 begin 1 + dup 5 = until`).expectStack(Int(5)),
		vmTest("begin until string condition").withLines(`begin "x" until`).
			expectError(typeError("integer")).
			expectErrorText("until: requires integer").
			expectStack(Str("x")).
			expectNoFrames(),
		vmTest("begin until no condition").withLines(`begin until`).expectError(errUnderflow),
		vmTest("begin until cancelled").withTimeout(50*time.Millisecond).
			withLines(`begin 0 until`).
			expectError(context.DeadlineExceeded).
			expectNoFrames(),

		// begin while repeat
		vmTest("begin while countdown").withLines(`5 begin dup 0 > while 1 - repeat`).expectStack(Int(0)),
		vmTest("begin while never").withLines(`begin 0 while 99 repeat`).expectStack(),
		vmTest("begin while nested begin").withLines(`3 begin dup 0 > while begin 1 until 1 - repeat`).expectStack(Int(0)),
		vmTest("begin while over lines").withLines(`3 begin`, `dup 0 >`, `while`, `1 -`, `repeat`).expectStack(Int(0)),
		vmTest("multiple while").withLines(`begin 1 while 2 while 3 repeat`).
			expectError(errMultiWhile).
			expectErrorText("repeat: multiple while in one begin loop"),
		vmTest("quoted while").withLines(`1 begin "while" swap 1 until`).expectStack(Str("while"), Int(1)),

		// do loop
		vmTest("do loop sum").withLines(`0 1 6 do i + loop`).expectStack(Int(15)),
		vmTest("do loop empty range").withLines(`3 3 do 99 loop`).expectStack(),
		vmTest("do loop inverted range").withLines(`5 1 do 99 loop`).expectStack(),
		vmTest("do loop nested").withLines(`0 2 do 0 2 do j i loop loop`).
			expectStack(Int(0), Int(0), Int(0), Int(1), Int(1), Int(0), Int(1), Int(1)),
		vmTest("do loop nested begin").withLines(`0 2 do 3 begin 1 - dup 0 = until drop i loop`).
			expectStack(Int(0), Int(1)),
		vmTest("do loop over lines").withLines(`0 1 4 do`, `i +`, `loop`).expectStack(Int(6)).expectPending(false),
		vmTest("do loop pending").withLines(`1 4 do i`).expectPending(true).expectStack(Int(1), Int(4)),
		vmTest("do loop quoted loop").withLines(`0 2 do "loop" loop`).expectStack(Str("loop"), Str("loop")),
		vmTest("do loop bad bounds").withLines(`"a" 3 do i loop`).
			expectError(typeError("two integers")).
			expectErrorText("do: requires two integers").
			expectStack(Str("a"), Int(3)),
		vmTest("do loop unclosed body").withLines(`0 2 do 0 if loop`).
			expectErrorText("do: unclosed if in body").
			expectPending(false).
			expectNoFrames(),
		vmTest("do loop body error").withLines(`0 3 do i "x" + loop`).
			expectError(typeError("two integers")).
			expectStack(Int(0), Str("x")).
			expectNoFrames(),

		// do +loop
		vmTest("do +loop up").withLines(`0 10 do i 3 +loop`).expectStack(Int(0), Int(3), Int(6), Int(9)),
		vmTest("do +loop down").withLines(`10 0 do i -3 +loop`).expectStack(Int(10), Int(7), Int(4), Int(1)),
		vmTest("do +loop empty").withLines(`4 4 do i 1 +loop`).expectStack(),
		vmTest("do +loop overflow").withLines(`9223372036854775806 9223372036854775807 do i 2 +loop`).
			expectStack(Int(9223372036854775806)),
		vmTest("do +loop bad step").withLines(`0 3 do "s" +loop`).
			expectErrorText("+loop: requires integer").
			expectStack(Str("s")).
			expectNoFrames(),

		// loop indices
		vmTest("i outside loop").withLines(`i`).expectError(errNotInLoop).expectErrorText("i: not inside a loop"),
		vmTest("j outside loop").withLines(`j`).expectError(errNotNested),
		vmTest("j in single loop").withLines(`0 1 do j loop`).expectError(errNotNested).expectNoFrames(),
		vmTest("i in begin loop").withLines(`0 1 do begin i 1 until loop`).
			expectError(errNoIndex).
			expectErrorText("i: loop index not available (not a counted loop)"),
		vmTest("j over begin loop").withLines(`5 8 do begin j 1 until loop`).expectStack(Int(5), Int(6), Int(7)),

		// unbalanced
		vmTest("bare until").withLines(`until`).expectError(errNoBegin).expectErrorText("until: no matching begin"),
		vmTest("bare repeat").withLines(`repeat`).expectError(errNoBegin),
		vmTest("bare while").withLines(`1 while`).expectError(errNoBegin).expectStack(Int(1)),
		vmTest("bare loop").withLines(`loop`).expectError(errNoDo).expectErrorText("loop: no matching do"),
		vmTest("bare +loop").withLines(`+loop`).expectError(errNoDo),
		vmTest("bare then").withLines(`1 then 2`).expectStack(Int(1), Int(2)),

		// each
		vmTest("each lines").withStack(Output("one\ntwo\nthree")).withLines(`each then`).
			expectStack(Str("one"), Str("two"), Str("three")),
		vmTest("each blank lines").withStack(Output("a\n\nb\r\n")).withLines(`each then`).
			expectStack(Str("a"), Str(""), Str("b")),
		vmTest("each empty").withStack(Int(1), Output("")).withLines(`each 99 then`).expectStack(Int(1)),
		vmTest("each body").withStack(Output("a\nb\n")).withLines(`each "x" concat then`).
			expectStack(Str("ax"), Str("bx")),
		vmTest("each nested if").withStack(Output("1\n0\n2\n")).
			withLines(`each dup "0" = if drop else "!" concat then then`).
			expectStack(Str("1!"), Str("2!")),
		vmTest("each over lines").withStack(Output("a\nb\n")).withLines(`each`, `"-" concat`, `then`).
			expectStack(Str("a-"), Str("b-")),
		vmTest("each not nested in skip").withLines(`0 if each 1 then 2 then 3`).expectStack(Int(2), Int(3)),
		vmTest("each on string").withStack(Str("x")).withLines(`each`).
			expectError(typeError("output")).
			expectErrorText("each: requires output").
			expectStack(Str("x")),
		vmTest("each error").withStack(Output("a\nb\n")).withLines(`each 1 + then`).
			expectError(typeError("two integers")).
			expectStack(Str("a"), Int(1)),
	}.run(t)
}

func Test_batch(t *testing.T) {
	vmTestCases{
		vmTest("script").withInput("script.fs", ": sq dup * ;\n3 sq\n\n4 sq\n").expectStack(Int(9), Int(16)),
		vmTest("script error").withInput("script.fs", "1 2 +\nfoo +\n5\n").
			expectError(typeError("two integers")).
			expectErrorText("script.fs:2: +: requires two integers").
			expectStack(Int(3), Str("foo")),
		vmTest("script spanning lines").withInput("script.fs", "0\n1 4 do\n  i +\nloop\n").expectStack(Int(6)),
		vmTest("script unclosed").withInput("script.fs", "1\n0 if 2\n").
			expectErrorText("script.fs:2: unexpected end of input: unclosed if").
			expectStack(Int(1)).
			expectPending(false),
	}.run(t)
}
