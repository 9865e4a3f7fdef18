/* Package main: forsh -- a stack shell, almost FORTH

forsh reads words one at a time and applies them to a stack of values. Each
value is an integer, a string, or the output captured from an external
command. Words that the dictionary does not define are looked up on PATH and
run as commands: the command takes the values below it on the stack as its
arguments, and any output values as its standard input, leaving its own
output on the stack for the next command.

	-l ls   "docs" ls   ls "\.go$" grep   ls each . then

Integers and quoted strings push themselves; unquoted words are looked up in
the dictionary, then on PATH, then expanded as file globs, and otherwise push
themselves as strings.

Control constructs are collected as they are read, and may span lines:

	flag if ... then
	flag if ... else ... then
	begin ... flag until
	begin ... flag while ... repeat
	start limit do ... loop
	start limit do ... step +loop
	output each ... then

Within counted loops, i and j push the index of the innermost and next outer
loop. New words are defined with : name ... ; and run by replaying their
bodies, as if their text had been typed in place of the name.

The interactive shell shows how many values, and how many outputs, are on the
stack in its prompt, and prints any output left on top of the stack after
each line. With a script file, the -c flag, or input that is not a terminal,
lines are evaluated in order and the first error stops evaluation.
*/
package main
