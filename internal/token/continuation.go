package token

import "strings"

// Incomplete returns true if text leaves a construct open, so that a front end
// should read another line before evaluating it: an odd number of double
// quotes, or more openers than closers for any of
//   :            ;
//   begin        until repeat
//   do           loop +loop
//   if each      then
// Keywords inside quotes are not counted.
func Incomplete(text string) bool {
	if strings.Count(text, `"`)%2 != 0 {
		return true
	}
	var defs, begins, dos, conds int
	for _, tok := range Split(text) {
		if tok.Quoted {
			continue
		}
		switch tok.Text {
		case ":":
			defs++
		case ";":
			defs--
		case "begin":
			begins++
		case "until", "repeat":
			begins--
		case "do":
			dos++
		case "loop", "+loop":
			dos--
		case "if", "each":
			conds++
		case "then":
			conds--
		}
	}
	return defs > 0 || begins > 0 || dos > 0 || conds > 0
}
