package token

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is one lexical unit of input: its text, and whether it was written
// inside double quotes. Quoted tokens are always literal strings.
type Token struct {
	Text   string
	Quoted bool
}

// Word returns an unquoted token.
func Word(text string) Token { return Token{Text: text} }

// Quote returns a quoted token.
func Quote(text string) Token { return Token{Text: text, Quoted: true} }

// Is returns true if tok is the unquoted keyword kw.
func (tok Token) Is(kw string) bool { return !tok.Quoted && tok.Text == kw }

func (tok Token) String() string {
	if tok.Quoted {
		return strconv.Quote(tok.Text)
	}
	return tok.Text
}

// Split breaks a line of input into tokens. Whitespace outside of double
// quotes separates tokens; a quoted span becomes one token, even if empty. An
// unterminated quote runs to the end of the line and is still quoted.
func Split(line string) []Token {
	var (
		tokens  []Token
		sb      strings.Builder
		inQuote bool
	)
	flush := func(quoted bool) {
		if quoted || sb.Len() > 0 {
			tokens = append(tokens, Token{Text: sb.String(), Quoted: quoted})
			sb.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"' && !inQuote:
			flush(false)
			inQuote = true
		case r == '"':
			flush(true)
			inQuote = false
		case !inQuote && unicode.IsSpace(r):
			flush(false)
		default:
			sb.WriteRune(r)
		}
	}
	if sb.Len() > 0 {
		flush(inQuote)
	}
	return tokens
}

// IsInt returns true if text is a base 10, 64-bit signed integer literal.
func IsInt(text string) bool {
	_, err := strconv.ParseInt(text, 10, 64)
	return err == nil
}
