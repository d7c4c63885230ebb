package token

import (
	"fmt"
)

type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	IDENT
	INT

	ASSIGN
	PLUS

	COMMA
	SEMICOLON

	LPAREN
	RPAREN
	LBRACE
	RBRACE

	LET
	FUNCTION
)

func (k Kind) String() string {
	data := map[Kind]string{
		EOF:       "EOF",
		ILLEGAL:   "ILLEGAL",
		IDENT:     "IDENT",
		INT:       "INT",
		ASSIGN:    "ASSIGN",
		PLUS:      "PLUS",
		COMMA:     "COMMA",
		SEMICOLON: "SEMICOLON",
		LPAREN:    "LPAREN",
		RPAREN:    "RPAREN",
		LBRACE:    "LBRACE",
		RBRACE:    "RBRACE",
		LET:       "LET",
		FUNCTION:  "FUNCTION",
	}
	if name, ok := data[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit. Text carries the exact source text for IDENT
// and INT and is empty for every other kind; INT text is never converted
// to a number here.
type Token struct {
	Kind Kind
	Text string
}

func New(k Kind) Token {
	return Token{Kind: k}
}

func Ident(text string) Token {
	return Token{Kind: IDENT, Text: text}
}

func Int(text string) Token {
	return Token{Kind: INT, Text: text}
}

var keywords = map[string]Kind{
	"let": LET,
	"fn":  FUNCTION,
}

// LookupIdent returns the keyword token for text, or an IDENT carrying it.
func LookupIdent(text string) Token {
	if kind, ok := keywords[text]; ok {
		return New(kind)
	}
	return Ident(text)
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT, INT:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
