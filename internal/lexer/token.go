package lexer

import "fmt"

// Kind identifies the lexical class of a token. The set is closed; the
// parser switches over it exhaustively.
type Kind string

const (
	// Literals
	TokenString  Kind = "STRING"
	TokenNumber  Kind = "NUMBER"
	TokenBoolean Kind = "BOOL"
	TokenBuiltin Kind = "BUILTIN"

	TokenKeyword Kind = "KEYWORD"
	TokenIdent   Kind = "IDENT"

	// Brackets
	TokenParenLeft   Kind = "("
	TokenParenRight  Kind = ")"
	TokenCurlyLeft   Kind = "{"
	TokenCurlyRight  Kind = "}"
	TokenSquareLeft  Kind = "["
	TokenSquareRight Kind = "]"

	// Operators
	TokenAdd       Kind = "+"
	TokenSub       Kind = "-"
	TokenDiv       Kind = "/"
	TokenMul       Kind = "*"
	TokenAssign    Kind = "="
	TokenEq        Kind = "=="
	TokenUneq      Kind = "!="
	TokenLess      Kind = "<"
	TokenMore      Kind = ">"
	TokenLessEq    Kind = "<="
	TokenMoreEq    Kind = ">="
	TokenNot       Kind = "!"
	TokenSemicolon Kind = ";"
	TokenColon     Kind = ":"
	TokenMod       Kind = "%"
	TokenXor       Kind = "^"
	TokenAnd       Kind = "&"
	TokenOr        Kind = "|"
	TokenPeriod    Kind = "."
	TokenNewline   Kind = "NEWLINE"
	TokenComma     Kind = ","

	// Synthesized by the parser when indexing past the token slice; the
	// scanner never appends it.
	TokenEnd Kind = "EOF"
)

// Token is one lexical unit. Payload fields are only meaningful for the
// literal, keyword and identifier kinds; everything else is carried by Kind
// alone. Tokens are comparable, so value+payload equality is plain ==.
type Token struct {
	Kind Kind
	Text string
	Num  int64
	Bool bool
}

func (t Token) String() string {
	switch t.Kind {
	case TokenString:
		return fmt.Sprintf("%q", t.Text)
	case TokenNumber:
		return fmt.Sprintf("%d", t.Num)
	case TokenBoolean:
		return fmt.Sprintf("%t", t.Bool)
	case TokenKeyword, TokenIdent, TokenBuiltin:
		return t.Text
	default:
		return string(t.Kind)
	}
}

// IsKeyword reports whether t is the given keyword.
func (t Token) IsKeyword(name string) bool {
	return t.Kind == TokenKeyword && t.Text == name
}
