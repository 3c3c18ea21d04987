package lexer

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

var keywords = map[string]bool{
	"let":    true,
	"mut":    true,
	"pub":    true,
	"fn":     true,
	"struct": true,
	"enum":   true,
	"from":   true,
	"import": true,
	"or":     true,
	"and":    true,
}

// Scanner converts raw source text into a flat token stream. It is purely
// functional over its input: scanning the same source twice yields identical
// slices.
type Scanner struct {
	source  string
	current int
	line    int
	tokens  []Token
}

func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Scan tokenizes the whole source up front. Newlines are significant as
// statement separators and emit their own token; all other whitespace is
// skipped. The returned slice carries no end-of-stream sentinel.
func (s *Scanner) Scan() ([]Token, error) {
	for s.current < len(s.source) {
		c := s.source[s.current]

		if c == '\n' {
			s.tokens = append(s.tokens, Token{Kind: TokenNewline})
			s.line++
			s.current++
			continue
		}
		if unicode.IsSpace(rune(c)) {
			s.current++
			continue
		}

		switch {
		case isAlpha(c):
			s.identifier()
		case isDigit(c):
			if err := s.number(); err != nil {
				return nil, err
			}
		case c == '"':
			s.string()
		default:
			kind, ok := operatorKind(c)
			if !ok {
				return nil, fmt.Errorf("line %d: unexpected character %q", s.line, c)
			}
			s.tokens = append(s.tokens, Token{Kind: kind})
			s.current++
		}
	}
	return s.tokens, nil
}

func operatorKind(c byte) (Kind, bool) {
	switch c {
	case '.':
		return TokenPeriod, true
	case '+':
		return TokenAdd, true
	case '-':
		return TokenSub, true
	case '*':
		return TokenMul, true
	case '/':
		return TokenDiv, true
	case '!':
		return TokenNot, true
	case '%':
		return TokenMod, true
	case ':':
		return TokenColon, true
	case ';':
		return TokenSemicolon, true
	case '=':
		return TokenAssign, true
	case '{':
		return TokenCurlyLeft, true
	case '}':
		return TokenCurlyRight, true
	case '(':
		return TokenParenLeft, true
	case ')':
		return TokenParenRight, true
	case '[':
		return TokenSquareLeft, true
	case ']':
		return TokenSquareRight, true
	case '>':
		return TokenMore, true
	case '<':
		return TokenLess, true
	case '^':
		return TokenXor, true
	case '|':
		return TokenOr, true
	case '&':
		return TokenAnd, true
	case ',':
		return TokenComma, true
	}
	return "", false
}

// identifier consumes a maximal run of ASCII letters/underscore. Digits are
// not part of identifiers in this language. The run is classified against
// the keyword set and the boolean literals.
func (s *Scanner) identifier() {
	start := s.current
	for s.current < len(s.source) && isAlpha(s.source[s.current]) {
		s.current++
	}
	text := s.source[start:s.current]

	switch {
	case text == "true" || text == "false":
		s.tokens = append(s.tokens, Token{Kind: TokenBoolean, Text: text, Bool: text == "true"})
	case keywords[text]:
		s.tokens = append(s.tokens, Token{Kind: TokenKeyword, Text: text})
	default:
		s.tokens = append(s.tokens, Token{Kind: TokenIdent, Text: text})
	}
}

// number consumes a decimal digit run. A literal that does not fit in an
// int64 is a fatal scan error.
func (s *Scanner) number() error {
	var n int64
	for s.current < len(s.source) && isDigit(s.source[s.current]) {
		d := int64(s.source[s.current] - '0')
		if n > (math.MaxInt64-d)/10 {
			return fmt.Errorf("line %d: integer literal overflows a 64-bit integer", s.line)
		}
		n = n*10 + d
		s.current++
	}
	s.tokens = append(s.tokens, Token{Kind: TokenNumber, Num: n})
	return nil
}

// string consumes a quoted literal. A backslash escapes exactly the next
// character: the backslash is dropped and the character is emitted literally,
// so an escaped quote does not terminate the literal and no other escape
// sequence is decoded. An unterminated literal yields the content scanned so
// far.
func (s *Scanner) string() {
	s.current++ // opening quote
	var b strings.Builder
	escaping := false

	for s.current < len(s.source) {
		c := s.source[s.current]
		if escaping {
			b.WriteByte(c)
			escaping = false
			s.current++
			continue
		}
		if c == '\\' {
			escaping = true
			s.current++
			continue
		}
		if c == '"' {
			s.current++ // closing quote
			break
		}
		if c == '\n' {
			s.line++
		}
		b.WriteByte(c)
		s.current++
	}

	s.tokens = append(s.tokens, Token{Kind: TokenString, Text: b.String()})
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
