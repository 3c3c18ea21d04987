package lexer

import (
	"slices"
	"strings"
	"testing"
)

func scan(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := NewScanner(source).Scan()
	if err != nil {
		t.Fatalf("scan %q: %v", source, err)
	}
	return tokens
}

func TestWhitespaceOnlySource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		newlines int
	}{
		{"empty", "", 0},
		{"spaces and tabs", "  \t \t  ", 0},
		{"single newline", "\n", 1},
		{"mixed", " \n\t\n  \n", 3},
		{"carriage returns skipped", "\r\n\r\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(t, tt.source)
			if len(tokens) != tt.newlines {
				t.Fatalf("got %d tokens, want %d", len(tokens), tt.newlines)
			}
			for _, tok := range tokens {
				if tok.Kind != TokenNewline {
					t.Errorf("got %s token, want only newlines", tok.Kind)
				}
			}
		})
	}
}

func TestNumberRoundTrip(t *testing.T) {
	tests := []struct {
		source string
		want   int64
	}{
		{"0", 0},
		{"7", 7},
		{"42", 42},
		{"1000000", 1000000},
		{"9223372036854775807", 9223372036854775807},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.source)
		if len(tokens) != 1 {
			t.Fatalf("%s: got %d tokens, want 1", tt.source, len(tokens))
		}
		if tokens[0].Kind != TokenNumber || tokens[0].Num != tt.want {
			t.Errorf("%s: got %v, want NumberLiteral %d", tt.source, tokens[0], tt.want)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	if _, err := NewScanner("9223372036854775808").Scan(); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"unknown escape passes through", `"a\nb"`, "anb"},
		{"unterminated yields content", `"abc`, "abc"},
		{"embedded newline", "\"a\nb\"", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(t, tt.source)
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens, want 1", len(tokens))
			}
			if tokens[0].Kind != TokenString || tokens[0].Text != tt.want {
				t.Errorf("got %v, want StringLiteral %q", tokens[0], tt.want)
			}
		})
	}
}

func TestIdentifierClassification(t *testing.T) {
	tests := []struct {
		source string
		want   Token
	}{
		{"x", Token{Kind: TokenIdent, Text: "x"}},
		{"snake_case", Token{Kind: TokenIdent, Text: "snake_case"}},
		{"letter", Token{Kind: TokenIdent, Text: "letter"}},
		{"let", Token{Kind: TokenKeyword, Text: "let"}},
		{"mut", Token{Kind: TokenKeyword, Text: "mut"}},
		{"pub", Token{Kind: TokenKeyword, Text: "pub"}},
		{"from", Token{Kind: TokenKeyword, Text: "from"}},
		{"import", Token{Kind: TokenKeyword, Text: "import"}},
		{"true", Token{Kind: TokenBoolean, Text: "true", Bool: true}},
		{"false", Token{Kind: TokenBoolean, Text: "false", Bool: false}},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.source)
		if len(tokens) != 1 || tokens[0] != tt.want {
			t.Errorf("%s: got %v, want %v", tt.source, tokens, tt.want)
		}
	}
}

// Digits are not identifier characters, so a digit ends the run and starts a
// number literal.
func TestDigitsSplitIdentifiers(t *testing.T) {
	tokens := scan(t, "x1")
	want := []Token{
		{Kind: TokenIdent, Text: "x"},
		{Kind: TokenNumber, Num: 1},
	}
	if !slices.Equal(tokens, want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
}

func TestOperatorTokens(t *testing.T) {
	tokens := scan(t, ". + - * / ! % : ; = { } ( ) [ ] > < ^ | & ,")
	want := []Kind{
		TokenPeriod, TokenAdd, TokenSub, TokenMul, TokenDiv, TokenNot,
		TokenMod, TokenColon, TokenSemicolon, TokenAssign,
		TokenCurlyLeft, TokenCurlyRight, TokenParenLeft, TokenParenRight,
		TokenSquareLeft, TokenSquareRight,
		TokenMore, TokenLess, TokenXor, TokenOr, TokenAnd, TokenComma,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Kind != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Kind, want[i])
		}
	}
}

func TestDeclarationTokenSequence(t *testing.T) {
	tokens := scan(t, "let x = 1 + 2")
	want := []Token{
		{Kind: TokenKeyword, Text: "let"},
		{Kind: TokenIdent, Text: "x"},
		{Kind: TokenAssign},
		{Kind: TokenNumber, Num: 1},
		{Kind: TokenAdd},
		{Kind: TokenNumber, Num: 2},
	}
	if !slices.Equal(tokens, want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
}

func TestUnknownCharacter(t *testing.T) {
	for _, source := range []string{"@", "let x = #", "a ~ b"} {
		if _, err := NewScanner(source).Scan(); err == nil {
			t.Errorf("%q: expected scan error", source)
		}
	}
	if _, err := NewScanner("line one\nline two @").Scan(); err == nil {
		t.Error("expected scan error")
	} else if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error should name line 1: %v", err)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	source := "let mut greeting = \"hi \\\"there\\\"\"\npub let n = 1 + 2 * 3\nfoo(n, !true)\n"
	first := scan(t, source)
	second := scan(t, source)
	if !slices.Equal(first, second) {
		t.Fatalf("re-scan differs:\n%v\n%v", first, second)
	}
}

func BenchmarkScan(b *testing.B) {
	source := strings.Repeat("let x = foo(1, 2) + \"str\" * 3\n", 100)
	for i := 0; i < b.N; i++ {
		if _, err := NewScanner(source).Scan(); err != nil {
			b.Fatal(err)
		}
	}
}
