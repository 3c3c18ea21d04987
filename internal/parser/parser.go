package parser

import (
	"fmt"
	"slices"
	"strings"

	"lucent/internal/diag"
	"lucent/internal/lexer"
)

// Parser consumes a scanned token stream and builds the top-level AST
// sequence. Any fatal diagnostic aborts the whole parse; only the
// redundant-mut destructuring case is a warning.
type Parser struct {
	tokens      []lexer.Token
	current     int
	line        int
	sourceLines []string
	ast         []Node
	warnings    []*diag.Diagnostic
}

// NewParser takes the token stream plus the original source text, which is
// kept only for diagnostics.
func NewParser(tokens []lexer.Token, source string) *Parser {
	return &Parser{
		tokens:      tokens,
		sourceLines: strings.Split(source, "\n"),
	}
}

// Parse consumes statements until the end of the stream. On a fatal
// diagnostic it returns a nil AST and the diagnostic as the error; no
// partial AST is usable.
func (p *Parser) Parse() (nodes []Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			d, ok := r.(*diag.Diagnostic)
			if !ok {
				panic(r)
			}
			nodes = nil
			err = d
		}
	}()

	for !p.isAtEnd() {
		if node := p.statement(); node != nil {
			p.ast = append(p.ast, node)
		}
	}
	return p.ast, nil
}

// Warnings returns the non-fatal diagnostics collected during the parse.
func (p *Parser) Warnings() []*diag.Diagnostic {
	return p.warnings
}

// Render formats a diagnostic against the source this parser was built with.
func (p *Parser) Render(d *diag.Diagnostic) string {
	return d.Render(p.sourceLines)
}

// peek returns the current token, synthesizing the end sentinel past the end
// of the stream.
func (p *Parser) peek() lexer.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	return lexer.Token{Kind: lexer.TokenEnd}
}

func (p *Parser) advance() lexer.Token {
	p.current++
	tok := p.peek()
	if tok.Kind == lexer.TokenNewline {
		p.line++
	}
	return tok
}

func (p *Parser) expect(kind lexer.Kind, message string) {
	if p.advance().Kind != kind {
		p.fail(message)
	}
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.TokenEnd
}

func (p *Parser) fail(format string, args ...any) {
	panic(&diag.Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Line:     p.line,
		Severity: diag.Fatal,
	})
}

func (p *Parser) warn(format string, args ...any) {
	p.warnings = append(p.warnings, &diag.Diagnostic{
		Message:  fmt.Sprintf(format, args...),
		Line:     p.line,
		Severity: diag.Warning,
	})
}

// statement dispatches on the current token. A nil return means the
// statement dissolved into separators (trailing newlines before the end of
// the stream).
func (p *Parser) statement() Node {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenKeyword:
		switch tok.Text {
		case "let":
			return p.variableInit(false)
		case "pub":
			if p.advance().IsKeyword("let") {
				return p.variableInit(true)
			}
			p.fail("SyntaxError: Expected `let` after `pub`.")
		case "from":
			return p.importStatement()
		}
		p.fail("SyntaxError: Unexpected keyword `%s`.", tok.Text)
	case lexer.TokenNumber, lexer.TokenString, lexer.TokenBoolean,
		lexer.TokenIdent, lexer.TokenBuiltin,
		lexer.TokenNot, lexer.TokenSub, lexer.TokenParenLeft:
		return p.expression()
	case lexer.TokenNewline:
		p.advance()
		if p.isAtEnd() {
			return nil
		}
		return p.statement()
	}
	p.fail("SyntaxError: Unexpected token `%s`.", tok)
	return nil
}

// variableInit parses a declaration after its `let` keyword: either a plain
// binding or a destructuring binding.
func (p *Parser) variableInit(public bool) Node {
	cur := p.advance()
	mutable := cur.IsKeyword("mut")
	if mutable {
		cur = p.advance()
	}

	switch cur.Kind {
	case lexer.TokenIdent:
		name := cur.Text
		p.expect(lexer.TokenAssign, "SyntaxError: Expected assignment operator.")
		p.advance()
		return &VariableAssignment{
			Name:    name,
			Value:   p.expression(),
			Mutable: mutable,
			Public:  public,
		}
	case lexer.TokenCurlyLeft:
		if public {
			p.fail("SyntaxError: Destructuring declarations cannot be `pub`.")
		}
		return p.destructure(mutable)
	}
	p.fail("SyntaxError: Expected identifier or `{` after `let`.")
	return nil
}

// destructure parses `{ name | mut name ... } = ident`. The right-hand side
// must be a single bare identifier.
func (p *Parser) destructure(mutable bool) Node {
	var props []DestructureProperty
	for {
		switch cur := p.advance(); {
		case cur.Kind == lexer.TokenIdent:
			props = append(props, DestructureProperty{Name: cur.Text, Mutable: mutable})
		case cur.IsKeyword("mut"):
			name := p.advance()
			if name.Kind != lexer.TokenIdent {
				p.fail("SyntaxError: Expected identifier after `mut`.")
			}
			props = append(props, DestructureProperty{Name: name.Text, Mutable: true})
			if mutable {
				p.warn("Warning: All destructured properties are mutable. `mut` before `%s` is unnecessary.", name.Text)
			}
		default:
			p.fail("SyntaxError: Expected identifier or `mut`.")
		}

		if p.advance().Kind == lexer.TokenCurlyRight {
			break
		}
	}

	p.expect(lexer.TokenAssign, "SyntaxError: Expected assignment operator.")
	cur := p.advance()
	if cur.Kind != lexer.TokenIdent {
		p.fail("SyntaxError: Destructured variable right hand side must be a single identifier.")
	}
	p.advance()

	return &VariableDestructureAssignment{
		Properties: props,
		Value:      &Ident{Name: cur.Text},
		Mutable:    mutable,
	}
}

// importStatement parses `from <module> import <name>, <name>...`. The
// module name may be an identifier or a string literal.
func (p *Parser) importStatement() Node {
	module := p.advance()
	if module.Kind != lexer.TokenIdent && module.Kind != lexer.TokenString {
		p.fail("SyntaxError: Expected module name after `from`.")
	}
	if !p.advance().IsKeyword("import") {
		p.fail("SyntaxError: Expected `import` after module name.")
	}

	var names []string
	for {
		name := p.advance()
		if name.Kind != lexer.TokenIdent {
			p.fail("SyntaxError: Expected identifier in import list.")
		}
		names = append(names, name.Text)
		if p.advance().Kind != lexer.TokenComma {
			break
		}
	}

	return &ImportStatement{Names: names, Source: module.Text}
}

func (p *Parser) expression() Node {
	return p.multiplicative()
}

// This grammar binds `%`, `*` and `/` more loosely than `+` and `-`: the
// multiplicative level is the expression entry point and its operands are
// additive expressions.
func (p *Parser) multiplicative() Node {
	return p.binary(p.additive, lexer.TokenMod, lexer.TokenMul, lexer.TokenDiv)
}

func (p *Parser) additive() Node {
	return p.binary(p.value, lexer.TokenAdd, lexer.TokenSub)
}

// binary combines operands left-associatively while the current token is one
// of the given operators, recording the exact operator token in each node.
func (p *Parser) binary(operand func() Node, operators ...lexer.Kind) Node {
	left := operand()
	for slices.Contains(operators, p.peek().Kind) {
		op := p.peek()
		p.advance()
		left = &Binary{Left: left, Right: operand(), Op: op}
	}
	return left
}

// value parses the atomic/unary level: literals, identifiers (reinterpreted
// as calls when immediately followed by `(`), unary prefixes and
// parenthesized expressions.
func (p *Parser) value() Node {
	cur := p.peek()
	p.advance()

	switch cur.Kind {
	case lexer.TokenBoolean:
		return &Boolean{Value: cur.Bool}
	case lexer.TokenNumber:
		return &Number{Value: cur.Num}
	case lexer.TokenString:
		return &String{Value: cur.Text}
	case lexer.TokenIdent, lexer.TokenBuiltin:
		if p.peek().Kind == lexer.TokenParenLeft {
			return p.functionCall(cur.Text)
		}
		return &Ident{Name: cur.Text}
	case lexer.TokenNot, lexer.TokenSub:
		op := byte('!')
		if cur.Kind == lexer.TokenSub {
			op = '-'
		}
		// A unary prefix is only valid before another value-starting
		// token; in particular `-(expr)` is rejected.
		if !startsValue(p.peek().Kind) {
			p.fail("SyntaxError: Unexpected token `%s`. Expected value.", p.peek())
		}
		return &Unary{Operand: p.value(), Op: op}
	case lexer.TokenParenLeft:
		expr := p.expression()
		if p.peek().Kind != lexer.TokenParenRight {
			p.fail("SyntaxError: Expected `)` after expression.")
		}
		p.advance()
		return expr
	}
	p.fail("SyntaxError: Unexpected token `%s`. Expected value.", cur)
	return nil
}

func startsValue(kind lexer.Kind) bool {
	switch kind {
	case lexer.TokenBoolean, lexer.TokenString, lexer.TokenNumber,
		lexer.TokenIdent, lexer.TokenBuiltin, lexer.TokenNot, lexer.TokenSub:
		return true
	}
	return false
}

// functionCall parses a comma-separated argument list terminated by `)`.
// There is no arity checking and no trailing-comma restriction.
func (p *Parser) functionCall(name string) Node {
	p.advance() // past `(`
	var args []Node
	for {
		switch p.peek().Kind {
		case lexer.TokenParenRight:
			p.advance()
			return &FunctionCall{Name: name, Arguments: args}
		case lexer.TokenComma:
			p.advance()
		default:
			args = append(args, p.expression())
		}
	}
}
