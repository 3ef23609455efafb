package catalog

import (
	"fmt"
	"strings"

	"github.com/quantica/units/pkg/units"
)

// TokenType represents the type of a token in a dimension expression
type TokenType int

const (
	// TOKEN_EOF marks the end of the expression.
	TOKEN_EOF TokenType = iota
	// TOKEN_IDENT is a dimension name.
	TOKEN_IDENT
	// TOKEN_STAR is the product operator '*'.
	TOKEN_STAR
	// TOKEN_SLASH is the quotient operator '/'.
	TOKEN_SLASH
	// TOKEN_LPAREN opens a group.
	TOKEN_LPAREN
	// TOKEN_RPAREN closes a group.
	TOKEN_RPAREN
)

func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "end of expression"
	case TOKEN_IDENT:
		return "identifier"
	case TOKEN_STAR:
		return "'*'"
	case TOKEN_SLASH:
		return "'/'"
	case TOKEN_LPAREN:
		return "'('"
	case TOKEN_RPAREN:
		return "')'"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexeme with its byte offset in the expression
type Token struct {
	Type   TokenType
	Lexeme string
	Offset int
}

// tokenize splits src into tokens, always ending with TOKEN_EOF
func tokenize(src string) ([]Token, error) {
	tokens := make([]Token, 0, len(src)/2+1)
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '*':
			tokens = append(tokens, Token{Type: TOKEN_STAR, Lexeme: "*", Offset: i})
			i++
		case c == '/':
			tokens = append(tokens, Token{Type: TOKEN_SLASH, Lexeme: "/", Offset: i})
			i++
		case c == '(':
			tokens = append(tokens, Token{Type: TOKEN_LPAREN, Lexeme: "(", Offset: i})
			i++
		case c == ')':
			tokens = append(tokens, Token{Type: TOKEN_RPAREN, Lexeme: ")", Offset: i})
			i++
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: TOKEN_IDENT, Lexeme: src[start:i], Offset: start})
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrBadExpression, c, i)
		}
	}
	return append(tokens, Token{Type: TOKEN_EOF, Offset: len(src)}), nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// Expr is a node of a parsed dimension expression
type Expr interface {
	// GoType renders the node as a Go type expression. qual is prepended to
	// every marker name ("units." outside the units package, "" inside).
	GoType(qual string) string

	// String renders the node in expression syntax
	String() string
}

// Ident references a base dimension or an earlier derived dimension
type Ident struct {
	Name string
}

// Binary is a product or quotient of two sub-expressions
type Binary struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (e *Ident) GoType(qual string) string { return qual + e.Name }
func (e *Ident) String() string            { return e.Name }

func (e *Binary) GoType(qual string) string {
	marker := "Prod"
	if e.Op == TOKEN_SLASH {
		marker = "Quot"
	}
	return fmt.Sprintf("%s%s[%s, %s]", qual, marker, e.Left.GoType(qual), e.Right.GoType(qual))
}

func (e *Binary) String() string {
	op := "*"
	if e.Op == TOKEN_SLASH {
		op = "/"
	}
	return "(" + e.Left.String() + " " + op + " " + e.Right.String() + ")"
}

// exprParser is a recursive descent parser over
//
//	expr := term (('*' | '/') term)*
//	term := IDENT | '(' expr ')'
//
// Operators are left-associative with equal precedence.
type exprParser struct {
	tokens  []Token
	current int
}

// ParseExpr parses a dimension expression such as "Mass*Distance/(Time*Time)"
func ParseExpr(src string) (Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrBadExpression)
	}
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &exprParser{tokens: tokens}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TOKEN_EOF {
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrBadExpression, tok.Type, tok.Offset)
	}
	return e, nil
}

func (p *exprParser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().Type
		if op != TOKEN_STAR && op != TOKEN_SLASH {
			return left, nil
		}
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *exprParser) term() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TOKEN_IDENT:
		return &Ident{Name: tok.Lexeme}, nil
	case TOKEN_LPAREN:
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.Type != TOKEN_RPAREN {
			return nil, fmt.Errorf("%w: expected ')' at offset %d, got %s", ErrBadExpression, closing.Offset, closing.Type)
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: expected dimension name at offset %d, got %s", ErrBadExpression, tok.Offset, tok.Type)
}

func (p *exprParser) peek() Token {
	return p.tokens[p.current]
}

func (p *exprParser) advance() Token {
	tok := p.tokens[p.current]
	if tok.Type != TOKEN_EOF {
		p.current++
	}
	return tok
}

// Eval computes the vector of e. lookup resolves identifiers; products add
// exponents and quotients follow units.Vector.Div.
func Eval(e Expr, lookup func(name string) (units.Vector, bool)) (units.Vector, error) {
	switch n := e.(type) {
	case *Ident:
		v, ok := lookup(n.Name)
		if !ok {
			return units.Vector{}, fmt.Errorf("%w: %s", ErrUnknownDimension, n.Name)
		}
		return v, nil
	case *Binary:
		l, err := Eval(n.Left, lookup)
		if err != nil {
			return units.Vector{}, err
		}
		r, err := Eval(n.Right, lookup)
		if err != nil {
			return units.Vector{}, err
		}
		if n.Op == TOKEN_SLASH {
			return l.Div(r), nil
		}
		return l.Mul(r), nil
	}
	return units.Vector{}, fmt.Errorf("%w: unsupported node %T", ErrBadExpression, e)
}

// Divisors returns the right-hand operands of every quotient in e,
// outermost first.
func Divisors(e Expr) []Expr {
	b, ok := e.(*Binary)
	if !ok {
		return nil
	}
	var out []Expr
	if b.Op == TOKEN_SLASH {
		out = append(out, b.Right)
	}
	out = append(out, Divisors(b.Left)...)
	return append(out, Divisors(b.Right)...)
}
