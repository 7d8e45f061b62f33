// Package parse implements the recursive descent front end of the regex
// toolchain. It turns a textual pattern into an ast tree, building one virtual
// symbol per literal or bracket expression through the symbol package. The
// grammar is predictive with a single code point of lookahead and never
// backtracks; the first violation aborts the whole parse.
package parse

import (
	"strings"

	"github.com/dhbw-cocon-spring25/redeggs/src/ast"
	"github.com/dhbw-cocon-spring25/redeggs/src/symbol"
)

const (
	// emptyWordMarker parses to an EmptyWord node when it stands as a base;
	// everywhere else, brackets included, it is an ordinary literal.
	emptyWordMarker = 'ε'
	// emptySetMarker parses to an EmptySet node when it stands as a base.
	emptySetMarker = '∅'
)

// reserved are the operator symbols of the outer grammar. Inside a bracket
// expression only ']' keeps a reserved meaning.
const reserved = "|*()[]^-"

// Parser parses one pattern at a time. The cursor is owned exclusively for
// the duration of a Parse call.
type Parser struct {
	factory symbol.Factory
	cur     *cursor
}

// New returns a parser that builds literal symbols with the given factory.
func New(factory symbol.Factory) *Parser {
	return &Parser{factory: factory}
}

func isLiteral(ch rune) bool {
	return ch != EndOfText && !strings.ContainsRune(reserved, ch)
}

// Parse converts pattern into its tree. The entire input has to be consumed
// by the grammar; anything left over fails the parse as trailing input.
func (p *Parser) Parse(pattern string) (ast.Node, error) {
	p.cur = newCursor(pattern)
	node, err := p.regex()
	if err != nil {
		return nil, err
	}
	if p.cur.peek() != EndOfText {
		return nil, p.cur.errTrailing("unconsumed pattern text %q", p.cur.residual())
	}
	return node, nil
}

// regex := concat union
func (p *Parser) regex() (ast.Node, error) {
	if ch := p.cur.peek(); !isLiteral(ch) && ch != '(' && ch != '[' {
		return nil, p.expected("a literal, '(' or '['")
	}
	left, err := p.concat()
	if err != nil {
		return nil, err
	}
	return p.union(left)
}

// union := '|' concat union | ε
//
// Folds every further alternative into the accumulator so that alternation
// comes out left associative and chains of '|' never deepen the call stack.
func (p *Parser) union(left ast.Node) (ast.Node, error) {
	for {
		switch ch := p.cur.peek(); ch {
		case '|':
			p.cur.consume()
			right, err := p.concat()
			if err != nil {
				return nil, err
			}
			left = &ast.Alternation{Left: left, Right: right}
		case ')', EndOfText:
			return left, nil
		default:
			return nil, p.expected("'|', ')' or end of pattern")
		}
	}
}

// concat := kleene suffix
func (p *Parser) concat() (ast.Node, error) {
	if ch := p.cur.peek(); !isLiteral(ch) && ch != '(' && ch != '[' {
		return nil, p.expected("a literal, '(' or '['")
	}
	left, err := p.kleene()
	if err != nil {
		return nil, err
	}
	return p.suffix(left)
}

// suffix := kleene suffix | ε
//
// Same accumulator shape as union, one precedence level up.
func (p *Parser) suffix(left ast.Node) (ast.Node, error) {
	for {
		ch := p.cur.peek()
		if isLiteral(ch) || ch == '(' || ch == '[' {
			right, err := p.kleene()
			if err != nil {
				return nil, err
			}
			left = &ast.Concatenation{Left: left, Right: right}
			continue
		}
		if ch == '|' || ch == ')' || ch == EndOfText {
			return left, nil
		}
		return nil, p.expected("a literal, '(', '[', '|', ')' or end of pattern")
	}
}

// kleene := base star
func (p *Parser) kleene() (ast.Node, error) {
	base, err := p.base()
	if err != nil {
		return nil, err
	}
	return p.star(base), nil
}

// star := '*' | ε
//
// Star binds to the immediately preceding base only; without a '*' the base
// passes through unchanged.
func (p *Parser) star(base ast.Node) ast.Node {
	if p.cur.peek() == '*' {
		p.cur.consume()
		return &ast.Star{Inner: base}
	}
	return base
}

// base := LITERAL | '(' regex ')' | '[' class ']' | empty set | empty word
//
// The two pseudo literal markers are recognized here and nowhere else, so
// they keep their plain literal meaning inside bracket expressions.
func (p *Parser) base() (ast.Node, error) {
	switch ch := p.cur.peek(); {
	case ch == '(':
		p.cur.consume()
		inner, err := p.regex()
		if err != nil {
			return nil, err
		}
		if err := p.cur.match(')'); err != nil {
			return nil, err
		}
		return inner, nil
	case ch == '[':
		p.cur.consume()
		return p.class()
	case isLiteral(ch):
		switch sym := p.cur.consume(); sym {
		case emptySetMarker:
			return &ast.EmptySet{}, nil
		case emptyWordMarker:
			return &ast.EmptyWord{}, nil
		default:
			lit := p.factory.NewSymbol().Include(symbol.Single(sym)).Finalize()
			return &ast.Literal{Symbol: lit}, nil
		}
	default:
		return nil, p.expected("a literal, '(' or '['")
	}
}

// expected builds the error for a lookahead that fits no production, naming
// what the grammar would have accepted.
func (p *Parser) expected(what string) error {
	ch := p.cur.peek()
	if ch == EndOfText {
		return p.cur.errEOF("expected %v", what)
	}
	return p.cur.errSymbol("expected %v but found %q", what, ch)
}
