package parse

import (
	"github.com/dhbw-cocon-spring25/redeggs/src/ast"
	"github.com/dhbw-cocon-spring25/redeggs/src/symbol"
)

// class parses a bracket expression after the opening '[' has already been
// consumed. A leading '^' inverts the class; every member then goes through
// the builder's Exclude instead of Include. Inside the brackets no code point
// is reserved except ']', so the outer operators are ordinary members here.
//
// An empty class ('[]' or '[^]') is accepted and finalizes to the empty
// symbol. A '-' with no upper bound before the closing ']' is rejected.
func (p *Parser) class() (ast.Node, error) {
	inverted := false
	if p.cur.peek() == '^' {
		p.cur.consume()
		inverted = true
	}
	builder := p.factory.NewSymbol()
	for p.cur.peek() != ']' {
		if p.cur.peek() == EndOfText {
			return nil, p.cur.errEOF("expected %q", ']')
		}
		first := p.cur.consume()
		member := symbol.Single(first)
		if p.cur.peek() == '-' {
			p.cur.consume()
			if ch := p.cur.peek(); ch == ']' || ch == EndOfText {
				return nil, p.expected("the upper bound of a range")
			}
			member = symbol.Range(first, p.cur.consume())
		}
		if inverted {
			builder = builder.Exclude(member)
		} else {
			builder = builder.Include(member)
		}
	}
	if err := p.cur.match(']'); err != nil {
		return nil, err
	}
	return &ast.Literal{Symbol: builder.Finalize()}, nil
}
