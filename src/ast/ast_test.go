package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhbw-cocon-spring25/redeggs/src/symbol"
)

func lit(r rune) *Literal {
	return &Literal{Symbol: symbol.NewFactory().NewSymbol().Include(symbol.Single(r)).Finalize()}
}

func TestNode_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "∅", (&EmptySet{}).String())
	assert.Equal(t, "ε", (&EmptyWord{}).String())
	assert.Equal(t, "a", lit('a').String())
	assert.Equal(t, "(ab)", (&Concatenation{Left: lit('a'), Right: lit('b')}).String())
	assert.Equal(t, "(a|b)", (&Alternation{Left: lit('a'), Right: lit('b')}).String())
	assert.Equal(t, "a*", (&Star{Inner: lit('a')}).String())
	assert.Equal(t, "((a|b)c)*", (&Star{Inner: &Concatenation{
		Left:  &Alternation{Left: lit('a'), Right: lit('b')},
		Right: lit('c'),
	}}).String())
}

func TestNode_StructuralEquality(t *testing.T) {
	t.Parallel()
	assert.Equal(t, lit('a'), lit('a'))
	assert.NotEqual(t, lit('a'), lit('b'))
	assert.NotSame(t, lit('a'), lit('a'))
}
