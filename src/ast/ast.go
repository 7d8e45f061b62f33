// Package ast defines the tree a parsed pattern is turned into. Nodes are
// immutable once built and carry no behavior beyond rendering; automaton
// construction walks this tree later in the toolchain.
package ast

import (
	"fmt"

	"github.com/dhbw-cocon-spring25/redeggs/src/symbol"
)

type (
	// Node is one variant of a parsed pattern. Children are exclusively owned
	// by their parent, so a tree is always finite and cycle free.
	Node interface {
		fmt.Stringer
		node()
	}
	// EmptySet matches no string at all.
	EmptySet struct{}
	// EmptyWord matches only the empty string.
	EmptyWord struct{}
	// Literal matches exactly one character belonging to its symbol's
	// equivalence class.
	Literal struct {
		Symbol symbol.VirtualSymbol
	}
	// Concatenation matches Left followed by Right.
	Concatenation struct {
		Left  Node
		Right Node
	}
	// Alternation matches either Left or Right.
	Alternation struct {
		Left  Node
		Right Node
	}
	// Star matches zero or more repetitions of Inner.
	Star struct {
		Inner Node
	}
)

func (*EmptySet) node()      {}
func (*EmptyWord) node()     {}
func (*Literal) node()       {}
func (*Concatenation) node() {}
func (*Alternation) node()   {}
func (*Star) node()          {}

func (*EmptySet) String() string  { return "∅" }
func (*EmptyWord) String() string { return "ε" }

func (n *Literal) String() string {
	return n.Symbol.String()
}

func (n *Concatenation) String() string {
	return fmt.Sprintf("(%v%v)", n.Left, n.Right)
}

func (n *Alternation) String() string {
	return fmt.Sprintf("(%v|%v)", n.Left, n.Right)
}

func (n *Star) String() string {
	return fmt.Sprintf("%v*", n.Inner)
}
