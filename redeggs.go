package redeggs

import (
	"github.com/dhbw-cocon-spring25/redeggs/src/ast"
	"github.com/dhbw-cocon-spring25/redeggs/src/parse"
	"github.com/dhbw-cocon-spring25/redeggs/src/symbol"
)

// Parse will simply parse a pattern with the default symbol factory and
// return the root of its tree.
func Parse(pattern string) (ast.Node, error) {
	return parse.New(symbol.NewFactory()).Parse(pattern)
}
