// Package redeggs is the front end of a regular eggspression toolchain. It
// parses a textual pattern into an immutable syntax tree that automaton
// construction (NFA/DFA) can consume later down the chain.
//
//	The supported grammar is deliberately small: literals, alternation '|',
//	kleene star '*', grouping '()', bracket expressions '[...]' with ranges
//	and '^' negation, plus the two pseudo literals 'ε' (empty word) and '∅'
//	(empty set). Everything beyond that, escapes and counted repetition
//	included, is out of scope for this front end.
//
//	Literal characters are not kept as raw code points but as virtual symbols,
//	equivalence classes produced by the symbol package, so that the downstream
//	automata work over a small alphabet.
package redeggs
