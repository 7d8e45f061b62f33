// Package rerrors is the unified errors package for pattern parsing so that
// cursor, grammar, and class errors carry a kind and an input offset and can
// be formatted and handled in a uniform way.
package rerrors

import "fmt"

type (
	// ErrorKind is an enum to describe the anomaly that stopped the parse.
	ErrorKind int
	// Error is returned for every failed parse. Offset is the number of code
	// points consumed when the anomaly was detected.
	Error struct {
		Kind   ErrorKind
		Offset int
		Err    error
	}
)

const (
	// UnexpectedEOF means the input ended where a specific symbol was required.
	UnexpectedEOF ErrorKind = iota
	// UnexpectedSymbol means the consumed symbol was not what the grammar
	// required at that position.
	UnexpectedSymbol
	// TrailingInput means the parse succeeded but left unconsumed text.
	TrailingInput
)

func (err *Error) Error() string {
	switch err.Kind {
	case UnexpectedEOF:
		return fmt.Sprintf("parse error at offset %v: unexpected end of input: %v", err.Offset, err.Err)
	case UnexpectedSymbol:
		return fmt.Sprintf("parse error at offset %v: unexpected symbol: %v", err.Offset, err.Err)
	case TrailingInput:
		return fmt.Sprintf("parse error at offset %v: trailing input: %v", err.Offset, err.Err)
	default:
		return fmt.Sprintf("parse error at offset %v: %v", err.Offset, err.Err)
	}
}

func (err *Error) Unwrap() error {
	return err.Err
}
