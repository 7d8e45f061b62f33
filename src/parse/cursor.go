package parse

import (
	"fmt"

	"github.com/dhbw-cocon-spring25/redeggs/src/rerrors"
)

// EndOfText is the sentinel peek and consume return once the pattern is
// exhausted. It is distinct from every valid code point.
const EndOfText rune = -1

// cursor owns the not yet consumed pattern text and exposes single code point
// lookahead. offset counts consumed code points and only ever grows.
type cursor struct {
	rest   []rune
	offset int
}

func newCursor(pattern string) *cursor {
	return &cursor{rest: []rune(pattern)}
}

// peek returns the next code point without consuming it.
func (c *cursor) peek() rune {
	if len(c.rest) == 0 {
		return EndOfText
	}
	return c.rest[0]
}

// consume returns the next code point and advances one position. At the end
// of the text it returns EndOfText and leaves the cursor unchanged.
func (c *cursor) consume() rune {
	if len(c.rest) == 0 {
		return EndOfText
	}
	ch := c.rest[0]
	c.rest = c.rest[1:]
	c.offset++
	return ch
}

// match consumes one code point and fails if it is not the expected one.
func (c *cursor) match(expected rune) error {
	switch ch := c.consume(); ch {
	case expected:
		return nil
	case EndOfText:
		return c.errEOF("expected %q", expected)
	default:
		return c.errSymbol("expected %q but found %q", expected, ch)
	}
}

func (c *cursor) residual() string {
	return string(c.rest)
}

func (c *cursor) errEOF(msg string, data ...any) error {
	return &rerrors.Error{Kind: rerrors.UnexpectedEOF, Offset: c.offset, Err: fmt.Errorf(msg, data...)}
}

func (c *cursor) errSymbol(msg string, data ...any) error {
	return &rerrors.Error{Kind: rerrors.UnexpectedSymbol, Offset: c.offset, Err: fmt.Errorf(msg, data...)}
}

func (c *cursor) errTrailing(msg string, data ...any) error {
	return &rerrors.Error{Kind: rerrors.TrailingInput, Offset: c.offset, Err: fmt.Errorf(msg, data...)}
}
