package rerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	t.Parallel()
	err := &Error{Kind: UnexpectedEOF, Offset: 2, Err: fmt.Errorf("expected ')'")}
	assert.Equal(t, "parse error at offset 2: unexpected end of input: expected ')'", err.Error())

	err = &Error{Kind: UnexpectedSymbol, Offset: 0, Err: fmt.Errorf("expected 'a' but found 'b'")}
	assert.Equal(t, "parse error at offset 0: unexpected symbol: expected 'a' but found 'b'", err.Error())

	err = &Error{Kind: TrailingInput, Offset: 1, Err: fmt.Errorf(`unconsumed pattern text ")"`)}
	assert.Equal(t, `parse error at offset 1: trailing input: unconsumed pattern text ")"`, err.Error())
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()
	inner := errors.New("expected ')'")
	err := &Error{Kind: UnexpectedEOF, Err: inner}
	require.ErrorIs(t, err, inner)
}
