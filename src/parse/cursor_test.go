package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhbw-cocon-spring25/redeggs/src/rerrors"
)

func TestCursor_PeekDoesNotAdvance(t *testing.T) {
	t.Parallel()
	cur := newCursor("ab")
	assert.Equal(t, 'a', cur.peek())
	assert.Equal(t, 'a', cur.peek())
	assert.Equal(t, 0, cur.offset)
	assert.Equal(t, "ab", cur.residual())
}

func TestCursor_Consume(t *testing.T) {
	t.Parallel()
	cur := newCursor("ab")
	assert.Equal(t, 'a', cur.consume())
	assert.Equal(t, 1, cur.offset)
	assert.Equal(t, 'b', cur.consume())
	assert.Equal(t, 2, cur.offset)
	assert.Equal(t, EndOfText, cur.consume())
	assert.Equal(t, EndOfText, cur.consume())
	assert.Equal(t, 2, cur.offset)
	assert.Equal(t, EndOfText, cur.peek())
}

func TestCursor_MultibyteCodePoints(t *testing.T) {
	t.Parallel()
	cur := newCursor("ε∅")
	assert.Equal(t, 'ε', cur.consume())
	assert.Equal(t, '∅', cur.consume())
	assert.Equal(t, 2, cur.offset)
	assert.Equal(t, EndOfText, cur.peek())
}

func TestCursor_Match(t *testing.T) {
	t.Parallel()

	t.Run("matching symbol", func(t *testing.T) {
		t.Parallel()
		cur := newCursor(")")
		require.NoError(t, cur.match(')'))
		assert.Equal(t, 1, cur.offset)
	})

	t.Run("wrong symbol", func(t *testing.T) {
		t.Parallel()
		cur := newCursor("a")
		err := cur.match(')')
		var perr *rerrors.Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, rerrors.UnexpectedSymbol, perr.Kind)
		assert.Equal(t, 1, perr.Offset)
		assert.Contains(t, err.Error(), `expected ')'`)
		assert.Contains(t, err.Error(), `found 'a'`)
	})

	t.Run("exhausted input", func(t *testing.T) {
		t.Parallel()
		cur := newCursor("")
		err := cur.match(')')
		var perr *rerrors.Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, rerrors.UnexpectedEOF, perr.Kind)
		assert.Equal(t, 0, perr.Offset)
		assert.Contains(t, err.Error(), `expected ')'`)
	})
}
