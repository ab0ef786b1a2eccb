package strbuild

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ io.Writer = (*Builder)(nil)
var _ fmt.Stringer = (*Builder)(nil)

func TestChainedAppends(t *testing.T) {
	got := New().
		Append("n=").
		AppendInt(42).
		Append(" ok=").
		AppendBool(true).
		AppendRune(' ').
		AppendFloat(1.5).
		AppendByte('!').
		String()
	assert.Equal(t, "n=42 ok=true 1.5!", got)
}

func TestAppendAll(t *testing.T) {
	got := New().AppendAll("a", "b", "c").String()
	assert.Equal(t, "abc", got)
}

func TestAppendf(t *testing.T) {
	got := New().Appendf("%s-%02d", "x", 7).String()
	assert.Equal(t, "x-07", got)
}

func TestZeroValueAndReset(t *testing.T) {
	var b Builder
	b.Append("hello")
	assert.Equal(t, 5, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestWrite(t *testing.T) {
	b := NewSize(16)
	n, err := fmt.Fprintf(b, "x=%d", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "x=3", b.String())
	assert.GreaterOrEqual(t, b.Cap(), 16)
}
