// Package strbuild provides a fluent wrapper over strings.Builder, letting
// callers chain heterogeneous appends in a single expression.
package strbuild

import (
	"fmt"
	"strconv"
	"strings"
)

// Builder accumulates a string via chained appends. The zero value is ready
// to use. Builder implements io.Writer and fmt.Stringer.
type Builder struct {
	b strings.Builder
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// NewSize returns a Builder pre-grown to hold at least n bytes.
func NewSize(n int) *Builder {
	b := &Builder{}
	b.b.Grow(n)
	return b
}

// Append writes s and returns the Builder for chaining.
func (b *Builder) Append(s string) *Builder {
	b.b.WriteString(s)
	return b
}

// AppendAll writes each string in order.
func (b *Builder) AppendAll(strs ...string) *Builder {
	for _, s := range strs {
		b.b.WriteString(s)
	}
	return b
}

// Appendf writes fmt.Sprintf(format, args...).
func (b *Builder) Appendf(format string, args ...any) *Builder {
	fmt.Fprintf(&b.b, format, args...)
	return b
}

// AppendRune writes a single rune.
func (b *Builder) AppendRune(r rune) *Builder {
	b.b.WriteRune(r)
	return b
}

// AppendByte writes a single byte.
func (b *Builder) AppendByte(c byte) *Builder {
	b.b.WriteByte(c)
	return b
}

// AppendInt writes the decimal representation of i.
func (b *Builder) AppendInt(i int64) *Builder {
	b.b.WriteString(strconv.FormatInt(i, 10))
	return b
}

// AppendBool writes "true" or "false".
func (b *Builder) AppendBool(v bool) *Builder {
	b.b.WriteString(strconv.FormatBool(v))
	return b
}

// AppendFloat writes the shortest representation of f that parses back
// exactly, as strconv.FormatFloat with the 'g' format.
func (b *Builder) AppendFloat(f float64) *Builder {
	b.b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return b
}

// Write implements io.Writer. It never returns an error.
func (b *Builder) Write(p []byte) (int, error) {
	return b.b.Write(p)
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int {
	return b.b.Len()
}

// Cap returns the capacity of the underlying buffer.
func (b *Builder) Cap() int {
	return b.b.Cap()
}

// Grow grows the underlying buffer to hold at least n more bytes.
func (b *Builder) Grow(n int) *Builder {
	b.b.Grow(n)
	return b
}

// Reset empties the Builder for reuse.
func (b *Builder) Reset() *Builder {
	b.b.Reset()
	return b
}

// String returns the accumulated string.
func (b *Builder) String() string {
	return b.b.String()
}
