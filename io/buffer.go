package io

import (
	"iter"
	"slices"
)

// Buffer accumulates emitted values in memory.
type Buffer struct {
	Capacity int // Capacity in values. Zero is unbounded.

	Data []int64
}

var _ Sink = (*Buffer)(nil)

// Rewind empties the buffer.
func (buf *Buffer) Rewind() {
	buf.Data = buf.Data[:0]
}

// Receive returns an iterator over the buffered values, oldest first.
func (buf *Buffer) Receive() iter.Seq[int64] {
	return slices.Values(buf.Data)
}

// Values returns a copy of the buffered values.
func (buf *Buffer) Values() []int64 {
	return slices.Clone(buf.Data)
}

// Send appends a value to the buffer.
// Returns ErrChannelFull if the buffer has reached capacity.
func (buf *Buffer) Send(value int64) (err error) {
	if buf.Capacity > 0 && len(buf.Data) >= buf.Capacity {
		err = ErrChannelFull
		return
	}

	buf.Data = append(buf.Data, value)

	return
}
