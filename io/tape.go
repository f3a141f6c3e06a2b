package io

import (
	"io"
	"strconv"
)

// Tape writes values as decimal text onto an io.Writer, each followed
// by Separator. The default empty separator renders a clock signal of
// 0, 1, 0, 1 as "0101".
type Tape struct {
	Output    io.Writer
	Separator string

	Written int // Values written since the last rewind.

	scratch []byte
}

var _ Sink = (*Tape)(nil)

// Rewind is not possible on a tape, only the counter is reset.
func (tc *Tape) Rewind() {
	tc.Written = 0
}

// Send writes a single value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrTapeMissing
		return
	}

	tc.scratch = strconv.AppendInt(tc.scratch[:0], value, 10)
	tc.scratch = append(tc.scratch, tc.Separator...)

	_, err = tc.Output.Write(tc.scratch)
	if err != nil {
		return
	}

	tc.Written++

	return
}
