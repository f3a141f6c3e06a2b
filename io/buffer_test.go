package io

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{}
	for n := range int64(5) {
		assert.NoError(buf.Send(n * 3))
	}

	assert.Equal([]int64{0, 3, 6, 9, 12}, buf.Values())
	assert.Equal(buf.Values(), slices.Collect(buf.Receive()))

	values := buf.Values()
	values[0] = 99
	assert.Equal(int64(0), buf.Data[0])

	buf.Rewind()
	assert.Empty(buf.Values())
}

func TestBuffer_Capacity(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{Capacity: 2}
	assert.NoError(buf.Send(1))
	assert.NoError(buf.Send(2))
	assert.ErrorIs(buf.Send(3), ErrChannelFull)
	assert.Equal([]int64{1, 2}, buf.Values())

	buf.Rewind()
	assert.NoError(buf.Send(3))
	assert.Equal([]int64{3}, buf.Values())
}

func TestMulti(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	first := &Buffer{Capacity: 1}
	tape := &Tape{Output: &out, Separator: " "}
	multi := Multi{first, tape}

	assert.NoError(multi.Send(7))
	assert.Equal([]int64{7}, first.Values())
	assert.Equal("7 ", out.String())

	// The first failing sink stops delivery.
	assert.ErrorIs(multi.Send(8), ErrChannelFull)
	assert.Equal("7 ", out.String())

	multi.Rewind()
	assert.Empty(first.Values())
	assert.Equal(0, tape.Written)

	assert.NoError(Multi{}.Send(1))
}
