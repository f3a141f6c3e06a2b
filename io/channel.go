// Package io provides the output sinks for the assembunny 'out' opcode.
// It includes an in-memory value buffer (Buffer), a text stream writer
// (Tape), and a fan-out to several sinks (Multi).
package io

// Sink defines the interface for all 'out' destinations.
type Sink interface {
	// Rewind resets the sink to its initial state.
	Rewind()
	// Send emits a single value.
	Send(value int64) error
}

// Multi sends every value to each of its sinks in order.
type Multi []Sink

var _ Sink = (Multi)(nil)

// Rewind rewinds all sinks.
func (ms Multi) Rewind() {
	for _, sink := range ms {
		sink.Rewind()
	}
}

// Send stops at the first sink that fails.
func (ms Multi) Send(value int64) (err error) {
	for _, sink := range ms {
		err = sink.Send(value)
		if err != nil {
			return
		}
	}
	return
}
