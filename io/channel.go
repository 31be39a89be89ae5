// Package io provides the I/O channels that connect an intcode Computer
// to its host: the unbounded FIFO Queue used for the Computer's input and
// output, and the Tape which streams values to and from an io.Reader and
// io.Writer.
package io

import (
	"iter"
)

// Channel defines the interface for all value channels of the intcode system.
// Channels carry signed 64-bit words in FIFO order.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields the values available from the channel.
	Receive() iter.Seq[int64]
	// Send writes a single value to the channel.
	Send(value int64) error
}
