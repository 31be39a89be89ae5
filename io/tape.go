package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// ASCII_LIMIT is the first value a Tape in Ascii mode no longer writes as a character.
const ASCII_LIMIT = 128

// Tape provides sequential I/O between intcode values and byte streams.
//
// In Ascii mode every input byte is one value, and values below ASCII_LIMIT
// are written as single bytes. Other values, and all values outside of
// Ascii mode, are written as decimal lines. Outside of Ascii mode the input
// is a stream of decimal integers separated by commas or white space.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool

	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; it only clears a pending input error.
func (tc *Tape) Rewind() {
	tc.err = nil
}

// Err returns the first non-EOF error met while reading the tape.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields values from the input stream,
// until the stream is exhausted or a token fails to parse.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil || tc.err != nil {
			return
		}

		if tc.Ascii {
			for {
				var one [1]byte
				_, err := io.ReadFull(tc.Input, one[:])
				if err != nil {
					if err != io.EOF {
						tc.err = err
					}
					return
				}
				if !yield(int64(one[0])) {
					return
				}
			}
		}

		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(scanValues)
		}

		for tc.scanner.Scan() {
			word := tc.scanner.Text()
			value, err := strconv.ParseInt(word, 10, 64)
			if err != nil {
				tc.err = ErrParseValue(word)
				return
			}
			if !yield(value) {
				return
			}
		}
		tc.err = tc.scanner.Err()
	}
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	if tc.Ascii && value >= 0 && value < ASCII_LIMIT {
		_, err = tc.Output.Write([]byte{byte(value)})
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}

func isSeparator(c byte) bool {
	switch c {
	case ',', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// scanValues is a bufio.SplitFunc for comma or white space separated words.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}

	for n := start; n < len(data); n++ {
		if isSeparator(data[n]) {
			return n + 1, data[start:n], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}
