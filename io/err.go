package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
)

// ErrParseValue is a tape token that is not a decimal integer.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a number", string(err))
}
