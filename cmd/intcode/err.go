package main

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrTarget    = errors.New(f("target must be a single integer"))
	ErrNoProgram = errors.New(f("no program file given"))
)

// ErrConfigKey is an unknown key in a configuration file.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown configuration key '%v'", string(err))
}
