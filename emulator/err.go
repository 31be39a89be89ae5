package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrNoOutput       = errors.New(f("halted without output"))
	ErrNotHalted      = errors.New(f("stopped without halting"))
	ErrDeadlock       = errors.New(f("all amplifiers starved of input"))
	ErrNoPhases       = errors.New(f("no phase settings"))
	ErrNotFound       = errors.New(f("no solution found"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip    uint64
	Ticks int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d tick %d %v", err.Ip, err.Ticks, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrAmplifier indicates which amplifier of a network failed.
type ErrAmplifier struct {
	Index int
	Err   error
}

func (err *ErrAmplifier) Error() string {
	return f("amplifier %d %v", err.Index, err.Err)
}

func (err *ErrAmplifier) Unwrap() error {
	return err.Err
}
