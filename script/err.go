package script

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNotInteger = errors.New(f("not an integer"))
	ErrOverflow   = errors.New(f("integer overflows 64 bits"))
	ErrNoProgram  = errors.New(f("no program given"))
	ErrUnhashable = errors.New(f("unhashable"))
	ErrKeyword    = errors.New(f("unexpected keyword argument"))
)

// ErrArgument is a bad argument to a script builtin.
type ErrArgument struct {
	Func string // Builtin or method name.
	Arg  string // Argument name.
	Err  error
}

func (err *ErrArgument) Error() string {
	return f("%s: %s: %v", err.Func, err.Arg, err.Err)
}

func (err *ErrArgument) Unwrap() error {
	return err.Err
}

// ErrScript is a script that failed to load or run.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%s: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
