package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Computer errors
	ErrNotLoaded    = errors.New(f("no program loaded"))
	ErrProgramEmpty = errors.New(f("program empty"))

	// Instruction decode errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
	ErrModeInvalid   = errors.New(f("addressing mode invalid"))
	ErrOpcodeArg1    = errors.New(f("arg1"))
	ErrOpcodeArg2    = errors.New(f("arg2"))
	ErrOpcodeArg3    = errors.New(f("arg3"))
)

// _err_arg maps an operand index to its decode error.
var _err_arg = [...]error{ErrOpcodeArg1, ErrOpcodeArg2, ErrOpcodeArg3}

// ErrAddress is a memory address outside of the Computer's memory.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("address %d out of range", int64(ea))
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrOpcode describes the instruction that faulted, with a window of
// the memory surrounding it.
type ErrOpcode struct {
	Ip     uint64  // Address of the instruction.
	Code   Code    // Instruction word.
	Start  int64   // Address of the first word in Window.
	Window []int64 // Memory around the instruction.
}

func (eo ErrOpcode) Error() string {
	return f("fault at %d in instruction %d (%v): %v", eo.Ip, int64(eo.Code), eo.Code.String(), formatWindow(eo.Start, eo.Window, int64(eo.Ip)))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrParseNumber is a program token that is not a decimal integer.
type ErrParseNumber struct {
	Index int    // Index of the token in the program.
	Token string // Token text.
}

func (err ErrParseNumber) Error() string {
	return f("program word %d '%v' is not a number", err.Index, err.Token)
}

// formatWindow formats a memory window, bracketing the word at mark.
func formatWindow(start int64, words []int64, mark int64) string {
	var text strings.Builder
	fmt.Fprintf(&text, "%04d:", start)
	for n, word := range words {
		if start+int64(n) == mark {
			fmt.Fprintf(&text, " [%d]", word)
		} else {
			fmt.Fprintf(&text, " %d", word)
		}
	}
	return text.String()
}
