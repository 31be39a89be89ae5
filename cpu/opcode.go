package cpu

import (
	"fmt"
	"strings"
)

// CodeOp is an operation, the low two decimal digits of an instruction word.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD  = CodeOp(1)  // add
	OP_MUL  = CodeOp(2)  // mul
	OP_IN   = CodeOp(3)  // in
	OP_OUT  = CodeOp(4)  // out
	OP_JT   = CodeOp(5)  // jt
	OP_JF   = CodeOp(6)  // jf
	OP_LT   = CodeOp(7)  // lt
	OP_EQ   = CodeOp(8)  // eq
	OP_ARB  = CodeOp(9)  // arb
	OP_HALT = CodeOp(99) // halt
)

// Operand count for each operation.
var _op_operands = map[CodeOp]int{
	OP_ADD:  3,
	OP_MUL:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_JT:   2,
	OP_JF:   2,
	OP_LT:   3,
	OP_EQ:   3,
	OP_ARB:  1,
	OP_HALT: 0,
}

// Valid returns true if the operation is part of the instruction set.
func (op CodeOp) Valid() (ok bool) {
	_, ok = _op_operands[op]
	return
}

// Operands returns the number of operands the operation takes.
func (op CodeOp) Operands() int {
	return _op_operands[op]
}

// Width returns the number of memory words of the instruction.
func (op CodeOp) Width() int {
	return 1 + op.Operands()
}

// CodeMode is an operand addressing mode.
type CodeMode int

//go:generate go tool stringer -linecomment -type=CodeMode
const (
	MODE_POSITION  = CodeMode(0) // pos
	MODE_IMMEDIATE = CodeMode(1) // imm
	MODE_RELATIVE  = CodeMode(2) // rel
)

// Valid returns true for the three defined addressing modes.
func (mode CodeMode) Valid() bool {
	return mode >= MODE_POSITION && mode <= MODE_RELATIVE
}

// _mode_scale is the divisor selecting the mode digit of each operand.
var _mode_scale = [...]int64{100, 1000, 10000}

// Code is a single instruction word, as fetched from memory.
type Code int64

// MakeCode creates an instruction word from an operation and its operand modes.
func MakeCode(op CodeOp, modes ...CodeMode) Code {
	word := int64(op)
	for n, mode := range modes {
		word += int64(mode) * _mode_scale[n]
	}
	return Code(word)
}

// Op returns the operation of the instruction word.
func (code Code) Op() CodeOp {
	return CodeOp(int64(code) % 100)
}

// Mode returns the addressing mode of the operand at index.
func (code Code) Mode(index int) CodeMode {
	return CodeMode((int64(code) / _mode_scale[index]) % 10)
}

// Decode returns the operation and the modes of all of its operands.
func (code Code) Decode() (op CodeOp, modes []CodeMode) {
	op = code.Op()
	modes = make([]CodeMode, op.Operands())
	for n := range modes {
		modes[n] = code.Mode(n)
	}
	return
}

// String returns the mnemonic form of the instruction word, ie "add.imm.pos.rel".
func (code Code) String() string {
	op, modes := code.Decode()
	if !op.Valid() {
		return fmt.Sprintf("?%d", int64(code))
	}

	words := []string{op.String()}
	for _, mode := range modes {
		words = append(words, mode.String())
	}

	return strings.Join(words, ".")
}
