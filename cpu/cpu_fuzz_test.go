package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzComputer(f *testing.F) {
	for _, op := range []CodeOp{OP_ADD, OP_MUL, OP_IN, OP_OUT, OP_JT, OP_JF, OP_LT, OP_EQ, OP_ARB, OP_HALT} {
		for mode := range CodeMode(4) {
			word := int64(MakeCode(op, mode, mode, mode))
			f.Add(word, int64(1), int64(2), int64(3), int64(5), false)
			f.Add(word, int64(-1), int64(0), int64(40), int64(-5), true)
		}
	}

	f.Fuzz(func(t *testing.T, word int64, a, b, c, base int64, input bool) {
		assert := assert.New(t)

		const ip = 8

		cpu := NewComputer(32)
		assert.NoError(cpu.Flash(Program{10, 11, 12, 13, 14, 15, 16, 17, word, a, b, c}))
		cpu.Ip = ip
		cpu.Base = base
		if input {
			cpu.Input(77)
		}

		pre := cpu.Clone()
		code := Code(word)
		op := code.Op()

		intr, yield, err := cpu.Tick()

		code_str := fmt.Sprintf("%d (%v) operands:%v,%v,%v base:%v input:%v\ncpu:%v",
			word, code, a, b, c, base, input, cpu.String())

		if err != nil {
			// Every fault is a decode or address problem of this instruction.
			assert.True(errors.Is(err, ErrOpcode{}), code_str)
			assert.True(errors.Is(err, ErrOpcodeUnknown) || errors.Is(err, ErrModeInvalid) || errors.Is(err, ErrAddress(0)), code_str)
			assert.True(yield, code_str)
			assert.Equal(INTERRUPT_HALT, intr, code_str)
			assert.Equal(STATE_HALTED, cpu.State, code_str)
			assert.Equal(uint64(ip), cpu.Ip, code_str)
			assert.Equal(pre.In.Data, cpu.In.Data, code_str)
			return
		}

		assert.True(op.Valid(), code_str)

		switch op {
		case OP_HALT:
			assert.True(yield, code_str)
			assert.Equal(INTERRUPT_HALT, intr, code_str)
			assert.Equal(uint64(ip), cpu.Ip, code_str)
		case OP_IN:
			if input {
				assert.False(yield, code_str)
				assert.Equal(uint64(ip+2), cpu.Ip, code_str)
				assert.True(cpu.In.Empty(), code_str)
			} else {
				assert.True(yield, code_str)
				assert.Equal(INTERRUPT_INPUT, intr, code_str)
				assert.Equal(uint64(ip), cpu.Ip, code_str)
				assert.Equal(pre.Fingerprint(), cpu.Fingerprint(), code_str)
			}
		case OP_OUT:
			assert.True(yield, code_str)
			assert.Equal(INTERRUPT_OUTPUT, intr, code_str)
			assert.Equal(1, cpu.Out.Len(), code_str)
			assert.Equal(uint64(ip+2), cpu.Ip, code_str)
		case OP_JT, OP_JF:
			assert.False(yield, code_str)
			if cpu.Ip != uint64(ip+3) {
				target, err := pre.getValue(code, 1)
				assert.NoError(err, code_str)
				assert.Equal(uint64(target), cpu.Ip, code_str)
			}
		case OP_ARB:
			assert.False(yield, code_str)
			value, err := pre.getValue(code, 0)
			assert.NoError(err, code_str)
			assert.Equal(base+value, cpu.Base, code_str)
			assert.Equal(uint64(ip+2), cpu.Ip, code_str)
		default:
			assert.False(yield, code_str)
			assert.Equal(uint64(ip+4), cpu.Ip, code_str)
			x, _ := pre.getValue(code, 0)
			y, _ := pre.getValue(code, 1)
			dst, err := pre.writeAddr(code, 2)
			assert.NoError(err, code_str)
			assert.Equal(pre.doAlu(op, x, y), cpu.Memory[dst], code_str)
		}
	})
}
