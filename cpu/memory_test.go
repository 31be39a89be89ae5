package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)
	assert.Len(mem, 4)

	assert.NoError(mem.Write(3, -42))
	value, err := mem.Read(3)
	assert.NoError(err)
	assert.Equal(int64(-42), value)

	assert.Equal(ErrAddress(4), mem.Write(4, 1))
	assert.Equal(ErrAddress(-1), mem.Write(-1, 1))

	_, err = mem.Read(4)
	assert.Equal(ErrAddress(4), err)
	assert.ErrorIs(err, ErrAddress(0))
}

func TestMemory_Window(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	start, words := mem.Window(5, 2)
	assert.Equal(int64(3), start)
	assert.Equal([]int64{3, 4, 5, 6, 7}, words)

	start, words = mem.Window(1, 3)
	assert.Equal(int64(0), start)
	assert.Equal([]int64{0, 1, 2, 3, 4}, words)

	start, words = mem.Window(9, 3)
	assert.Equal(int64(6), start)
	assert.Equal([]int64{6, 7, 8, 9}, words)

	// Windows are copies.
	words[0] = 100
	assert.Equal(int64(6), mem[6])

	start, words = mem.Window(50, 3)
	assert.Equal(int64(0), start)
	assert.Empty(words)
}
