package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
)

// accumulator reads values forever, writing the running sum after each.
const accumulator = "3,100,1,100,101,101,4,101,1105,1,0"

func TestExplorer(t *testing.T) {
	assert := assert.New(t)

	start := cpu.NewComputer(0)
	assert.NoError(start.LoadString(accumulator))

	visited := 0
	ex := &Explorer{Moves: []int64{1, 2}}
	node, err := ex.Explore(start, func(node *Node) (keep, done bool) {
		visited++
		sum := node.Response[0]
		return sum < 5, sum == 5
	})
	assert.NoError(err)
	assert.Equal([]int64{1, 2, 2}, node.Path)
	assert.Equal([]int64{5}, node.Response)
	assert.Equal(cpu.STATE_INTERRUPTED, node.State)
	assert.Equal(int64(2), node.Memory[100])

	// [1,1,1] and [1,1,2] repeat the states of [2,1] and [2,2].
	assert.Equal(8, visited)

	// The start Computer is untouched.
	assert.Equal(cpu.STATE_READY, start.State)
	assert.Equal(int64(0), start.Memory[101])
}

func TestExplorer_NotFound(t *testing.T) {
	assert := assert.New(t)

	start := cpu.NewComputer(0)
	assert.NoError(start.LoadString(accumulator))

	ex := &Explorer{Moves: []int64{2}}
	node, err := ex.Explore(start, func(node *Node) (keep, done bool) {
		sum := node.Response[0]
		return sum < 5, sum == 5
	})
	assert.ErrorIs(err, ErrNotFound)
	assert.Nil(node)
}

func TestExplorer_Prune(t *testing.T) {
	assert := assert.New(t)

	// Input 1 halts, input 2 faults, anything else is echoed.
	start := cpu.NewComputer(0)
	assert.NoError(start.LoadString("3,100,1008,100,1,101,1005,101,21,1008,100,2,101,1005,101,30,4,100,1105,1,0,99"))

	var paths [][]int64
	ex := &Explorer{Moves: []int64{1, 2, 3}}
	_, err := ex.Explore(start, func(node *Node) (keep, done bool) {
		paths = append(paths, node.Path)
		return len(node.Path) < 2, false
	})
	assert.ErrorIs(err, ErrNotFound)

	// Faulting nodes are never seen. [3,1] halts in the same state as [1],
	// and [3,3] is back where [3] was.
	assert.Equal([][]int64{{1}, {3}}, paths)
}
