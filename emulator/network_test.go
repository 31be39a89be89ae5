package emulator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
)

const (
	ampDigits   = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"
	ampReverse  = "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0"
	ampFeedback = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
)

func mustNetwork(t *testing.T, program string) *Network {
	prog, err := cpu.ParseProgramString(program)
	assert.NoError(t, err)
	return &Network{Program: prog}
}

func TestNetwork_Chain(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program string
		phases  []int64
		output  int64
	}){
		{ampDigits, []int64{4, 3, 2, 1, 0}, 43210},
		{ampDigits, []int64{0, 1, 2, 3, 4}, 1234},
		{ampReverse, []int64{0, 1, 2, 3, 4}, 54321},
		{ampDigits, []int64{7}, 7},
	}

	for _, entry := range table {
		nw := mustNetwork(t, entry.program)
		output, err := nw.Chain(entry.phases, 0)
		assert.NoError(err, entry.phases)
		assert.Equal(entry.output, output, entry.phases)
	}
}

func TestNetwork_ChainErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program string
		phases  []int64
		err     error
		index   int
	}){
		{"no_output", "3,0,3,0,99", []int64{0, 1}, ErrNoOutput, 0},
		{"starved", "3,0,3,0,3,0,99", []int64{0, 1}, ErrInputExhausted, 0},
		{"fault", "3,0,3,1,42", []int64{0, 1}, cpu.ErrOpcodeUnknown, 0},
	}

	for _, entry := range table {
		nw := mustNetwork(t, entry.program)
		_, err := nw.Chain(entry.phases, 0)
		assert.ErrorIs(err, entry.err, entry.name)

		var amperr *ErrAmplifier
		if assert.ErrorAs(err, &amperr, entry.name) {
			assert.Equal(entry.index, amperr.Index, entry.name)
		}
	}

	nw := mustNetwork(t, ampDigits)
	_, err := nw.Chain(nil, 0)
	assert.ErrorIs(err, ErrNoPhases)
}

func TestNetwork_Feedback(t *testing.T) {
	assert := assert.New(t)

	nw := mustNetwork(t, ampFeedback)
	output, err := nw.Feedback([]int64{9, 8, 7, 6, 5}, 0)
	assert.NoError(err)
	assert.Equal(int64(139629729), output)

	// Amplifiers that halt after one output behave as a chain.
	nw = mustNetwork(t, ampDigits)
	output, err = nw.Feedback([]int64{4, 3, 2, 1, 0}, 0)
	assert.NoError(err)
	assert.Equal(int64(43210), output)
}

func TestNetwork_FeedbackDeadlock(t *testing.T) {
	assert := assert.New(t)

	nw := mustNetwork(t, "3,0,3,0,99")
	_, err := nw.Feedback([]int64{0, 1}, 0)
	assert.ErrorIs(err, ErrDeadlock)

	nw = mustNetwork(t, "3,0,3,0,99")
	_, err = nw.Feedback([]int64{0}, 0)
	assert.ErrorIs(err, ErrNoOutput)
}

func TestNetwork_MaxSignal(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program  string
		phases   []int64
		feedback bool
		best     int64
		order    []int64
	}){
		{ampDigits, []int64{0, 1, 2, 3, 4}, false, 43210, []int64{4, 3, 2, 1, 0}},
		{ampReverse, []int64{4, 3, 2, 1, 0}, false, 54321, []int64{0, 1, 2, 3, 4}},
		{ampFeedback, []int64{5, 6, 7, 8, 9}, true, 139629729, []int64{9, 8, 7, 6, 5}},
	}

	for _, entry := range table {
		nw := mustNetwork(t, entry.program)
		best, order, err := nw.MaxSignal(entry.phases, entry.feedback)
		assert.NoError(err)
		assert.Equal(entry.best, best)
		assert.Equal(entry.order, order)
	}

	nw := mustNetwork(t, ampDigits)
	_, _, err := nw.MaxSignal(nil, false)
	assert.ErrorIs(err, ErrNoPhases)
}

func TestNetwork_Pipeline(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program  string
		phases   []int64
		feedback bool
		output   int64
	}){
		{ampDigits, []int64{4, 3, 2, 1, 0}, false, 43210},
		{ampReverse, []int64{0, 1, 2, 3, 4}, false, 54321},
		{ampDigits, []int64{4, 3, 2, 1, 0}, true, 43210},
		{ampFeedback, []int64{9, 8, 7, 6, 5}, true, 139629729},
	}

	for _, entry := range table {
		nw := mustNetwork(t, entry.program)
		output, err := nw.Pipeline(context.Background(), entry.phases, 0, entry.feedback)
		assert.NoError(err, entry.phases)
		assert.Equal(entry.output, output, entry.phases)
	}
}

func TestNetwork_PipelineRing(t *testing.T) {
	assert := assert.New(t)

	// Each amplifier writes twice before reading its neighbour's output,
	// and a ring of one feeds itself.
	table := [](struct {
		program string
		phases  []int64
		signal  int64
		output  int64
	}){
		{"3,20,3,21,4,21,4,21,99", []int64{0, 1}, 5, 5},
		{"3,20,3,21,4,21,4,21,99", []int64{0, 1, 2}, 7, 7},
		{ampDigits, []int64{7}, 0, 7},
		{ampFeedback, []int64{5, 6, 7, 8, 9}, 0, 61696857},
	}

	for _, entry := range table {
		nw := mustNetwork(t, entry.program)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		output, err := nw.Pipeline(ctx, entry.phases, entry.signal, true)
		cancel()
		assert.NoError(err, entry.phases)
		assert.Equal(entry.output, output, entry.phases)

		expected, err := nw.Feedback(entry.phases, entry.signal)
		assert.NoError(err, entry.phases)
		assert.Equal(expected, output, entry.phases)
	}
}

func TestNetwork_PipelineErrors(t *testing.T) {
	assert := assert.New(t)

	// The first amplifier of a chain has nobody to read from.
	nw := mustNetwork(t, "3,0,3,0,3,0,99")
	_, err := nw.Pipeline(context.Background(), []int64{0, 1}, 0, false)
	assert.ErrorIs(err, ErrInputExhausted)
	var amperr *ErrAmplifier
	if assert.ErrorAs(err, &amperr) {
		assert.Equal(0, amperr.Index)
	}

	// A fault cancels the other amplifiers.
	nw = mustNetwork(t, "3,0,3,1,42")
	_, err = nw.Pipeline(context.Background(), []int64{0, 1, 2}, 0, true)
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)

	// A ring starved of input waits on the context.
	nw = mustNetwork(t, "3,0,3,0,3,0,99")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = nw.Pipeline(ctx, []int64{0}, 0, true)
	assert.ErrorIs(err, context.DeadlineExceeded)

	_, err = nw.Pipeline(context.Background(), nil, 0, true)
	assert.ErrorIs(err, ErrNoPhases)
}
