package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_Push(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	assert.True(q.Empty())

	q.Push(0x12345678)
	q.Push(-1, 2)
	assert.False(q.Empty())
	assert.Equal(3, q.Len())
	assert.Equal([]int64{0x12345678, -1, 2}, q.Data)
}

func TestQueue_Pop(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(10, 20)

	val, ok := q.Pop()
	assert.True(ok)
	assert.Equal(int64(10), val)
	assert.Equal(1, q.Len())

	val, ok = q.Pop()
	assert.True(ok)
	assert.Equal(int64(20), val)
	assert.True(q.Empty())
}

func TestQueue_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	val, ok := q.Pop()
	assert.False(ok)
	assert.Equal(int64(0), val)
}

func TestQueue_Peek(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	_, ok := q.Peek()
	assert.False(ok)

	q.Push(7, 8)
	val, ok := q.Peek()
	assert.True(ok)
	assert.Equal(int64(7), val)
	assert.Equal(2, q.Len())
}

func TestQueue_Reset(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(1, 2, 3)
	q.Reset()
	assert.True(q.Empty())

	q.Push(4)
	q.Rewind()
	assert.True(q.Empty())
}

func TestQueue_Clone(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(1, 2)

	dup := q.Clone()
	q.Pop()
	dup.Push(3)

	assert.Equal([]int64{2}, q.Data)
	assert.Equal([]int64{1, 2, 3}, dup.Data)
}

func TestQueue_Receive(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	for n := range 5 {
		assert.NoError(q.Send(int64(n)))
	}

	var got []int64
	for value := range q.Receive() {
		got = append(got, value)
		if value == 2 {
			break
		}
	}

	assert.Equal([]int64{0, 1, 2}, got)
	assert.Equal([]int64{3, 4}, q.Data)

	got = nil
	for value := range q.Receive() {
		got = append(got, value)
	}
	assert.Equal([]int64{3, 4}, got)
	assert.True(q.Empty())
}
