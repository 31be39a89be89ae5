package io

import (
	"iter"
	"slices"
)

// Queue is an unbounded FIFO of values.
type Queue struct {
	Data []int64
}

var _ Channel = (*Queue)(nil)

// Push appends values to the tail of the queue.
func (q *Queue) Push(values ...int64) {
	q.Data = append(q.Data, values...)
}

// Pop removes and returns the value at the head of the queue.
func (q *Queue) Pop() (value int64, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
	}
	return
}

// Peek returns the value at the head of the queue without removing it.
func (q *Queue) Peek() (value int64, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue) Len() int {
	return len(q.Data)
}

// Reset empties the queue.
func (q *Queue) Reset() {
	q.Data = nil
}

// Clone returns an independent copy of the queue.
func (q *Queue) Clone() Queue {
	return Queue{Data: slices.Clone(q.Data)}
}

// Rewind empties the queue.
func (q *Queue) Rewind() {
	q.Reset()
}

// Receive returns an iterator that drains the queue.
// Values not consumed by the iteration stay queued.
func (q *Queue) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for {
			value, ok := q.Pop()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Send pushes a value; a Queue never fills.
func (q *Queue) Send(value int64) (err error) {
	q.Push(value)
	return
}
