package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue has no free slot.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic FIFO queue.
type Queue[T any] interface {
	Enqueue(item T) error
	Dequeue() (T, bool)
	Size() int
	ReadAll() []T
	Clear()
}
