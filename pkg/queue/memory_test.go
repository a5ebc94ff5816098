package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue[string](4)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))
	assert.Equal(t, 3, q.Size())

	item, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "a", item)

	assert.Equal(t, []string{"b", "c"}, q.ReadAll())
	assert.Equal(t, 0, q.Size())
	assert.Nil(t, q.ReadAll())
}

func TestInMemoryQueue_Full(t *testing.T) {
	q := NewInMemoryQueue[int](2)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	err := q.Enqueue(3)

	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, []int{1, 2}, q.ReadAll())
}

func TestInMemoryQueue_DequeueEmpty(t *testing.T) {
	q := NewInMemoryQueue[int](1)

	item, ok := q.Dequeue()

	assert.False(t, ok)
	assert.Zero(t, item)
}

func TestInMemoryQueue_Clear(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	q.Clear()

	assert.Equal(t, 0, q.Size())
	assert.Equal(t, QueueBufferSize, cap(q.ch))
}
