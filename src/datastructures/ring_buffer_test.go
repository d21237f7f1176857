package datastructures_test

import (
	"testing"

	"github.com/reb27/ringqueue/src/datastructures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func drain(q *datastructures.RingBuffer[int]) []int {
	var out []int
	for {
		val, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, val)
	}
}

func TestRingBuffer_EnqueueAndDequeue(t *testing.T) {
	storage := make([]int, 4)
	q := datastructures.NewRingBuffer(storage)

	assert.True(t, q.Enqueue(1))
	assert.True(t, q.Enqueue(2))
	assert.True(t, q.Enqueue(3))
	assert.False(t, q.Enqueue(4))

	// { 1, 2, 3 }
	val, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	// { 2, 3 }
	assert.True(t, q.Enqueue(4))

	// { 2, 3, 4 }
	val, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 2, val)

	// { 3, 4 }
	val, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 3, val)

	// { 4 }
	val, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 4, val)

	// { }
	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestRingBuffer_LenUpToCapacity(t *testing.T) {
	for n := 1; n <= 8; n++ {
		q := datastructures.NewRingBuffer(make([]int, n))
		assert.Equal(t, n-1, q.Cap())

		for k := 1; k <= n-1; k++ {
			assert.True(t, q.Enqueue(k))
			assert.Equal(t, k, q.Len())
		}

		assert.True(t, q.IsFull())
		assert.False(t, q.Enqueue(-1))
		assert.Equal(t, n-1, q.Len())
	}
}

func TestRingBuffer_SingleSlot(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 1))

	assert.True(t, q.IsFull())
	assert.False(t, q.HasElements())
	assert.False(t, q.Enqueue(1))
	assert.Equal(t, 0, q.Len())

	_, ok := q.Dequeue()
	assert.False(t, ok)
}

func TestRingBuffer_FullLeavesStorageUntouched(t *testing.T) {
	storage := make([]int, 3)
	q := datastructures.NewRingBuffer(storage)

	require.True(t, q.Enqueue(7))
	require.True(t, q.Enqueue(8))

	before := slices.Clone(storage)
	assert.False(t, q.Enqueue(9))
	assert.Equal(t, before, storage)
	assert.Equal(t, 2, q.Len())
}

func TestRingBuffer_WritesIntoCallerStorage(t *testing.T) {
	storage := make([]int, 4)
	q := datastructures.NewRingBuffer(storage)

	q.Enqueue(10)
	q.Enqueue(20)

	assert.Equal(t, []int{10, 20, 0, 0}, storage)
}

func TestRingBuffer_DequeueEmpty(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]string, 2))

	val, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, "", val)
	assert.False(t, q.HasElements())
}

func TestRingBuffer_FIFOOrder(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 6))

	values := []int{42, 7, 19, 3, 88}
	for _, v := range values {
		require.True(t, q.Enqueue(v))
	}

	assert.Equal(t, values, drain(&q))
}

func TestRingBuffer_Wraparound(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 4))

	// enqueue 3
	assert.True(t, q.Enqueue(1))
	assert.True(t, q.Enqueue(2))
	assert.True(t, q.Enqueue(3))
	assert.Equal(t, 3, q.Len())

	// dequeue 2
	val, _ := q.Dequeue()
	assert.Equal(t, 1, val)
	val, _ = q.Dequeue()
	assert.Equal(t, 2, val)
	assert.Equal(t, 1, q.Len())

	// enqueue 2, tail wraps to index 1
	assert.True(t, q.Enqueue(4))
	assert.True(t, q.Enqueue(5))
	assert.Equal(t, 3, q.Len())
	assert.True(t, q.IsFull())
	assert.False(t, q.Enqueue(6))

	// dequeue 3, head wraps as well
	assert.Equal(t, []int{3, 4, 5}, drain(&q))
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.HasElements())
}

func TestRingBuffer_LenAcrossOffsets(t *testing.T) {
	const n = 5
	q := datastructures.NewRingBuffer(make([]int, n))

	// Step head and tail through every offset with every fill level.
	expected := 0
	for round := 0; round < 4*n; round++ {
		for q.Enqueue(round) {
			expected++
			assert.Equal(t, expected, q.Len())
		}
		for i := 0; i <= round%n && q.HasElements(); i++ {
			q.Dequeue()
			expected--
			assert.Equal(t, expected, q.Len())
		}
	}
}

func TestRingBuffer_Peek(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 3))

	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue(5)
	q.Enqueue(6)

	val, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 5, val)
	assert.Equal(t, 2, q.Len())
}

func TestRingBuffer_Empty(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 4))

	q.Enqueue(1)
	q.Enqueue(2)
	q.Dequeue()
	q.Enqueue(3)
	q.Enqueue(4)

	q.Empty()
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.HasElements())

	_, ok := q.Dequeue()
	assert.False(t, ok)

	// Full capacity is available again
	assert.True(t, q.Enqueue(1))
	assert.True(t, q.Enqueue(2))
	assert.True(t, q.Enqueue(3))
	assert.False(t, q.Enqueue(4))
}

func TestRingBuffer_Retain(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 8))
	for i := 1; i <= 7; i++ {
		q.Enqueue(i)
	}

	q.Retain(func(v int) bool { return v%2 == 1 })

	assert.Equal(t, 4, q.Len())
	assert.Equal(t, []int{1, 3, 5, 7}, drain(&q))
}

func TestRingBuffer_RetainWrapped(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 5))

	// Move head to index 3 so the window wraps: { 3, 4, 5, 6 }
	for i := 0; i < 3; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 3; i++ {
		q.Dequeue()
	}
	for i := 3; i <= 6; i++ {
		require.True(t, q.Enqueue(i))
	}

	q.Retain(func(v int) bool { return v != 4 })

	// { 3, 5, 6 }
	assert.Equal(t, 3, q.Len())
	assert.True(t, q.Enqueue(7))
	assert.False(t, q.Enqueue(8))
	assert.Equal(t, []int{3, 5, 6, 7}, drain(&q))
}

func TestRingBuffer_RetainAllIsNoop(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 4))
	q.Enqueue(9)
	q.Enqueue(8)
	q.Enqueue(7)

	q.Retain(func(int) bool { return true })

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{9, 8, 7}, drain(&q))
}

func TestRingBuffer_RetainNone(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 4))
	q.Enqueue(1)
	q.Enqueue(2)

	q.Retain(func(int) bool { return false })

	assert.False(t, q.HasElements())
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Enqueue(3))
}

func TestRingBuffer_RetainVisitsInOrder(t *testing.T) {
	q := datastructures.NewRingBuffer(make([]int, 4))
	q.Enqueue(1)
	q.Dequeue()
	q.Enqueue(2)
	q.Enqueue(3)
	q.Enqueue(4)

	var seen []int
	q.Retain(func(v int) bool {
		seen = append(seen, v)
		return true
	})

	assert.Equal(t, []int{2, 3, 4}, seen)
}

func TestRingBuffer_ZeroStoragePanics(t *testing.T) {
	assert.Panics(t, func() {
		datastructures.NewRingBuffer([]int{})
	})
}
