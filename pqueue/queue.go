package pqueue

import "github.com/zyedidia/generic/heap"

// entry is a single heap slot. seq is the insertion counter that breaks
// priority ties in FIFO order.
type entry[T any] struct {
	item     T
	priority int
	seq      uint64
}

func less[T any](a, b entry[T]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// Queue is a min-priority queue. The zero value is not usable; call New.
type Queue[T any] struct {
	h   *heap.Heap[entry[T]]
	seq uint64
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{h: heap.New[entry[T]](less[T])}
}

// Insert adds item with the given priority.
func (q *Queue[T]) Insert(item T, priority int) {
	q.h.Push(entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// ExtractMin removes and returns the item with the lowest priority.
// ok is false when the queue is empty.
func (q *Queue[T]) ExtractMin() (item T, priority int, ok bool) {
	e, ok := q.h.Pop()
	if !ok {
		return item, 0, false
	}

	return e.item, e.priority, true
}

// Peek returns the next item without removing it.
func (q *Queue[T]) Peek() (item T, priority int, ok bool) {
	e, ok := q.h.Peek()
	if !ok {
		return item, 0, false
	}

	return e.item, e.priority, true
}

// Len returns the number of entries, stale duplicates included.
func (q *Queue[T]) Len() int { return q.h.Size() }

// IsEmpty reports whether Len() == 0.
func (q *Queue[T]) IsEmpty() bool { return q.h.Size() == 0 }

// Clear drops every entry and resets the tie-break counter.
func (q *Queue[T]) Clear() {
	q.h = heap.New[entry[T]](less[T])
	q.seq = 0
}
