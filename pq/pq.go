package pq

import "container/heap"

// entry pairs an item with its priority inside the heap.
type entry[T any] struct {
	item     T
	priority float64
}

// entries implements heap.Interface ordered by priority ascending.
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entries[T]) Len() int { return len(h) }

// Less uses strict comparison so equal priorities never swap.
func (h entries[T]) Less(i, j int) bool { return h[i].priority < h[j].priority }

// Swap exchanges two entries.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop only.
func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference so the item can be collected
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue. The zero value is ready to use.
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	h entries[T]
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewWithCapacity returns an empty Queue with room for n entries
// before the backing slice grows.
func NewWithCapacity[T any](n int) *Queue[T] {
	if n < 0 {
		n = 0
	}

	return &Queue[T]{h: make(entries[T], 0, n)}
}

// Push inserts item with the given priority.
// Complexity: O(log n).
func (q *Queue[T]) Push(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority})
}

// Pop removes and returns the item with the smallest priority.
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (item T, ok bool) {
	if len(q.h) == 0 {
		return item, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, true
}

// PopWithPriority is Pop that also reports the priority the item was pushed with.
// Shortest-path loops use it to recognise stale entries.
func (q *Queue[T]) PopWithPriority() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the minimum entry without removing it.
func (q *Queue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}

	return q.h[0].item, q.h[0].priority, true
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue[T]) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }
