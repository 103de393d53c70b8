// Package pq provides a binary min-heap priority queue keyed by a float64
// priority.
//
// What
//
//   - Push(item, priority) inserts in O(log n), sifting the new entry up while
//     its priority is strictly smaller than its parent's.
//   - Pop() removes and returns the item with the smallest priority in O(log n);
//     on an empty queue it returns the zero value and ok == false.
//   - Len() and IsEmpty() are O(1).
//
// Lazy decrease-key
//
//	There is no decrease-key operation. Shortest-path algorithms push a new
//	entry for an item whose priority improved and skip stale entries for items
//	that are already finalized when they surface:
//
//		q := pq.New[int]()
//		q.Push(7, 10)
//		q.Push(7, 4) // improved; the (7,10) entry stays and is skipped later
//		for !q.IsEmpty() {
//			id, _ := q.Pop()
//			if settled[id] {
//				continue
//			}
//			settled[id] = true
//		}
//
// Ties
//
//	Entries with equal priority are not swapped during sifting, so the order
//	among ties is implementation-defined but deterministic for a given
//	insertion sequence. It is not FIFO.
package pq
