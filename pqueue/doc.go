// Package pqueue provides a generic min-priority queue with stable ties.
//
// What:
//
//   - Queue[T] orders items by an integer priority, lowest first.
//   - Items with equal priority leave in insertion order (FIFO), so the
//     extraction sequence is a pure function of the insertion sequence.
//   - Duplicates are allowed: callers implementing lazy decrease-key push a
//     fresh entry and skip stale ones on extraction.
//
// Complexity:
//
//   - Insert, ExtractMin: O(log n).
//   - Peek, Len, IsEmpty: O(1).
package pqueue
