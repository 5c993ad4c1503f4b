// Package frontier provides the three frontier disciplines the search
// loops are parameterized by: LIFO, FIFO, and priority order. All three
// types are ready to use as zero values and none is safe for concurrent
// use.
package frontier

import "container/heap"

// Stack is a LIFO frontier.
type Stack[T any] struct {
	items []T
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item. The second
// return is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return item, true
}

// Len reports the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Queue is a FIFO frontier.
type Queue[T any] struct {
	items []T
	head  int
}

// Push places item at the back of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the oldest pushed item. The second return is
// false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > len(q.items)/2 && q.head > 32 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item, true
}

// Len reports the number of items waiting in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// PriorityQueue is a min-priority frontier. Items with equal priority
// come out in insertion order, so repeated runs over the same pushes pop
// in the same order.
type PriorityQueue[T any] struct {
	heap pqHeap[T]
	seq  uint64
}

// Push places item in the queue at the given priority.
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	pq.seq++
	heap.Push(&pq.heap, pqItem[T]{
		value:    item,
		priority: priority,
		seq:      pq.seq,
	})
}

// Pop removes and returns the item with the lowest priority, ties broken
// by insertion order. The second return is false when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if pq.heap.Len() == 0 {
		var zero T
		return zero, false
	}
	item := heap.Pop(&pq.heap).(pqItem[T])
	return item.value, true
}

// Len reports the number of items in the queue.
func (pq *PriorityQueue[T]) Len() int {
	return pq.heap.Len()
}

// --- heap plumbing ---

type pqItem[T any] struct {
	value    T
	priority float64
	seq      uint64
}

type pqHeap[T any] []pqItem[T]

func (h pqHeap[T]) Len() int { return len(h) }

func (h pqHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h pqHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[T]) Push(x any) {
	*h = append(*h, x.(pqItem[T]))
}

func (h *pqHeap[T]) Pop() any {
	old := *h
	last := len(old) - 1
	item := old[last]
	old[last] = pqItem[T]{}
	*h = old[:last]
	return item
}
