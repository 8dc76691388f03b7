package pq

import "container/heap"

// Item is a single entry in the queue: an opaque Value ordered by Cost.
// Seq breaks ties in insertion order, so equal-cost pops stay
// deterministic regardless of map/slice iteration order upstream.
type Item struct {
	Value interface{}
	Cost  float64
	Seq   int64
}

// innerHeap is the container/heap.Interface implementation. It is not
// exported; callers only ever see the Queue wrapper below.
type innerHeap []Item

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}
	// Equal cost: earlier insertion wins, giving fully deterministic
	// output regardless of map/slice iteration order upstream.
	return h[i].Seq < h[j].Seq
}

func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap) Push(x interface{}) {
	*h = append(*h, x.(Item))
}

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Queue is a binary min-heap of Items, ordered by ascending Cost with
// insertion-order tie-breaking.
type Queue struct {
	h    innerHeap
	next int64
}

// New returns an empty Queue ready for use.
func New() *Queue {
	q := &Queue{h: make(innerHeap, 0, 16)}
	heap.Init(&q.h)
	return q
}

// Push inserts value at the given cost. Complexity: O(log n).
func (q *Queue) Push(value interface{}, cost float64) {
	heap.Push(&q.h, Item{Value: value, Cost: cost, Seq: q.next})
	q.next++
}

// Pop removes and returns the lowest-cost Item. ok is false if the queue
// is empty. Complexity: O(log n).
func (q *Queue) Pop() (Item, bool) {
	if q.h.Len() == 0 {
		return Item{}, false
	}
	return heap.Pop(&q.h).(Item), true
}

// Len reports the number of items currently queued.
func (q *Queue) Len() int { return q.h.Len() }
