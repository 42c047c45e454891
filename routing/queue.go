package routing

import "container/heap"

// item is a frontier entry. seq is the push order and breaks priority ties.
type item struct {
	id       int
	priority float64
	seq      uint64
}

// itemHeap is a min-heap of items ordered by (priority, seq).
type itemHeap []item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(item)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// frontier is a lazy-deletion priority queue: outdated entries stay in the
// heap and are skipped by the caller when popped.
type frontier struct {
	h   itemHeap
	seq uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{h: make(itemHeap, 0, capacity)}
}

func (f *frontier) push(id int, priority float64) {
	heap.Push(&f.h, item{id: id, priority: priority, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() item { return heap.Pop(&f.h).(item) }

func (f *frontier) len() int { return f.h.Len() }
