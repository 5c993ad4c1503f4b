package gsearch

// openItem is one open-set entry of the parallel search. IndexInQueue is
// maintained by openHeap so a relaxation can reprioritize the entry in
// place with heap.Fix.
type openItem[S comparable] struct {
	State        S
	GScore       float64
	FCost        float64
	IndexInQueue int
}

type openHeap[S comparable] []*openItem[S]

func (h openHeap[S]) Len() int           { return len(h) }
func (h openHeap[S]) Less(i, j int) bool { return h[i].FCost < h[j].FCost }
func (h openHeap[S]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].IndexInQueue = i
	h[j].IndexInQueue = j
}

func (h *openHeap[S]) Push(x any) {
	item := x.(*openItem[S])
	item.IndexInQueue = len(*h)
	*h = append(*h, item)
}

func (h *openHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
