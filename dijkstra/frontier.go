package dijkstra

// entry is one frontier item: a state index and the cost it was pushed with.
// seq is the push counter; equal costs pop in push order, which makes the
// predecessor chosen by Result.Path deterministic.
type entry struct {
	cost int64
	seq  uint64
	idx  int
}

// frontier is a min-heap of entries ordered by (cost, seq).
// We use the “lazy-decrease-key” approach: when a state improves, a new entry
// is pushed and the outdated one stays in the heap until it is popped and
// discarded by the visited check.
type frontier []entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by cost, then by push order.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum there.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
