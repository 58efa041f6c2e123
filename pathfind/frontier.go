package pathfind

// frontierItem is one discovered-but-not-finalized node in the search
// frontier. estimated orders the heap (accumulated cost for Dijkstra,
// accumulated plus heuristic for A*); actual is the accumulated cost that
// is finalized when the item is popped; seq is the discovery counter that
// breaks priority ties deterministically.
type frontierItem struct {
	estimated float64
	actual    float64
	seq       int
	pos       int // flat index of the node
	origin    int // flat index of the predecessor (== pos for the source)
}

// frontier is a min-heap of frontierItem implementing container/heap.
// Duplicates are allowed (lazy decrease-key): stale entries are skipped on
// pop once their node is finalized.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].estimated != f[j].estimated {
		return f[i].estimated < f[j].estimated
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
