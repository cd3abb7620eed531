package search

// frontier is a min-heap of arena indices ordered by f-score. It satisfies
// container/heap.Interface; ties between equal f-scores are resolved by heap
// mechanics and push order, which is why expansion order is fixed.
type frontier struct {
	a   *arena
	ids []int
}

func (f *frontier) Len() int { return len(f.ids) }

func (f *frontier) Less(i, j int) bool {
	return f.a.nodes[f.ids[i]].f < f.a.nodes[f.ids[j]].f
}

func (f *frontier) Swap(i, j int) { f.ids[i], f.ids[j] = f.ids[j], f.ids[i] }

func (f *frontier) Push(x any) { f.ids = append(f.ids, x.(int)) }

func (f *frontier) Pop() any {
	old := f.ids
	n := len(old)
	id := old[n-1]
	f.ids = old[:n-1]
	return id
}

// worst returns the heap slice index of the entry with the highest f-score,
// ties broken by greatest depth. Used by bounded-memory eviction.
func (f *frontier) worst() int {
	wi := 0
	for i := 1; i < len(f.ids); i++ {
		w, c := f.a.nodes[f.ids[wi]], f.a.nodes[f.ids[i]]
		if c.f > w.f || (c.f == w.f && c.depth > w.depth) {
			wi = i
		}
	}
	return wi
}
