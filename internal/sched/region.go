package sched

// Region is a queue of tasks with a fixed priority of its own. The
// Scheduler orders regions by that priority alone; the tasks inside are
// ordered by the region's heap configuration.
type Region struct {
	heap     *Heap
	priority int
}

// NewRegion creates an empty region. The priority cannot be changed later.
func NewRegion(fn PriorityFn, mode OrderMode, discipline Discipline, priority int) *Region {
	return &Region{
		heap:     NewHeap(fn, mode, discipline),
		priority: priority,
	}
}

func (r *Region) Priority() int          { return r.priority }
func (r *Region) Len() int               { return r.heap.Len() }
func (r *Region) PriorityFn() PriorityFn { return r.heap.PriorityFn() }
func (r *Region) OrderMode() OrderMode   { return r.heap.OrderMode() }
func (r *Region) Discipline() Discipline { return r.heap.Discipline() }

// Insert queues a copy of t. See Heap.Insert.
func (r *Region) Insert(t Task) bool { return r.heap.Insert(t) }

// ExtractBest removes the region's most urgent task.
func (r *Region) ExtractBest() (Task, error) { return r.heap.ExtractBest() }

// Peek returns the most urgent task without removing it.
func (r *Region) Peek() (Task, error) { return r.heap.Peek() }

// Merge moves all of other's tasks into r. The regions keep their own
// priorities.
func (r *Region) Merge(other *Region) error {
	if other == nil || other == r {
		return nil
	}
	return r.heap.Merge(other.heap)
}

func (r *Region) SetPriorityFn(fn PriorityFn, mode OrderMode) error {
	return r.heap.SetPriorityFn(fn, mode)
}

func (r *Region) SetDiscipline(d Discipline) { r.heap.SetDiscipline(d) }

func (r *Region) Clear() { r.heap.Clear() }

// Tasks returns the queued tasks in pre-order.
func (r *Region) Tasks() []Task { return r.heap.Tasks() }

// Verify checks the region's heap invariants.
func (r *Region) Verify() error { return r.heap.Verify() }

// Clone returns a deep copy of the region.
func (r *Region) Clone() *Region {
	return &Region{
		heap:     r.heap.Clone(),
		priority: r.priority,
	}
}
