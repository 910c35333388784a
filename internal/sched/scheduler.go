// internal/sched/scheduler.go

package sched

import (
	"log/slog"
	"time"

	"github.com/emirpasic/gods/utils"
)

const rootIndex = 1

// Scheduler is a fixed-capacity binary min-heap of regions keyed by region
// priority. Slots are 1-indexed: slot i has its parent at i/2 and children
// at 2i and 2i+1; slot 0 is never used.
type Scheduler struct {
	slots    []*Region
	count    int
	logger   *slog.Logger
	observer func(StatusEvent)
}

// New creates an empty Scheduler that holds at most capacity regions.
func New(capacity int, opts ...Option) *Scheduler {
	if capacity < 0 {
		capacity = 0
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = defaultOptions().Logger
	}

	return &Scheduler{
		slots:    make([]*Region, capacity+1),
		logger:   o.Logger.With("component", "scheduler"),
		observer: o.Observer,
	}
}

func (s *Scheduler) Len() int { return s.count }
func (s *Scheduler) Cap() int { return len(s.slots) - 1 }

// Insert admits a copy of r. It reports false when the scheduler is full.
func (s *Scheduler) Insert(r *Region) bool {
	if r == nil {
		return false
	}
	if s.count >= s.Cap() {
		s.emit(StatusReject, r.priority, 0)
		return false
	}
	s.push(r.Clone())
	s.emit(StatusEnqueue, r.priority, 0)
	return true
}

// Peek returns a copy of the region with the smallest priority.
func (s *Scheduler) Peek() (*Region, bool) {
	if s.count == 0 {
		return nil, false
	}
	return s.slots[rootIndex].Clone(), true
}

// ExtractBest removes the region with the smallest priority.
func (s *Scheduler) ExtractBest() (*Region, bool) {
	if s.count == 0 {
		return nil, false
	}
	r := s.removeAt(rootIndex)
	s.emit(StatusDispatch, r.priority, 0)
	return r, true
}

// ExtractNth removes the region holding the n-th smallest priority, n
// counting from 1. The rank is found on a scratch copy of the keys. When
// several regions share that priority, the one in the lowest slot is taken.
func (s *Scheduler) ExtractNth(n int) (*Region, bool) {
	r, ok := s.extractNth(n)
	if ok {
		s.emit(StatusDispatch, r.priority, 0)
	}
	return r, ok
}

func (s *Scheduler) extractNth(n int) (*Region, bool) {
	if n < 1 || n > s.count {
		return nil, false
	}
	target := s.nthPriority(n)
	for i := rootIndex; i <= s.count; i++ {
		if s.slots[i].priority == target {
			return s.removeAt(i), true
		}
	}
	return nil, false
}

// nthPriority pops the root of a copy of the key array n-1 times and reports
// what is left on top.
func (s *Scheduler) nthPriority(n int) int {
	scratch := make(keys, s.count+1)
	for i := rootIndex; i <= s.count; i++ {
		scratch[i] = s.slots[i].priority
	}
	size := s.count
	for k := 1; k < n; k++ {
		scratch[rootIndex] = scratch[size]
		size--
		down(scratch, size, rootIndex)
	}
	return scratch[rootIndex]
}

// SetPriorityFnForNth changes the task ordering of the n-th region and
// re-queues it. It reports false when n is out of range or when fn is nil
// for a region that still holds tasks; the region is left as it was.
func (s *Scheduler) SetPriorityFnForNth(n int, fn PriorityFn, mode OrderMode) bool {
	return s.reconfigureNth(n, func(r *Region) error {
		return r.SetPriorityFn(fn, mode)
	})
}

// SetDisciplineForNth switches the heap discipline of the n-th region and
// re-queues it.
func (s *Scheduler) SetDisciplineForNth(n int, d Discipline) bool {
	return s.reconfigureNth(n, func(r *Region) error {
		r.SetDiscipline(d)
		return nil
	})
}

func (s *Scheduler) reconfigureNth(n int, change func(*Region) error) bool {
	r, ok := s.extractNth(n)
	if !ok {
		return false
	}
	err := change(r)
	// the slot r came from is still free
	s.push(r)
	if err != nil {
		s.logger.Warn("reconfigure failed", "region", r.priority, "err", err)
		return false
	}
	s.emit(StatusReconfigure, r.priority, 0)
	return true
}

// ExtractBestTask returns the best task of the lowest-priority region that
// still has one. Regions found empty on the way are evicted. It reports false
// once no regions remain.
func (s *Scheduler) ExtractBestTask() (Task, bool) {
	for s.count > 0 {
		root := s.slots[rootIndex]
		if t, err := root.ExtractBest(); err == nil {
			s.emit(StatusTaskDispatch, root.priority, t.ID)
			return t, true
		}
		s.removeAt(rootIndex)
		s.emit(StatusEvict, root.priority, 0)
	}
	return Task{}, false
}

// push appends r and restores the heap order. Capacity must be checked by
// the caller.
func (s *Scheduler) push(r *Region) {
	s.count++
	s.slots[s.count] = r
	up(s, s.count)
}

// removeAt takes the region in slot i out, fills the hole with the last
// region and moves that region up or down as needed.
func (s *Scheduler) removeAt(i int) *Region {
	r := s.slots[i]
	s.slots[i] = s.slots[s.count]
	s.slots[s.count] = nil
	s.count--
	if i <= s.count {
		if i > rootIndex && s.less(i, i/2) {
			up(s, i)
		} else {
			down(s, s.count, i)
		}
	}
	return r
}

func (s *Scheduler) less(i, j int) bool {
	return utils.IntComparator(s.slots[i].priority, s.slots[j].priority) < 0
}

func (s *Scheduler) swap(i, j int) { s.slots[i], s.slots[j] = s.slots[j], s.slots[i] }

func (s *Scheduler) emit(kind StatusKind, region, taskID int) {
	ev := StatusEvent{
		Time:    time.Now(),
		Kind:    kind,
		Region:  region,
		TaskID:  taskID,
		Regions: s.count,
	}
	s.logger.Debug("scheduler event",
		"event", kind.String(),
		"region", region,
		"task_id", taskID,
		"regions", s.count,
	)
	if s.observer != nil {
		s.observer(ev)
	}
}

// slotHeap is a 1-indexed implicit binary tree.
type slotHeap interface {
	less(i, j int) bool
	swap(i, j int)
}

// keys is a scratch copy of region priorities, slot 0 unused.
type keys []int

func (k keys) less(i, j int) bool { return utils.IntComparator(k[i], k[j]) < 0 }
func (k keys) swap(i, j int)      { k[i], k[j] = k[j], k[i] }

// up moves slot i towards the root while it is strictly smaller than its
// parent.
func up(h slotHeap, i int) {
	for i > rootIndex {
		parent := i / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves slot i towards the leaves of a tree of n slots while a child is
// strictly smaller. Of two equal children the left one is chosen.
func down(h slotHeap, n, i int) {
	for 2*i <= n {
		child := 2 * i
		if child+1 <= n && h.less(child+1, child) {
			child++
		}
		if !h.less(child, i) {
			break
		}
		h.swap(i, child)
		i = child
	}
}
