// internal/sched/heap.go

package sched

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"
)

// ErrNoPriorityFn is returned when a heap holding tasks is given a nil
// priority function.
var ErrNoPriorityFn = errors.New("priority function is required")

// OrderMode selects whether the smallest or the largest key is served first.
type OrderMode int

const (
	MinHeap OrderMode = iota
	MaxHeap
)

// Discipline selects how a Heap keeps its tree shallow while merging.
type Discipline int

const (
	Skew Discipline = iota
	Leftist
)

// PriorityFn maps a task to its ordering key. It must be deterministic.
type PriorityFn func(Task) int

type node struct {
	task  Task
	left  *node
	right *node
	npl   int // null path length, kept up to date only under Leftist
}

// Heap is a mergeable priority queue of tasks, run either as a skew heap or
// as a leftist heap. Every operation that changes the tree goes through meld.
type Heap struct {
	root       *node
	size       int
	fn         PriorityFn
	mode       OrderMode
	discipline Discipline
}

// NewHeap creates an empty heap. A heap without a priority function refuses
// inserts until one is set.
func NewHeap(fn PriorityFn, mode OrderMode, discipline Discipline) *Heap {
	return &Heap{
		fn:         fn,
		mode:       mode,
		discipline: discipline,
	}
}

func (h *Heap) Len() int               { return h.size }
func (h *Heap) PriorityFn() PriorityFn { return h.fn }
func (h *Heap) OrderMode() OrderMode   { return h.mode }
func (h *Heap) Discipline() Discipline { return h.discipline }

func (h *Heap) key(n *node) int { return h.fn(n.task) }

// before reports whether a belongs above b. Equal keys favour a.
func (h *Heap) before(a, b *node) bool {
	c := utils.IntComparator(h.key(a), h.key(b))
	if h.mode == MaxHeap {
		return c >= 0
	}
	return c <= 0
}

// npl treats a missing child as -1.
func npl(n *node) int {
	if n == nil {
		return -1
	}
	return n.npl
}

// Insert adds a copy of t. It reports false, leaving the heap untouched, when
// no priority function is configured.
func (h *Heap) Insert(t Task) bool {
	if h.fn == nil {
		return false
	}
	h.root = h.meld(h.root, &node{task: t})
	h.size++
	return true
}

// Peek returns the best task without removing it.
func (h *Heap) Peek() (Task, error) {
	if h.root == nil {
		return Task{}, ErrEmpty
	}
	return h.root.task, nil
}

// ExtractBest removes and returns the best task.
func (h *Heap) ExtractBest() (Task, error) {
	if h.root == nil {
		return Task{}, ErrEmpty
	}
	old := h.root
	h.root = h.meld(old.left, old.right)
	old.left, old.right = nil, nil
	h.size--
	return old.task, nil
}

// Merge moves every task of other into h and leaves other empty. Both heaps
// must share priority function, order mode and discipline.
func (h *Heap) Merge(other *Heap) error {
	if other == nil || other == h {
		return nil
	}
	if err := h.compatible(other); err != nil {
		return err
	}
	h.root = h.meld(h.root, other.root)
	h.size += other.size
	other.root, other.size = nil, 0
	return nil
}

func (h *Heap) compatible(other *Heap) error {
	if !sameFn(h.fn, other.fn) {
		return &MismatchError{Field: "priority function", Left: fnName(h.fn), Right: fnName(other.fn)}
	}
	if h.mode != other.mode {
		return &MismatchError{Field: "order mode", Left: h.mode.String(), Right: other.mode.String()}
	}
	if h.discipline != other.discipline {
		return &MismatchError{Field: "discipline", Left: h.discipline.String(), Right: other.discipline.String()}
	}
	return nil
}

// meld merges two trees and returns the new root.
//
// The winner of each comparison keeps its left subtree and continues down its
// right spine against the loser; ties go to the first argument. The spine is
// then unwound bottom-up, fixing each node's shape for the discipline.
func (h *Heap) meld(a, b *node) *node {
	var spine []*node
	for a != nil && b != nil {
		if !h.before(a, b) {
			a, b = b, a
		}
		spine = append(spine, a)
		a = a.right
	}

	rest := a
	if rest == nil {
		rest = b
	}
	for i := len(spine) - 1; i >= 0; i-- {
		top := spine[i]
		top.right = rest
		h.fixup(top)
		rest = top
	}
	return rest
}

func (h *Heap) fixup(n *node) {
	switch h.discipline {
	case Skew:
		n.left, n.right = n.right, n.left
	case Leftist:
		if npl(n.left) < npl(n.right) {
			n.left, n.right = n.right, n.left
		}
		n.npl = 1 + npl(n.right)
	}
}

// SetPriorityFn replaces the ordering and rebuilds the heap under it.
func (h *Heap) SetPriorityFn(fn PriorityFn, mode OrderMode) error {
	if fn == nil && h.root != nil {
		return ErrNoPriorityFn
	}
	h.fn, h.mode = fn, mode
	h.rebuild()
	return nil
}

// SetDiscipline switches between skew and leftist and rebuilds the heap.
func (h *Heap) SetDiscipline(d Discipline) {
	h.discipline = d
	h.rebuild()
}

// rebuild detaches every task from the old tree and inserts it again, one at
// a time, under the current configuration.
func (h *Heap) rebuild() {
	old := h.root
	h.root, h.size = nil, 0
	walk(old, func(n *node) {
		n.left, n.right = nil, nil
		h.Insert(n.task)
	})
}

// Clear drops every task.
func (h *Heap) Clear() {
	h.root, h.size = nil, 0
}

// Clone returns a deep copy sharing no nodes with h.
func (h *Heap) Clone() *Heap {
	return &Heap{
		root:       cloneTree(h.root),
		size:       h.size,
		fn:         h.fn,
		mode:       h.mode,
		discipline: h.discipline,
	}
}

// Tasks returns the contents in pre-order.
func (h *Heap) Tasks() []Task {
	out := make([]Task, 0, h.size)
	walk(h.root, func(n *node) { out = append(out, n.task) })
	return out
}

// Verify checks the heap order, the size count and, under Leftist, the null
// path lengths.
func (h *Heap) Verify() error {
	var (
		count int
		err   error
	)
	walk(h.root, func(n *node) {
		count++
		if err != nil {
			return
		}
		for _, c := range []*node{n.left, n.right} {
			if c != nil && !h.before(n, c) {
				err = fmt.Errorf("heap order violated: task %d (key %d) above task %d (key %d)",
					n.task.ID, h.key(n), c.task.ID, h.key(c))
				return
			}
		}
		if h.discipline != Leftist {
			return
		}
		if npl(n.left) < npl(n.right) {
			err = fmt.Errorf("leftist shape violated at task %d: npl(left)=%d < npl(right)=%d",
				n.task.ID, npl(n.left), npl(n.right))
			return
		}
		if want := 1 + min(npl(n.left), npl(n.right)); n.npl != want {
			err = fmt.Errorf("null path length of task %d is %d, want %d", n.task.ID, n.npl, want)
		}
	})
	if err == nil && count != h.size {
		err = fmt.Errorf("size is %d but %d nodes are reachable", h.size, count)
	}
	return err
}

// walk visits every node reachable from root, parents before children and
// left before right. Children are pushed before visit runs, so visit may
// detach them.
func walk(root *node, visit func(*node)) {
	if root == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(*node)
		if n.right != nil {
			stack.Push(n.right)
		}
		if n.left != nil {
			stack.Push(n.left)
		}
		visit(n)
	}
}

func cloneTree(root *node) *node {
	if root == nil {
		return nil
	}
	type pair struct{ src, dst *node }
	copyOf := func(n *node) *node { return &node{task: n.task, npl: n.npl} }

	out := copyOf(root)
	stack := arraystack.New()
	stack.Push(pair{root, out})
	for !stack.Empty() {
		v, _ := stack.Pop()
		p := v.(pair)
		if p.src.left != nil {
			p.dst.left = copyOf(p.src.left)
			stack.Push(pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = copyOf(p.src.right)
			stack.Push(pair{p.src.right, p.dst.right})
		}
	}
	return out
}

// sameFn reports whether a and b are the same func value. Top-level functions
// share one static funcval; every closure instance carries its own.
func sameFn(a, b PriorityFn) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *(*unsafe.Pointer)(unsafe.Pointer(&a)) == *(*unsafe.Pointer)(unsafe.Pointer(&b))
}

func fnName(fn PriorityFn) string {
	if fn == nil {
		return "<nil>"
	}
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}
	return "<unknown>"
}

func (m OrderMode) String() string {
	switch m {
	case MinHeap:
		return "min"
	case MaxHeap:
		return "max"
	default:
		return "unknown"
	}
}

func (d Discipline) String() string {
	switch d {
	case Skew:
		return "skew"
	case Leftist:
		return "leftist"
	default:
		return "unknown"
	}
}

// ParseOrderMode accepts "min" or "max" (case-insensitive).
func ParseOrderMode(s string) (OrderMode, error) {
	switch strings.ToLower(s) {
	case "min", "minheap":
		return MinHeap, nil
	case "max", "maxheap":
		return MaxHeap, nil
	}
	return 0, fmt.Errorf("unknown order mode %q", s)
}

// ParseDiscipline accepts "skew" or "leftist" (case-insensitive).
func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(s) {
	case "skew":
		return Skew, nil
	case "leftist":
		return Leftist, nil
	}
	return 0, fmt.Errorf("unknown discipline %q", s)
}
