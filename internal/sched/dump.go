package sched

import (
	"strconv"
	"strings"
)

// Dump renders the tree in-order as nested parentheses. Each node prints
// as key:id, with :npl appended under the leftist discipline. The format is
// for inspection only.
func (h *Heap) Dump() string {
	var sb strings.Builder
	h.dump(&sb, h.root)
	return sb.String()
}

func (h *Heap) dump(sb *strings.Builder, n *node) {
	if n == nil {
		return
	}
	sb.WriteByte('(')
	h.dump(sb, n.left)
	sb.WriteString(strconv.Itoa(h.key(n)))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(n.task.ID))
	if h.discipline == Leftist {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(n.npl))
	}
	h.dump(sb, n.right)
	sb.WriteByte(')')
}

// Dump renders the region header followed by its heap.
func (r *Region) Dump() string {
	if r.heap.Len() == 0 {
		return "Empty heap."
	}
	return "Region " + strconv.Itoa(r.priority) + ": => " + r.heap.Dump()
}

// Dump renders the region priorities in-order over the implicit tree.
func (s *Scheduler) Dump() string {
	var sb strings.Builder
	s.dump(&sb, rootIndex)
	return sb.String()
}

func (s *Scheduler) dump(sb *strings.Builder, i int) {
	if i > s.count {
		return
	}
	sb.WriteByte('(')
	s.dump(sb, 2*i)
	sb.WriteString(strconv.Itoa(s.slots[i].priority))
	s.dump(sb, 2*i+1)
	sb.WriteByte(')')
}
