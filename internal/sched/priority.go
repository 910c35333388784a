package sched

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// NamedPriority is a priority function together with the order it was
// designed for.
type NamedPriority struct {
	Name string
	Fn   PriorityFn
	Mode OrderMode
}

// HeatAndType ranks hot weather and thirsty plants first. Use with MaxHeap;
// keys fall in 30..116.
func HeatAndType(t Task) int {
	return t.Temperature + int(t.Type)
}

// MoistureAndTime ranks dry soil early in the day first. Use with MinHeap;
// keys fall in 1..103.
func MoistureAndTime(t Task) int {
	return t.Moisture + int(t.Time)
}

var priorities = func() *treemap.Map {
	m := treemap.NewWithStringComparator()
	for _, p := range []NamedPriority{
		{Name: "heat", Fn: HeatAndType, Mode: MaxHeap},
		{Name: "moisture", Fn: MoistureAndTime, Mode: MinHeap},
	} {
		m.Put(p.Name, p)
	}
	return m
}()

// LookupPriority finds a built-in priority function by name.
func LookupPriority(name string) (NamedPriority, bool) {
	v, ok := priorities.Get(name)
	if !ok {
		return NamedPriority{}, false
	}
	return v.(NamedPriority), true
}

// PriorityNames lists the built-in priority functions in sorted order.
func PriorityNames() []string {
	names := make([]string, 0, priorities.Size())
	for _, k := range priorities.Keys() {
		names = append(names, k.(string))
	}
	return names
}
