package sched

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when taking a task from a heap that holds none.
var ErrEmpty = errors.New("heap is empty")

// MismatchError is returned when two heaps that are configured differently
// are merged. Field names the setting that differs.
type MismatchError struct {
	Field string
	Left  string
	Right string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot merge heaps with different %s: %s vs %s", e.Field, e.Left, e.Right)
}
