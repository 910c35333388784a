package sched

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegion_Delegates(t *testing.T) {
	r := NewRegion(HeatAndType, MaxHeap, Leftist, 7)
	require.Equal(t, 7, r.Priority())
	require.Equal(t, MaxHeap, r.OrderMode())
	require.Equal(t, Leftist, r.Discipline())
	require.NotNil(t, r.PriorityFn())

	r.Insert(NewTask(100001, 60, 50, int(Noon), int(Bean)))
	r.Insert(NewTask(100002, 90, 50, int(Noon), int(Cotton)))
	r.Insert(NewTask(100003, 90, 50, int(Noon), int(Bean)))
	require.Equal(t, 3, r.Len())
	require.NoError(t, r.Verify())

	top, err := r.Peek()
	require.NoError(t, err)
	require.Equal(t, 100002, top.ID)

	var got []int
	for r.Len() > 0 {
		tk, err := r.ExtractBest()
		require.NoError(t, err)
		got = append(got, tk.ID)
	}
	require.Equal(t, []int{100002, 100003, 100001}, got)
	_, err = r.ExtractBest()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestRegion_Dump(t *testing.T) {
	r := NewRegion(byTemperature, MinHeap, Skew, 7)
	require.Equal(t, "Empty heap.", r.Dump())

	r.Insert(task(100001, 50))
	r.Insert(task(100002, 40))
	r.Insert(task(100003, 60))
	require.Equal(t, "Region 7: => ((60:100003)40:100002(50:100001))", r.Dump())
}

func TestRegion_Reconfigure(t *testing.T) {
	r := NewRegion(byTemperature, MinHeap, Skew, 1)
	r.Insert(NewTask(100001, 40, 90, 0, 0))
	r.Insert(NewTask(100002, 80, 10, 0, 0))

	require.NoError(t, r.SetPriorityFn(byMoisture, MinHeap))
	top, err := r.Peek()
	require.NoError(t, err)
	require.Equal(t, 100002, top.ID)

	r.SetDiscipline(Leftist)
	require.Equal(t, Leftist, r.Discipline())
	require.NoError(t, r.Verify())
	require.Equal(t, 2, r.Len())
	require.Equal(t, 1, r.Priority())
}

func TestRegion_Merge(t *testing.T) {
	a := NewRegion(byTemperature, MinHeap, Leftist, 1)
	b := NewRegion(byTemperature, MinHeap, Leftist, 2)
	a.Insert(task(100001, 70))
	b.Insert(task(100002, 35))
	b.Insert(task(100003, 90))

	require.NoError(t, a.Merge(b))
	require.Equal(t, 3, a.Len())
	require.Equal(t, 0, b.Len())
	require.Equal(t, 1, a.Priority())
	top, err := a.Peek()
	require.NoError(t, err)
	require.Equal(t, 100002, top.ID)

	require.NoError(t, a.Merge(a))
	require.Equal(t, 3, a.Len())

	c := NewRegion(byTemperature, MinHeap, Skew, 3)
	c.Insert(task(100004, 31))
	require.Error(t, a.Merge(c))
	require.Equal(t, 1, c.Len())
}

func TestRegion_CloneIsIndependent(t *testing.T) {
	r := NewRegion(byTemperature, MinHeap, Leftist, 4)
	r.Insert(task(100001, 50))
	c := r.Clone()

	c.Insert(task(100002, 30))
	require.Equal(t, 1, r.Len())
	require.Equal(t, 2, c.Len())

	_, err := r.ExtractBest()
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.Equal(t, 4, c.Priority())

	c.Clear()
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Tasks())
}
