package sdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntitySetFIFOOrder(t *testing.T) {
	s := NewEntitySet("fila", WithMode(FIFO))
	a, b, c := NewEntity("a", 0), NewEntity("b", 0), NewEntity("c", 0)
	require.NoError(t, s.Push(a, 0))
	require.NoError(t, s.Push(b, 0))
	require.NoError(t, s.Push(c, 0))

	got, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, a, got)

	got, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, b, got)

	got, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, c, got)
}

func TestEntitySetLIFOOrder(t *testing.T) {
	s := NewEntitySet("stack", WithMode(LIFO))
	a, b, c := NewEntity("a", 0), NewEntity("b", 0), NewEntity("c", 0)
	require.NoError(t, s.Push(a, 0))
	require.NoError(t, s.Push(b, 0))
	require.NoError(t, s.Push(c, 0))

	got, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, c, got)

	got, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, b, got)

	got, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, a, got)
}

func TestEntitySetPriorityOrder(t *testing.T) {
	s := NewEntitySet("priority", WithMode(PRIORITY))
	a, b, c := NewEntity("a", 0), NewEntity("b", 0), NewEntity("c", 0)
	a.SetPriority(1)
	b.SetPriority(3)
	c.SetPriority(2)
	require.NoError(t, s.Push(a, 0))
	require.NoError(t, s.Push(b, 0))
	require.NoError(t, s.Push(c, 0))

	got, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, b, got)

	got, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, c, got)

	got, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, a, got)
}

func TestEntitySetBoundedCapacity(t *testing.T) {
	s := NewEntitySet("bounded", WithMaxSize(1))
	require.NoError(t, s.Push(NewEntity("a", 0), 0))
	require.True(t, s.IsFull())
	err := s.Push(NewEntity("b", 0), 0)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestEntitySetRemoveAndApplyForID(t *testing.T) {
	s := NewEntitySet("x")
	a := NewEntity("a", 0)
	require.NoError(t, s.Push(a, 0))

	var seen *Entity
	require.NoError(t, s.ApplyForID(a.ID(), func(e *Entity) { seen = e }))
	require.Equal(t, a, seen)

	removed, err := s.Remove(a.ID())
	require.NoError(t, err)
	require.Equal(t, a, removed)
	require.True(t, s.IsEmpty())

	_, err = s.Remove(a.ID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEntitySetAnalytics(t *testing.T) {
	s := NewEntitySet("x")
	a := NewEntity("a", 0)
	require.NoError(t, s.Push(a, 0))
	s.UpdateAnalytics(1)
	s.UpdateAnalytics(2)
	require.Equal(t, float32(2), s.MaxTimeInSet())
	require.InDelta(t, 1.0, s.AverageSize(), 0.001)
}
