package sdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventExecutesCallbackOnce(t *testing.T) {
	calls := 0
	var seenTime float32
	e := NewEvent("tick", func(now float32) {
		calls++
		seenTime = now
	})
	e.Execute(3.5)
	require.Equal(t, 1, calls)
	require.Equal(t, float32(3.5), seenTime)
}

func TestEventWithNilCallbackIsNoOp(t *testing.T) {
	e := NewEvent("marker", nil)
	require.NotPanics(t, func() { e.Execute(0) })
}
