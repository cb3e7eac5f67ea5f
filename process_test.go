package sdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countingDistribution counts how many times Sample is called, letting
// tests assert the exactly-once-per-Start property from spec.md §8.
type countingDistribution struct {
	calls int
	value float32
}

func (c *countingDistribution) Sample() float32 {
	c.calls++
	return c.value
}

func TestProcessLifecycle(t *testing.T) {
	var started, ended []float32
	p := NewProcess("abastecimento", NewConstant(8),
		func(now float32) { started = append(started, now) },
		func(now float32) { ended = append(ended, now) },
	)
	require.Equal(t, ProcessIdle, p.State())

	duration := p.Start(10)
	require.Equal(t, float32(8), duration)
	require.Equal(t, ProcessIdle, p.State())
	require.Equal(t, []float32{10}, started)

	p.End(18)
	require.Equal(t, ProcessRunning, p.State())
	require.Equal(t, []float32{18}, ended)

	p.End(26)
	require.Equal(t, ProcessRunning, p.State())
	require.Equal(t, []float32{18, 26}, ended)
}

func TestProcessActiveToggle(t *testing.T) {
	p := NewProcess("x", NewConstant(1), nil, nil)
	require.True(t, p.IsActive())
	p.Stop()
	require.False(t, p.IsActive())
	p.Activate()
	require.True(t, p.IsActive())
	require.False(t, p.ToggleActive())
}

// TestProcessStartSamplesExactlyOnce exercises the spec.md §8 testable
// property directly: Start must invoke Sample exactly once per call,
// regardless of how many times the process has previously fired.
func TestProcessStartSamplesExactlyOnce(t *testing.T) {
	dist := &countingDistribution{value: 3}
	p := NewProcess("work", dist, nil, nil)

	_ = p.Start(0)
	require.Equal(t, 1, dist.calls)

	p.End(3)
	require.Equal(t, 1, dist.calls, "End must not sample")

	_ = p.Start(3)
	require.Equal(t, 2, dist.calls)

	_ = p.Start(6)
	require.Equal(t, 3, dist.calls)
}
