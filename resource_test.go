package sdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceAllocateRelease(t *testing.T) {
	r := NewResource("frentista", 2)
	require.NoError(t, r.Allocate(2))
	require.Equal(t, int64(0), r.Free())
	require.Equal(t, int64(2), r.NAllocated())

	err := r.Allocate(1)
	require.ErrorIs(t, err, ErrInsufficientResource)

	require.NoError(t, r.Release(1))
	require.Equal(t, int64(1), r.Free())

	err = r.Release(2)
	require.ErrorIs(t, err, ErrOverRelease)
}

func TestResourceAnalytics(t *testing.T) {
	r := NewResource("r", 1)
	require.NoError(t, r.Allocate(1))
	r.UpdateAnalytics(AnalyticsRefresh)
	r.UpdateAnalytics(AnalyticsRefresh)
	require.NoError(t, r.Release(1))
	r.UpdateAnalytics(AnalyticsRefresh)
	require.NoError(t, r.Allocate(1))

	require.InDelta(t, 2.0/3.0, r.AllocationRate(3), 0.001)
	require.InDelta(t, 0.5, r.AverageAllocation(4), 0.001)
}
