package sdm

// Resource represents a pool of identical, interchangeable units (e.g.
// attendants, machines) that processes allocate from and release back to.
// Allocation/release never blocks: callers needing to wait for capacity
// should retry via an Event or a Process's onStart callback.
type Resource struct {
	name     string
	id       ResourceID
	capacity int64
	free     int64

	busyTime   float32
	allocCount uint64
}

// NewResource creates a Resource with the given capacity, initially fully
// free.
func NewResource(name string, capacity int64, opts ...ResourceOption) *Resource {
	r := &Resource{
		name:     name,
		id:       nextResourceID(),
		capacity: capacity,
		free:     capacity,
	}
	for _, opt := range opts {
		opt.applyResource(r)
	}
	return r
}

// ID returns the resource's stable identifier.
func (r *Resource) ID() ResourceID { return r.id }

// Name returns the resource's human-readable name.
func (r *Resource) Name() string { return r.name }

// Capacity returns the total pool size.
func (r *Resource) Capacity() int64 { return r.capacity }

// NAllocated returns the number of units currently allocated.
func (r *Resource) NAllocated() int64 { return r.capacity - r.free }

// Free returns the number of units currently available.
func (r *Resource) Free() int64 { return r.free }

// Allocate reserves q units, returning ErrInsufficientResource if fewer
// than q units are free.
func (r *Resource) Allocate(q int64) error {
	if q <= 0 {
		return newError(KindInsufficientResource, "resource "+r.name+": allocation quantity must be positive")
	}
	if q > r.free {
		return newError(KindInsufficientResource, "resource "+r.name+": insufficient free units")
	}
	r.free -= q
	r.allocCount++
	return nil
}

// Release returns q units to the pool, returning ErrOverRelease if doing
// so would exceed the resource's total capacity.
func (r *Resource) Release(q int64) error {
	if q <= 0 {
		return newError(KindOverRelease, "resource "+r.name+": release quantity must be positive")
	}
	if r.free+q > r.capacity {
		return newError(KindOverRelease, "resource "+r.name+": release exceeds capacity")
	}
	r.free += q
	return nil
}

// UpdateAnalytics accumulates busy-time whenever the resource is not
// fully free. The Scheduler calls this every AnalyticsRefresh virtual-time
// ticks, passing that same tick width.
func (r *Resource) UpdateAnalytics(tick float32) {
	if r.free < r.capacity {
		r.busyTime += tick
	}
}

// AllocationRate returns the fraction of elapsed virtual time (as covered
// by UpdateAnalytics calls) during which the resource was not fully free.
func (r *Resource) AllocationRate(elapsed float32) float32 {
	if elapsed <= 0 {
		return 0
	}
	return r.busyTime / elapsed
}

// AverageAllocation returns the mean number of successful Allocate calls per
// unit of elapsed virtual time, mirroring AllocationRate's shape.
func (r *Resource) AverageAllocation(elapsed float32) float32 {
	if elapsed <= 0 {
		return 0
	}
	return float32(r.allocCount) / elapsed
}
