// options.go - functional-option construction for every configurable
// kernel type, in the style of the teacher's eventloop.LoopOption: a
// narrow interface backed by an unexported closure type, resolved by
// applying each option to the struct after its defaults are set at
// construction time.
package sdm

import "time"

// EntitySetOption configures an EntitySet at construction time.
type EntitySetOption interface {
	applyEntitySet(*EntitySet)
}

type entitySetOptionFunc func(*EntitySet)

func (f entitySetOptionFunc) applyEntitySet(s *EntitySet) { f(s) }

// WithMode sets the queueing discipline. Default is FIFO.
func WithMode(mode Mode) EntitySetOption {
	return entitySetOptionFunc(func(s *EntitySet) { s.mode = mode })
}

// WithMaxSize bounds the set's capacity. A Push beyond this bound returns
// ErrCapacityExceeded. Zero (the default) means unbounded.
func WithMaxSize(maxSize int) EntitySetOption {
	return entitySetOptionFunc(func(s *EntitySet) { s.maxSize = maxSize })
}

// ResourceOption configures a Resource at construction time.
type ResourceOption interface {
	applyResource(*Resource)
}

type resourceOptionFunc func(*Resource)

func (f resourceOptionFunc) applyResource(r *Resource) { f(r) }

// SchedulerOption configures a Scheduler at construction time.
type SchedulerOption interface {
	applyScheduler(*Scheduler)
}

type schedulerOptionFunc func(*Scheduler)

func (f schedulerOptionFunc) applyScheduler(s *Scheduler) { f(s) }

// WithSchedulerLogger overrides the package-level logger for one
// Scheduler instance.
func WithSchedulerLogger(logger Logger) SchedulerOption {
	return schedulerOptionFunc(func(s *Scheduler) { s.logger = logger })
}

// SimulateOption configures a single Scheduler.Simulate run.
type SimulateOption interface {
	applySimulate(*simulateConfig)
}

type simulateOptionFunc func(*simulateConfig)

func (f simulateOptionFunc) applySimulate(c *simulateConfig) { f(c) }

// WithStepPacing sleeps d of wall-clock time between each simulated step,
// useful for demos that want to watch a model run in real time.
func WithStepPacing(d time.Duration) SimulateOption {
	return simulateOptionFunc(func(c *simulateConfig) { c.pacing = d })
}

// WithStopCondition halts Simulate as soon as until returns true for the
// current virtual time, even if work remains queued.
func WithStopCondition(until func(now float32) bool) SimulateOption {
	return simulateOptionFunc(func(c *simulateConfig) { c.untilFn = until })
}
