package sdm

import (
	"container/heap"
	"context"
	"time"
)

// AnalyticsRefresh is the virtual-time interval at which the Scheduler
// samples every managed EntitySet and Resource for occupancy/utilisation
// analytics, independent of when events or process transitions occur.
const AnalyticsRefresh float32 = 1.0

type eventItem struct {
	time  float32
	seq   uint64
	event *Event
}

type eventHeap []eventItem

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x any)   { *h = append(*h, x.(eventItem)) }
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// processFinishItem is a pending (finish_time, process) marker (spec §3's
// FEL "process-finish" sequence). A single Process may have several of
// these outstanding at once, one per event step that fired it since its
// prior instance finished (spec §4.7).
type processFinishItem struct {
	time    float32
	seq     uint64
	process *Process
}

type processFinishHeap []processFinishItem

func (h processFinishHeap) Len() int { return len(h) }
func (h processFinishHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}
func (h processFinishHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *processFinishHeap) Push(x any)   { *h = append(*h, x.(processFinishItem)) }
func (h *processFinishHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// processStartItem stages a process to enter the running registry at a
// future virtual time (spec §3's "process-start queue").
type processStartItem struct {
	time    float32
	seq     uint64
	process *Process
}

type processStartHeap []processStartItem

func (h processStartHeap) Len() int { return len(h) }
func (h processStartHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}
func (h processStartHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *processStartHeap) Push(x any)   { *h = append(*h, x.(processStartItem)) }
func (h *processStartHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Scheduler owns the virtual clock and the future-event list, and is the
// only component permitted to advance simulated time. Exactly one
// Scheduler may be live at a time (spec §4.7): construct one with New,
// and release it with Drop before constructing another.
type Scheduler struct {
	now float32

	eventQueue         eventHeap
	processFinishQueue processFinishHeap
	processStartQueue  processStartHeap
	seq                uint64

	// runningOrder is the registry of processes participating in every
	// event step (spec §3, §4.7, §5 ordering guarantee 4), held in
	// registration order so iteration is stable across calls. A process
	// is appended here exactly once, when it first enters the registry
	// (immediately for StartProcessNow, when its staged start comes due for
	// StartProcessAt/In), and is never removed (spec §9 Open Question).
	runningOrder []*Process
	running      map[ProcessID]*Process

	entitySets map[EntitySetID]*EntitySet
	resources  map[ResourceID]*Resource

	analyticsNext float32
	logger        Logger
}

var instance *Scheduler

// New constructs the singleton Scheduler. It returns ErrAlreadyInstantiated
// if one is already live.
func New(opts ...SchedulerOption) (*Scheduler, error) {
	if instance != nil {
		return nil, ErrAlreadyInstantiated
	}
	s := &Scheduler{
		running:       make(map[ProcessID]*Process),
		entitySets:    make(map[EntitySetID]*EntitySet),
		resources:     make(map[ResourceID]*Resource),
		analyticsNext: AnalyticsRefresh,
		logger:        getLogger(),
	}
	for _, opt := range opts {
		opt.applyScheduler(s)
	}
	instance = s
	s.logf(LevelInfo, "scheduler", "scheduler constructed", nil)
	return s, nil
}

// Instance returns the live Scheduler singleton. Like Time, this is a
// fatal fault (see FatalFault) when no Scheduler has been constructed:
// spec §7 classifies *not-instantiated* as fatal for both accessors
// uniformly, since any caller reaching for the singleton assumes one
// exists.
func Instance() *Scheduler {
	if instance == nil {
		panicFatal(KindNotInstantiated, "sdm.Instance: no scheduler instance")
	}
	return instance
}

// Time returns the live Scheduler's current virtual time. It is a fatal
// fault (see FatalFault) to call this with no Scheduler constructed, since
// any caller holding an Entity implies one should exist.
func Time() float32 {
	if instance == nil {
		panicFatal(KindNotInstantiated, "sdm.Time: no scheduler instance")
	}
	return instance.now
}

// Drop releases the singleton, allowing a new Scheduler to be constructed.
// It does not touch any objects the dropped Scheduler was managing.
func (s *Scheduler) Drop() {
	if instance == s {
		instance = nil
	}
	s.logf(LevelInfo, "scheduler", "scheduler dropped", nil)
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() float32 { return s.now }

// ManageEntitySet registers an EntitySet so it receives periodic
// analytics sampling.
func (s *Scheduler) ManageEntitySet(set *EntitySet) {
	s.entitySets[set.ID()] = set
}

// ManageResource registers a Resource so it receives periodic analytics
// sampling.
func (s *Scheduler) ManageResource(r *Resource) {
	s.resources[r.ID()] = r
}

func (s *Scheduler) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// ScheduleAt places event on the future-event list to fire at virtual
// time at. Returns ErrTimeTravel if at precedes the current virtual time.
func (s *Scheduler) ScheduleAt(event *Event, at float32) error {
	if at < s.now {
		return newError(KindTimeTravel, "sdm: cannot schedule event before current virtual time")
	}
	heap.Push(&s.eventQueue, eventItem{time: at, seq: s.nextSeq(), event: event})
	return nil
}

// ScheduleNow places event on the future-event list to fire at the
// current virtual time, after anything already queued for it.
func (s *Scheduler) ScheduleNow(event *Event) error {
	return s.ScheduleAt(event, s.now)
}

// ScheduleIn places event on the future-event list to fire delay time
// units from now.
func (s *Scheduler) ScheduleIn(event *Event, delay float32) error {
	return s.ScheduleAt(event, s.now+delay)
}

// registerProcess enters p into the running registry, idempotently: a
// process already present keeps its existing registration order.
func (s *Scheduler) registerProcess(p *Process) {
	if _, ok := s.running[p.PID()]; ok {
		return
	}
	p.markRunning()
	s.running[p.PID()] = p
	s.runningOrder = append(s.runningOrder, p)
}

// StartProcessAt stages p to enter the running registry at virtual time
// at, where it will participate in every event step from then on (spec
// §3, §4.7). Returns ErrTimeTravel if at precedes the current virtual
// time.
func (s *Scheduler) StartProcessAt(p *Process, at float32) error {
	if at < s.now {
		return newError(KindTimeTravel, "sdm: cannot start process before current virtual time")
	}
	heap.Push(&s.processStartQueue, processStartItem{time: at, seq: s.nextSeq(), process: p})
	return nil
}

// StartProcessNow enters p into the running registry immediately.
func (s *Scheduler) StartProcessNow(p *Process) error {
	s.registerProcess(p)
	return nil
}

// StartProcessIn stages p to enter the running registry delay time units
// from now.
func (s *Scheduler) StartProcessIn(p *Process, delay float32) error {
	return s.StartProcessAt(p, s.now+delay)
}

// StopProcess deactivates p, an extension point beyond the original
// schedule/start API: a stopped process stays in the registry (spec §9:
// processes are never removed except by explicit user action) but is
// skipped by the event-step sweep, and finishes any instance already in
// flight.
func (s *Scheduler) StopProcess(p *Process) {
	p.Stop()
	s.logf(LevelInfo, "process", p.Name()+": stopped", nil)
}

func (s *Scheduler) logf(level LogLevel, category, message string, err error) {
	if s.logger == nil || !s.logger.IsEnabled(level) {
		return
	}
	s.logger.Log(LogEntry{Level: level, Category: category, Message: message, Err: err, Time: s.now, Timestamp: time.Time{}})
}

// HasPendingWork reports whether any event or process-finish marker
// remains queued. Per spec §4.7/§8, termination is governed solely by
// these two sequences: a staged process-start with nothing else queued
// never fires, matching the literal advancement loop.
func (s *Scheduler) HasPendingWork() bool {
	return len(s.eventQueue) > 0 || len(s.processFinishQueue) > 0
}

// advanceAnalytics samples every managed EntitySet and Resource at each
// AnalyticsRefresh boundary between the current virtual time and upto,
// inclusive, without running past upto.
func (s *Scheduler) advanceAnalytics(upto float32) {
	for s.analyticsNext <= upto {
		tick := s.analyticsNext
		for _, set := range s.entitySets {
			set.UpdateAnalytics(tick)
		}
		for _, r := range s.resources {
			r.UpdateAnalytics(AnalyticsRefresh)
		}
		s.logf(LevelDebug, "scheduler", "analytics tick", nil)
		s.analyticsNext += AnalyticsRefresh
	}
}

// drainProcessStarts moves every staged process-start due at or before
// upto into the running registry (spec §4.7 step 3).
func (s *Scheduler) drainProcessStarts(upto float32) {
	for len(s.processStartQueue) > 0 && s.processStartQueue[0].time <= upto {
		item := heap.Pop(&s.processStartQueue).(processStartItem)
		s.registerProcess(item.process)
	}
}

// fireRunningProcesses iterates the running registry (in stable
// registration order, per spec §5 ordering guarantee 4) and, for each
// active process, calls Start and queues exactly one new finish marker.
// This runs once per event step, independent of whether any given
// process's prior instance has already finished (spec §4.7, §8).
func (s *Scheduler) fireRunningProcesses(now float32) {
	for _, p := range s.runningOrder {
		if !p.IsActive() {
			continue
		}
		duration := p.Start(now)
		heap.Push(&s.processFinishQueue, processFinishItem{time: now + duration, seq: s.nextSeq(), process: p})
	}
}

// SimulateOneStep advances the virtual clock to the next scheduled event
// or process finish and dispatches exactly one of them — the earlier,
// with process-finish winning ties (spec §4.7 step 4) — running any
// analytics ticks and process-start drains that fall due first. It
// returns false once both the event queue and the process-finish queue
// are empty.
func (s *Scheduler) SimulateOneStep() (bool, error) {
	if !s.HasPendingWork() {
		return false, nil
	}

	next, haveNext := s.peekNextTime()
	if !haveNext {
		return false, nil
	}
	if next < s.now {
		panicFatal(KindTimeTravel, "sdm: internal clock would move backwards")
	}

	s.advanceAnalytics(next)
	s.now = next
	s.drainProcessStarts(next)

	if s.nextIsProcessFinish() {
		item := heap.Pop(&s.processFinishQueue).(processFinishItem)
		item.process.End(s.now)
	} else {
		item := heap.Pop(&s.eventQueue).(eventItem)
		item.event.Execute(s.now)
		s.fireRunningProcesses(s.now)
	}

	return s.HasPendingWork(), nil
}

func (s *Scheduler) peekNextTime() (float32, bool) {
	haveEvent := len(s.eventQueue) > 0
	haveProcess := len(s.processFinishQueue) > 0
	switch {
	case haveEvent && haveProcess:
		et, pt := s.eventQueue[0].time, s.processFinishQueue[0].time
		if pt <= et {
			return pt, true
		}
		return et, true
	case haveEvent:
		return s.eventQueue[0].time, true
	case haveProcess:
		return s.processFinishQueue[0].time, true
	default:
		return 0, false
	}
}

// nextIsProcessFinish reports whether the process-finish queue holds the
// next item to dispatch at the current virtual time, with process-finish
// winning ties against an event at the same time (spec §4.7 step 4, §5
// ordering guarantee 3).
func (s *Scheduler) nextIsProcessFinish() bool {
	if len(s.processFinishQueue) == 0 {
		return false
	}
	if len(s.eventQueue) == 0 {
		return true
	}
	return s.processFinishQueue[0].time <= s.eventQueue[0].time
}

type simulateConfig struct {
	pacing  time.Duration
	untilFn func(now float32) bool
}

// Simulate drives SimulateOneStep until the future-event list is
// exhausted, the context is cancelled, or a configured stop condition is
// met. It returns ctx.Err() on cancellation and any error SimulateOneStep
// reports otherwise.
func (s *Scheduler) Simulate(ctx context.Context, opts ...SimulateOption) error {
	cfg := simulateConfig{}
	for _, opt := range opts {
		opt.applySimulate(&cfg)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if cfg.untilFn != nil && cfg.untilFn(s.now) {
			return nil
		}
		more, err := s.SimulateOneStep()
		if err != nil {
			s.logf(LevelError, "scheduler", "simulate step failed", err)
			return err
		}
		if !more {
			return nil
		}
		if cfg.pacing > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.pacing):
			}
		}
	}
}
