package sdm

// ProcessState describes where a Process sits in the Scheduler's running
// registry. The kernel is single-threaded cooperative (spec §5), so this is
// a plain enum rather than an atomically-guarded state machine.
type ProcessState int32

const (
	// ProcessIdle: not registered with any Scheduler.
	ProcessIdle ProcessState = iota
	// ProcessRunning: registered; Start fires again on every subsequent
	// event step for as long as the process stays in the registry.
	ProcessRunning
	// ProcessFinishing: transient, set only for the duration of an End
	// call; the process returns to RUNNING immediately afterwards since it
	// stays registered (spec §4.7).
	ProcessFinishing
)

// String returns the state's name.
func (s ProcessState) String() string {
	switch s {
	case ProcessIdle:
		return "IDLE"
	case ProcessRunning:
		return "RUNNING"
	case ProcessFinishing:
		return "FINISHING"
	default:
		return "UNKNOWN"
	}
}

// ProcessCallback runs at process start or end, receiving the virtual
// time of the transition.
type ProcessCallback func(now float32)

// Process models a recurring activity with a stochastic duration. Once
// registered with a Scheduler (spec §4.7), it participates in every
// subsequent event step: each step samples a fresh duration exactly once
// via Start and the Scheduler queues the matching finish at
// event_time + duration, independent of whether an earlier instance's
// finish has already fired.
type Process struct {
	name  string
	pid   ProcessID
	dist  Distribution
	state ProcessState

	active  bool
	onStart ProcessCallback
	onEnd   ProcessCallback
}

// NewProcess creates a named Process sampling its duration from dist.
// Either callback may be nil.
func NewProcess(name string, dist Distribution, onStart, onEnd ProcessCallback) *Process {
	return &Process{
		name:    name,
		pid:     nextProcessID(),
		dist:    dist,
		active:  true,
		onStart: onStart,
		onEnd:   onEnd,
	}
}

// PID returns the process's stable identifier.
func (p *Process) PID() ProcessID { return p.pid }

// Name returns the process's human-readable name.
func (p *Process) Name() string { return p.name }

// State returns the process's current lifecycle state.
func (p *Process) State() ProcessState { return p.state }

// IsActive reports whether the process is still eligible to be fired on
// the Scheduler's running-registry sweep at each event step. An inactive
// process stays registered (spec §9 Open Question: processes are never
// removed from the registry except by explicit user action) but is skipped
// until reactivated.
func (p *Process) IsActive() bool { return p.active }

// ToggleActive flips the process's active flag, returning the new value.
func (p *Process) ToggleActive() bool {
	p.active = !p.active
	return p.active
}

// Stop deactivates the process.
func (p *Process) Stop() { p.active = false }

// Activate reactivates the process.
func (p *Process) Activate() { p.active = true }

// markRunning transitions a freshly registered process from IDLE to
// RUNNING. It is a no-op once the process has already entered the
// registry, and is called only by the Scheduler (spec §4.7).
func (p *Process) markRunning() {
	if p.state == ProcessIdle {
		p.state = ProcessRunning
	}
}

// Start invokes onStart and samples the held Distribution exactly once,
// returning the sampled duration for the Scheduler to use when computing
// this instance's finish time. The Scheduler calls Start on every
// registered, active process at every event step (spec §4.7), so a single
// Process may have several overlapping instances in flight at once.
func (p *Process) Start(now float32) float32 {
	if p.onStart != nil {
		p.onStart(now)
	}
	return p.dist.Sample()
}

// End invokes onEnd for one finished instance. The process transitions
// through FINISHING only for the duration of the call; since it remains
// registered, it returns to RUNNING immediately afterwards (spec §4.7).
func (p *Process) End(now float32) {
	p.state = ProcessFinishing
	if p.onEnd != nil {
		p.onEnd(now)
	}
	p.state = ProcessRunning
}
