package sdm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the recoverable and fatal error conditions the
// kernel can report, per the error handling design.
type ErrorKind int

const (
	// KindAlreadyInstantiated: Scheduler.New called while an instance is live.
	KindAlreadyInstantiated ErrorKind = iota
	// KindNotInstantiated: Scheduler.Instance/Time called with no live scheduler. Fatal.
	KindNotInstantiated
	// KindInsufficientResource: Resource.Allocate requested more than is free.
	KindInsufficientResource
	// KindOverRelease: Resource.Release would push free above capacity.
	KindOverRelease
	// KindNotFound: EntitySet.ApplyForID found no matching entity.
	KindNotFound
	// KindCapacityExceeded: EntitySet.Push into a full bounded set.
	KindCapacityExceeded
	// KindTimeTravel: the dispatcher observed a popped time before now
	// (fatal, panicked), or ScheduleAt/StartProcessAt was given a time before
	// now (returned as an error).
	KindTimeTravel
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindAlreadyInstantiated:
		return "already-instantiated"
	case KindNotInstantiated:
		return "not-instantiated"
	case KindInsufficientResource:
		return "insufficient-resource"
	case KindOverRelease:
		return "over-release"
	case KindNotFound:
		return "not-found"
	case KindCapacityExceeded:
		return "capacity-exceeded"
	case KindTimeTravel:
		return "time-travel"
	default:
		return "unknown"
	}
}

// KernelError is the typed error value returned by kernel operations. When
// the dispatcher or the singleton accessors hit a fatal kind, it is panicked
// wrapped in a *FatalFault instead; ScheduleAt and StartProcessAt return
// their time-travel error directly.
type KernelError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *KernelError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any, for errors.Is/errors.As.
func (e *KernelError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *KernelError with the same Kind.
func (e *KernelError) Is(target error) bool {
	var other *KernelError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// Fatal reports whether this error kind terminates a running simulation
// rather than being recoverable by the caller.
func (e *KernelError) Fatal() bool {
	switch e.Kind {
	case KindNotInstantiated, KindTimeTravel:
		return true
	default:
		return false
	}
}

func newError(kind ErrorKind, message string) *KernelError {
	return &KernelError{Kind: kind, Message: message}
}

// Sentinel values for errors.Is comparisons against a specific kind, mirroring
// the teacher's typed-error-plus-sentinel convention.
var (
	ErrAlreadyInstantiated  = &KernelError{Kind: KindAlreadyInstantiated}
	ErrNotInstantiated      = &KernelError{Kind: KindNotInstantiated}
	ErrInsufficientResource = &KernelError{Kind: KindInsufficientResource}
	ErrOverRelease          = &KernelError{Kind: KindOverRelease}
	ErrNotFound             = &KernelError{Kind: KindNotFound}
	ErrCapacityExceeded     = &KernelError{Kind: KindCapacityExceeded}
	ErrTimeTravel           = &KernelError{Kind: KindTimeTravel}
)

// FatalFault wraps a fatal *KernelError observed by the dispatcher. The
// scheduler panics with a *FatalFault instead of silently recovering,
// because a scheduler-invariant violation indicates a caller-introduced
// scheduling bug that must stop the run, not be logged and ignored.
type FatalFault struct {
	Err error
}

// Error implements the error interface.
func (f *FatalFault) Error() string {
	return fmt.Sprintf("sdm: fatal fault: %v", f.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (f *FatalFault) Unwrap() error {
	return f.Err
}

func panicFatal(kind ErrorKind, message string) {
	err := newError(kind, message)
	if instance != nil {
		instance.logf(LevelError, "scheduler", "fatal fault", err)
	} else if logger := getLogger(); logger.IsEnabled(LevelError) {
		logger.Log(LogEntry{Level: LevelError, Category: "scheduler", Message: "fatal fault", Err: err})
	}
	panic(&FatalFault{Err: err})
}
