package sdm

// ProcessID, EventID, EntitySetID and ResourceID are distinct identifier
// types per kind of managed object, each handed out by its own monotonic
// counter. The kernel is single-threaded cooperative (spec §5), so plain
// counters are used rather than atomics.
type (
	ProcessID   uint64
	EventID     uint64
	EntitySetID uint64
	ResourceID  uint64
)

var (
	processIDCounter   ProcessID
	eventIDCounter     EventID
	entitySetIDCounter EntitySetID
	resourceIDCounter  ResourceID
)

func nextProcessID() ProcessID {
	processIDCounter++
	return processIDCounter
}

func nextEventID() EventID {
	eventIDCounter++
	return eventIDCounter
}

func nextEntitySetID() EntitySetID {
	entitySetIDCounter++
	return entitySetIDCounter
}

func nextResourceID() ResourceID {
	resourceIDCounter++
	return resourceIDCounter
}
