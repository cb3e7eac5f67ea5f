package sdm

// EntityID uniquely identifies an Entity for the lifetime of a process.
type EntityID uint64

// entityIDCounter hands out monotonically increasing identifiers. The
// kernel is single-threaded cooperative (spec §5), so this is a plain
// counter rather than an atomic one.
var entityIDCounter EntityID

func nextEntityID() EntityID {
	entityIDCounter++
	return entityIDCounter
}

// Entity is a token flowing through queues and resources. Its identifier is
// immutable after creation; its creation time anchors time_since_creation.
type Entity struct {
	id           EntityID
	name         string
	creationTime float32
	priority     *int
	submodel     any
}

// NewEntity creates an entity stamped with the given virtual creation time.
func NewEntity(name string, creationTime float32) *Entity {
	return &Entity{
		id:           nextEntityID(),
		name:         name,
		creationTime: creationTime,
	}
}

// ID returns the entity's stable identifier.
func (e *Entity) ID() EntityID { return e.id }

// Name returns the entity's human-readable name.
func (e *Entity) Name() string { return e.name }

// CreationTime returns the virtual time at which the entity was created.
func (e *Entity) CreationTime() float32 { return e.creationTime }

// Priority returns the entity's priority, and whether one has been set.
// A higher value means higher priority (served earlier) under PRIORITY
// discipline; an unset priority is treated as lowest.
func (e *Entity) Priority() (priority int, ok bool) {
	if e.priority == nil {
		return 0, false
	}
	return *e.priority, true
}

// SetPriority sets the entity's priority.
func (e *Entity) SetPriority(priority int) {
	e.priority = &priority
}

// ClearPriority removes any previously set priority.
func (e *Entity) ClearPriority() {
	e.priority = nil
}

// TimeSinceCreation returns now - creation_time, using the live Scheduler's
// virtual clock.
func (e *Entity) TimeSinceCreation() float32 {
	return Time() - e.creationTime
}

// AttachSubmodel stores an opaque payload on the entity (e.g. a sub-net),
// returning any previously attached value. The kernel never inspects it.
func (e *Entity) AttachSubmodel(v any) (previous any) {
	previous = e.submodel
	e.submodel = v
	return previous
}

// Submodel returns the opaque payload previously attached, if any.
func (e *Entity) Submodel() any { return e.submodel }
