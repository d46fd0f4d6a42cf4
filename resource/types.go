package resource

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
//
// The low IndexBits bits hold the slot number plus one and the remaining bits
// hold the slot's generation, so a released handle never resolves again.
type Handle uint32

const (
	// IndexBits is the number of handle bits used for the slot number.
	IndexBits = 20
	// MaxEntries is the largest number of live values a table can hold.
	MaxEntries = 1<<IndexBits - 1

	indexMask = 1<<IndexBits - 1
	maxGen    = 1<<(32-IndexBits) - 1
)

func makeHandle(slot int, gen uint32) Handle {
	return Handle(gen<<IndexBits | uint32(slot+1))
}

func (h Handle) slot() int { return int(h&indexMask) - 1 }

func (h Handle) gen() uint32 { return uint32(h) >> IndexBits }

// EventType identifies a lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	}
	return "unknown"
}

// Event represents a value lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	TypeID uint32
	Type   EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Dropper is optionally implemented by values that need cleanup on removal.
type Dropper interface {
	Drop()
}
