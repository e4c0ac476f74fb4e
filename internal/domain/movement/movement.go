// Package movement defines the player movement states and the table of
// transitions between them.
package movement

// State is the player's discrete movement state.
type State int

const (
	Jumping State = iota // airborne, includes falling; initial state
	Grounded
	WallSliding
	WallJumping
)

// String returns the string representation of the movement state
func (s State) String() string {
	switch s {
	case Jumping:
		return "Jumping"
	case Grounded:
		return "Grounded"
	case WallSliding:
		return "WallSliding"
	case WallJumping:
		return "WallJumping"
	default:
		return "Unknown"
	}
}

// Event is something that happened during a tick that may change the movement state.
type Event int

const (
	EventJumpPressed Event = iota
	EventLanded
	EventWallContact
	EventNoContact
	EventLethal
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case EventJumpPressed:
		return "JumpPressed"
	case EventLanded:
		return "Landed"
	case EventWallContact:
		return "WallContact"
	case EventNoContact:
		return "NoContact"
	case EventLethal:
		return "Lethal"
	default:
		return "Unknown"
	}
}

// transition is a single row of the movement table.
// from == nil matches any state.
type transition struct {
	from  *State
	event Event
	to    State
}

func from(s State) *State { return &s }

// table is the movement state machine. Rows are matched top to bottom;
// an event with no matching row leaves the state unchanged.
var table = []transition{
	{nil, EventLanded, Grounded},
	{nil, EventWallContact, WallSliding},
	{from(Grounded), EventJumpPressed, Jumping},
	{from(WallSliding), EventJumpPressed, WallJumping},
	{nil, EventNoContact, Jumping},
	{nil, EventLethal, Jumping},
}

// Next returns the state reached from s on event e.
func Next(s State, e Event) State {
	for _, t := range table {
		if t.event != e {
			continue
		}
		if t.from != nil && *t.from != s {
			continue
		}
		return t.to
	}
	return s
}
