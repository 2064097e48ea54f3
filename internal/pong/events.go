package pong

// EventKind classifies something notable that happened during a frame.
type EventKind int

const (
	EventModeChanged  EventKind = iota // menu confirmed, gameplay started
	EventPaddleHit                     // ball bounced off Side's paddle
	EventWallBounce                    // ball bounced off the top or bottom edge
	EventScored                        // Side scored a point
	EventPaddleShrunk                  // Side's paddle lost height
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventModeChanged:
		return "mode_changed"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventScored:
		return "scored"
	case EventPaddleShrunk:
		return "paddle_shrunk"
	default:
		return "unknown"
	}
}

// Event is reported in StepResult. Events never feed back into the
// simulation; platforms use them for logging.
type Event struct {
	Kind EventKind
	Side Side // SideNone when the event has no side
}

// StepResult is returned by Simulate after each frame.
type StepResult struct {
	Mode   Mode
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
