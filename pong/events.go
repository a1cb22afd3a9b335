package pong

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventMatchStarted EventKind = iota
	EventPaddleHit
	EventWallBounce
	EventPoint
	EventMatchWon
	EventReset
)

var eventNames = map[EventKind]string{
	EventMatchStarted: "match_started",
	EventPaddleHit:    "paddle_hit",
	EventWallBounce:   "wall_bounce",
	EventPoint:        "point",
	EventMatchWon:     "match_won",
	EventReset:        "reset",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a gameplay notification emitted by the systems. Side is the
// paddle that was hit, the side that scored or the side that won. Score is
// the score after the event.
type Event struct {
	Kind  EventKind
	Side  Side
	Score Score
	Speed int
}

// Listener consumes events after every World.Step.
type Listener interface {
	Handle(ev Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) Handle(ev Event) { f(ev) }

// Events is the per-frame queue singleton. Systems emit into it and
// World.Step drains it.
type Events struct {
	queue []Event
}

// Emit appends an event to the queue.
func (e *Events) Emit(ev Event) {
	e.queue = append(e.queue, ev)
}

// Drain returns the queued events and empties the queue.
func (e *Events) Drain() []Event {
	if len(e.queue) == 0 {
		return nil
	}
	out := e.queue
	e.queue = nil
	return out
}
