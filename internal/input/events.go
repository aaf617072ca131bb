package input

import (
	"math"
	"sync"

	"github.com/anillaksu/neonsurvivor/internal/core"
)

// Event is a typed input message pushed by a presentation adapter.
type Event interface {
	inputEvent()
}

// KeyPressed is sent when a direction key goes down.
type KeyPressed struct {
	Key Key
}

func (KeyPressed) inputEvent() {}

// KeyReleased is sent when a direction key goes up.
type KeyReleased struct {
	Key Key
}

func (KeyReleased) inputEvent() {}

// JoystickMoved carries a raw drag relative to the joystick center.
// Distance is not clamped; the simulation clamps it to the joystick radius.
type JoystickMoved struct {
	Angle    float64
	Distance float64
}

func (JoystickMoved) inputEvent() {}

// Drag builds a JoystickMoved event from a drag offset.
func Drag(dx, dy float64) JoystickMoved {
	return JoystickMoved{Angle: math.Atan2(dy, dx), Distance: math.Hypot(dx, dy)}
}

// JoystickReleased is sent when the touch driving the joystick ends.
type JoystickReleased struct{}

func (JoystickReleased) inputEvent() {}

// MenuMoved moves the upgrade menu cursor by Delta (-1 up, +1 down).
type MenuMoved struct {
	Delta int
}

func (MenuMoved) inputEvent() {}

// MenuConfirmed selects the option under the upgrade menu cursor.
type MenuConfirmed struct{}

func (MenuConfirmed) inputEvent() {}

// UpgradeSelected selects an upgrade option by index.
type UpgradeSelected struct {
	Index int
}

func (UpgradeSelected) inputEvent() {}

// RestartRequested asks for a new run after game over.
type RestartRequested struct{}

func (RestartRequested) inputEvent() {}

// Resized reports a new arena size, e.g. after a fullscreen toggle.
type Resized struct {
	Width  float64
	Height float64
}

func (Resized) inputEvent() {}

// Queue buffers events between adapters and the simulation. Adapters may
// push from any goroutine; the simulation drains once per tick.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends events in order.
func (q *Queue) Push(events ...Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, events...)
}

// Drain removes and returns all buffered events in FIFO order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Clear drops all buffered events.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = q.events[:0]
}

// State folds movement events into the held-keys and joystick state.
type State struct {
	Keys      KeySet
	Joystick  Joystick
	MaxRadius float64
}

// NewState creates an input state for a joystick of the given radius.
func NewState(maxRadius float64) State {
	return State{MaxRadius: maxRadius}
}

// Apply folds a movement event into the state. It reports whether the
// event was a movement event; other events are left to the caller.
func (s *State) Apply(ev Event) bool {
	switch e := ev.(type) {
	case KeyPressed:
		s.Keys = s.Keys.With(e.Key)
	case KeyReleased:
		s.Keys = s.Keys.Without(e.Key)
	case JoystickMoved:
		s.Joystick = Joystick{
			Active:   true,
			Angle:    e.Angle,
			Distance: math.Min(e.Distance, s.MaxRadius),
		}
	case JoystickReleased:
		s.Joystick = Joystick{}
	default:
		return false
	}
	return true
}

// Vector returns the normalized movement vector for the current state.
func (s State) Vector() core.Vec2 {
	return Normalize(s.Keys, s.Joystick, s.MaxRadius)
}

// Reset releases all keys and the joystick.
func (s *State) Reset() {
	s.Keys = 0
	s.Joystick = Joystick{}
}
