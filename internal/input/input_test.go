package input

import (
	"math"
	"sync"
	"testing"

	"github.com/anillaksu/neonsurvivor/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNormalizeKeyboard(t *testing.T) {
	tests := []struct {
		name     string
		keys     KeySet
		expected core.Vec2
	}{
		{"none", 0, core.V(0, 0)},
		{"up", KeySet(0).With(KeyUp), core.V(0, -1)},
		{"down", KeySet(0).With(KeyDown), core.V(0, 1)},
		{"left", KeySet(0).With(KeyLeft), core.V(-1, 0)},
		{"right", KeySet(0).With(KeyRight), core.V(1, 0)},
		{"up-right diagonal", KeySet(0).With(KeyUp).With(KeyRight), core.V(1, -1)},
		{"opposites cancel", KeySet(0).With(KeyLeft).With(KeyRight), core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.keys, Joystick{}, 50)
			if got != tc.expected {
				t.Errorf("Normalize() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNormalizeDiagonalNotUnitLength(t *testing.T) {
	v := Normalize(KeySet(0).With(KeyDown).With(KeyLeft), Joystick{}, 50)
	if !near(v.Len(), math.Sqrt2) {
		t.Errorf("diagonal length = %f, expected √2", v.Len())
	}
}

func TestJoystickOverridesKeyboard(t *testing.T) {
	keys := KeySet(0).With(KeyLeft).With(KeyUp)
	js := JoystickFromDrag(25, 0, 50)

	v := Normalize(keys, js, 50)
	if !near(v.X, 0.5) || !near(v.Y, 0) {
		t.Errorf("Normalize() = %v, expected joystick-only (0.5, 0)", v)
	}
}

func TestJoystickClampsToRadius(t *testing.T) {
	js := JoystickFromDrag(0, 200, 50)
	if js.Distance != 50 {
		t.Errorf("Distance = %f, expected clamp to 50", js.Distance)
	}

	v := js.Vector(50)
	if !near(v.X, 0) || !near(v.Y, 1) {
		t.Errorf("Vector() = %v, expected (0, 1)", v)
	}
	if v.Len() > 1+eps {
		t.Errorf("joystick magnitude %f exceeds 1", v.Len())
	}
}

func TestJoystickZeroDistance(t *testing.T) {
	js := JoystickFromDrag(0, 0, 50)
	if v := js.Vector(50); !v.IsZero() {
		t.Errorf("Vector() = %v, expected zero at center", v)
	}
}

func TestStateApply(t *testing.T) {
	s := NewState(50)

	s.Apply(KeyPressed{Key: KeyRight})
	s.Apply(KeyPressed{Key: KeyDown})
	if got := s.Vector(); got != core.V(1, 1) {
		t.Errorf("Vector() = %v, expected (1, 1)", got)
	}

	s.Apply(KeyReleased{Key: KeyDown})
	if got := s.Vector(); got != core.V(1, 0) {
		t.Errorf("Vector() after release = %v, expected (1, 0)", got)
	}

	s.Apply(Drag(-100, 0))
	got := s.Vector()
	if !near(got.X, -1) || !near(got.Y, 0) {
		t.Errorf("Vector() with joystick = %v, expected (-1, 0)", got)
	}

	s.Apply(JoystickReleased{})
	if got := s.Vector(); got != core.V(1, 0) {
		t.Errorf("Vector() after joystick release = %v, expected keyboard (1, 0)", got)
	}

	if s.Apply(RestartRequested{}) {
		t.Error("Apply() should not consume non-movement events")
	}

	s.Reset()
	if !s.Vector().IsZero() {
		t.Error("Reset() should release all input")
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(KeyPressed{Key: KeyUp}, MenuMoved{Delta: 1})
	q.Push(RestartRequested{})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, expected 3", len(events))
	}
	if _, ok := events[0].(KeyPressed); !ok {
		t.Errorf("events[0] = %T, expected KeyPressed", events[0])
	}
	if _, ok := events[2].(RestartRequested); !ok {
		t.Errorf("events[2] = %T, expected RestartRequested", events[2])
	}
	if q.Drain() != nil {
		t.Error("second Drain() should be empty")
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(MenuMoved{Delta: 1})
			}
		}()
	}
	wg.Wait()

	if n := len(q.Drain()); n != 800 {
		t.Errorf("Drain() returned %d events, expected 800", n)
	}
}
