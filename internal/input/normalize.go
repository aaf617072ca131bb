// Package input converts raw device input into the simulation's movement
// vector and carries typed input events from adapters into the simulation.
package input

import (
	"math"

	"github.com/anillaksu/neonsurvivor/internal/core"
)

// Key is a movement direction key. Adapters resolve WASD and arrow aliases.
type Key uint8

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeySet is the set of currently held direction keys.
type KeySet uint8

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | KeySet(k)
}

// Without returns the set with k removed.
func (s KeySet) Without(k Key) KeySet {
	return s &^ KeySet(k)
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&KeySet(k) != 0
}

// Joystick is the state of the virtual touch joystick.
// Distance is already clamped to the joystick radius.
type Joystick struct {
	Active   bool
	Angle    float64 // radians, screen coordinates (y grows downward)
	Distance float64
}

// JoystickFromDrag builds an active joystick from a raw drag offset
// relative to the joystick center.
func JoystickFromDrag(dx, dy, maxRadius float64) Joystick {
	return Joystick{
		Active:   true,
		Angle:    math.Atan2(dy, dx),
		Distance: math.Min(math.Hypot(dx, dy), maxRadius),
	}
}

// Vector returns the joystick deflection scaled to [0,1] along the drag angle.
func (j Joystick) Vector(maxRadius float64) core.Vec2 {
	if !j.Active || j.Distance <= 0 || maxRadius <= 0 {
		return core.Vec2{}
	}
	scale := math.Min(j.Distance, maxRadius) / maxRadius
	return core.V(math.Cos(j.Angle)*scale, math.Sin(j.Angle)*scale)
}

// Normalize produces the movement vector for one tick. An active joystick
// overrides the keyboard. Keyboard axes are independent, so diagonals have
// length √2 and move faster than a single axis.
func Normalize(keys KeySet, js Joystick, maxRadius float64) core.Vec2 {
	if js.Active {
		return js.Vector(maxRadius)
	}

	var v core.Vec2
	if keys.Has(KeyUp) {
		v.Y--
	}
	if keys.Has(KeyDown) {
		v.Y++
	}
	if keys.Has(KeyLeft) {
		v.X--
	}
	if keys.Has(KeyRight) {
		v.X++
	}
	return v
}
