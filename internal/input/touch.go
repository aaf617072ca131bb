package input

// DragTracker turns pointer drags into joystick events. The stick is
// anchored wherever the drag began, so it works anywhere on the screen.
type DragTracker struct {
	active           bool
	anchorX, anchorY float64
	lastX, lastY     float64
}

// Begin anchors the stick at (x, y).
func (d *DragTracker) Begin(x, y float64) Event {
	d.active = true
	d.anchorX, d.anchorY = x, y
	d.lastX, d.lastY = x, y
	return JoystickMoved{}
}

// Move reports the drag relative to the anchor. It returns nil when no
// drag is active or the pointer did not move.
func (d *DragTracker) Move(x, y float64) Event {
	if !d.active || (x == d.lastX && y == d.lastY) {
		return nil
	}
	d.lastX, d.lastY = x, y
	return Drag(x-d.anchorX, y-d.anchorY)
}

// End releases the stick. It returns nil when no drag is active.
func (d *DragTracker) End() Event {
	if !d.active {
		return nil
	}
	d.active = false
	return JoystickReleased{}
}

// Active reports whether a drag is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}

// Anchor returns where the current drag began.
func (d *DragTracker) Anchor() (x, y float64) {
	return d.anchorX, d.anchorY
}

// KeyTransitions returns the press and release events that turn the held
// set prev into cur, for frontends that poll key state.
func KeyTransitions(prev, cur KeySet) []Event {
	var events []Event
	for _, k := range [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		switch {
		case cur.Has(k) && !prev.Has(k):
			events = append(events, KeyPressed{Key: k})
		case !cur.Has(k) && prev.Has(k):
			events = append(events, KeyReleased{Key: k})
		}
	}
	return events
}
