package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anillaksu/neonsurvivor/internal/input"
)

// Command is what a key press asks the adapter to do.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdRestart
	CmdMove    // Key holds the direction
	CmdSelect  // Index holds the upgrade option
	CmdConfirm // Select the option under the cursor
)

// KeyAction is the result of mapping one key message.
type KeyAction struct {
	Command Command
	Key     input.Key
	Index   int
}

// KeyMapper translates Bubble Tea key messages to commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyAction{Command: CmdQuit}
	case "w", "up", "k":
		return KeyAction{Command: CmdMove, Key: input.KeyUp}
	case "s", "down", "j":
		return KeyAction{Command: CmdMove, Key: input.KeyDown}
	case "a", "left", "h":
		return KeyAction{Command: CmdMove, Key: input.KeyLeft}
	case "d", "right", "l":
		return KeyAction{Command: CmdMove, Key: input.KeyRight}
	case "1", "2", "3":
		return KeyAction{Command: CmdSelect, Index: int(msg.String()[0] - '1')}
	case "enter", " ":
		return KeyAction{Command: CmdConfirm}
	case "p", "esc":
		return KeyAction{Command: CmdPause}
	case "r":
		return KeyAction{Command: CmdRestart}
	}
	return KeyAction{}
}

// DefaultHoldWindow is how long a direction stays held after its last
// key event. Terminals report repeats but never releases.
const DefaultHoldWindow = 220 * time.Millisecond

var directionKeys = [...]input.Key{input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight}

// heldKeys tracks the last press of each direction key.
type heldKeys struct {
	window  time.Duration
	pressed map[input.Key]time.Time
}

func newHeldKeys(window time.Duration) heldKeys {
	return heldKeys{window: window, pressed: make(map[input.Key]time.Time, len(directionKeys))}
}

// press records a key event and reports whether the key was not held yet.
func (h heldKeys) press(k input.Key, now time.Time) bool {
	_, held := h.pressed[k]
	h.pressed[k] = now
	return !held
}

// expire releases keys whose last event is older than the hold window.
func (h heldKeys) expire(now time.Time) []input.Key {
	var released []input.Key
	for _, k := range directionKeys {
		last, ok := h.pressed[k]
		if ok && now.Sub(last) > h.window {
			delete(h.pressed, k)
			released = append(released, k)
		}
	}
	return released
}

// releaseAll releases every held key.
func (h heldKeys) releaseAll() []input.Key {
	var released []input.Key
	for _, k := range directionKeys {
		if _, ok := h.pressed[k]; ok {
			delete(h.pressed, k)
			released = append(released, k)
		}
	}
	return released
}
