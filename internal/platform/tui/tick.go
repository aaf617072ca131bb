// Package tui runs NeonSurvivor in the terminal with Bubble Tea.
// It maps keys to input events, drives the simulation from a frame clock
// and renders snapshots into a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameDelta caps the simulated time of a single frame in seconds, so a
// stalled terminal does not teleport enemies.
const MaxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two frames, clamped to
// [0, MaxFrameDelta]. The first frame has no predecessor and yields 0.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	return min(max(now.Sub(prev).Seconds(), 0), MaxFrameDelta)
}
