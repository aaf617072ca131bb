// Package window runs NeonSurvivor in a desktop or mobile window with
// Ebitengine. The arena follows the window size; touch and mouse drags
// drive a virtual joystick.
package window

import (
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/anillaksu/neonsurvivor/internal/core"
	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
	"github.com/anillaksu/neonsurvivor/internal/input"
	"github.com/anillaksu/neonsurvivor/internal/platform"
)

// MaxDeltaTime caps the simulated time of one frame in seconds.
const MaxDeltaTime = 0.1

// Frontend implements ebiten.Game around a survivor.Game.
type Frontend struct {
	game     *survivor.Game
	recorder *platform.Recorder
	logger   *log.Logger
	face     text.Face
	snap     survivor.Snapshot

	keys     input.KeySet
	drag     input.DragTracker
	touchID  ebiten.TouchID
	touching bool

	lastUpdate time.Time
	width      int
	height     int
}

// New creates a frontend and resets the game with rt.
func New(game *survivor.Game, recorder *platform.Recorder, logger *log.Logger, rt core.RuntimeConfig) *Frontend {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	game.Reset(rt)
	return &Frontend{
		game:     game,
		recorder: recorder,
		logger:   logger,
		face:     text.NewGoXFace(basicfont.Face7x13),
		snap:     game.Snapshot(),
	}
}

// Update polls input and advances the simulation by the measured frame time.
func (f *Frontend) Update() error {
	now := time.Now()
	dt := 0.0
	if !f.lastUpdate.IsZero() {
		dt = min(now.Sub(f.lastUpdate).Seconds(), MaxDeltaTime)
	}
	f.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		f.logger.Debug("fullscreen toggled", "on", ebiten.IsFullscreen())
	}

	f.pollKeyboard()
	f.pollPointer()

	events := f.game.Tick(dt)
	f.recorder.Observe(events)
	f.snap = f.game.Snapshot()
	return nil
}

func (f *Frontend) pollKeyboard() {
	var cur input.KeySet
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cur = cur.With(input.KeyUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cur = cur.With(input.KeyDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cur = cur.With(input.KeyLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cur = cur.With(input.KeyRight)
	}
	f.game.Push(input.KeyTransitions(f.keys, cur)...)
	f.keys = cur

	switch f.snap.Mode {
	case survivor.ModeUpgrading:
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
			f.game.Push(input.MenuMoved{Delta: -1})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
			f.game.Push(input.MenuMoved{Delta: 1})
		}
		for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
			if inpututil.IsKeyJustPressed(k) {
				f.game.Push(input.UpgradeSelected{Index: i})
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			f.game.Push(input.MenuConfirmed{})
		}
	case survivor.ModeGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			f.game.Push(input.RestartRequested{})
		}
	}
}

// pollPointer follows one touch at a time, or the left mouse button.
func (f *Frontend) pollPointer() {
	if f.touching {
		if inpututil.IsTouchJustReleased(f.touchID) {
			f.touching = false
			f.pointerUp()
			return
		}
		x, y := ebiten.TouchPosition(f.touchID)
		f.pointerMove(x, y)
		return
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		f.touchID = ids[0]
		f.touching = true
		x, y := ebiten.TouchPosition(f.touchID)
		f.pointerDown(x, y)
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		f.pointerDown(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		f.pointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		f.pointerMove(x, y)
	}
}

func (f *Frontend) pointerDown(x, y int) {
	switch f.snap.Mode {
	case survivor.ModeGameOver:
		f.game.Push(input.RestartRequested{})
	case survivor.ModeUpgrading:
		rects := optionRects(f.width, f.height, len(f.snap.Options))
		for i, r := range rects {
			if image.Pt(x, y).In(r) {
				f.game.Push(input.UpgradeSelected{Index: i})
				return
			}
		}
	case survivor.ModePlaying:
		f.game.Push(f.drag.Begin(float64(x), float64(y)))
	}
}

func (f *Frontend) pointerMove(x, y int) {
	if ev := f.drag.Move(float64(x), float64(y)); ev != nil {
		f.game.Push(ev)
	}
}

func (f *Frontend) pointerUp() {
	if ev := f.drag.End(); ev != nil {
		f.game.Push(ev)
	}
}

// Layout sizes the arena to the window, so fullscreen and resizing
// change the playfield bounds.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != f.width || outsideHeight != f.height {
		f.width, f.height = outsideWidth, outsideHeight
		f.game.Push(input.Resized{Width: float64(outsideWidth), Height: float64(outsideHeight)})
		f.logger.Debug("arena resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(f *Frontend, title string, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(f)
}
