package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/anillaksu/neonsurvivor/internal/core"
	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
)

// Glyphs used to draw the arena.
const (
	PlayerGlyph     = '@'
	EnemyGlyph      = 'x'
	ProjectileGlyph = '•'
	GridGlyph       = '·'
)

// gridSpacing is the distance between background grid dots in arena units,
// matching the 50px grid of the window frontend.
const gridSpacing = 50.0

// Minimum screen size that can show the arena and overlays.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// viewport maps arena coordinates to screen cells inside the border.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

// newViewport fits the arena into the screen below the HUD row, inside a
// one-cell border. The axes scale independently to fill the terminal.
func newViewport(screenW, screenH int, arenaW, arenaH float64) viewport {
	v := viewport{x0: 1, y0: 2, w: max(screenW-2, 1), h: max(screenH-3, 1)}
	v.sx = float64(v.w) / arenaW
	v.sy = float64(v.h) / arenaH
	return v
}

// cell returns the screen cell for an arena position and whether it is
// inside the viewport.
func (v viewport) cell(p core.Vec2) (x, y int, ok bool) {
	cx := int(math.Floor(p.X * v.sx))
	cy := int(math.Floor(p.Y * v.sy))
	if cx < 0 || cx >= v.w || cy < 0 || cy >= v.h {
		return 0, 0, false
	}
	return v.x0 + cx, v.y0 + cy, true
}

// HUD carries adapter-side values shown next to the simulation state.
type HUD struct {
	Best   int
	Seed   int64 // shown on game over so a run can be replayed with --seed
	Paused bool
}

// DrawFrame renders a snapshot into the screen buffer.
func DrawFrame(s *core.Screen, snap survivor.Snapshot, hud HUD) {
	s.Clear()
	if s.Width() < MinScreenW || s.Height() < MinScreenH {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	v := newViewport(s.Width(), s.Height(), snap.Width, snap.Height)
	drawHUD(s, snap, hud)
	s.DrawBox(core.NewRect(0, 1, s.Width(), s.Height()-1), core.ColorCyan)
	drawGrid(s, v, snap.Width, snap.Height)

	for _, p := range snap.Projectiles {
		if x, y, ok := v.cell(p.Pos); ok {
			s.SetColored(x, y, ProjectileGlyph, core.ColorBrightYellow)
		}
	}
	for _, e := range snap.Enemies {
		if x, y, ok := v.cell(e.Pos); ok {
			s.SetColored(x, y, EnemyGlyph, core.ColorNeonPink)
		}
	}
	if x, y, ok := v.cell(snap.Player.Pos); ok {
		s.SetColored(x, y, PlayerGlyph, core.ColorBrightCyan)
	}

	switch {
	case hud.Paused:
		drawPanel(s, []panelLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"p to resume · q to quit", core.ColorGray},
		})
	case snap.Mode == survivor.ModeLevelUp:
		drawPanel(s, []panelLine{
			{fmt.Sprintf("LEVEL %d!", snap.Level), core.ColorBrightYellow},
			{fmt.Sprintf("Enemies now spawn %.1f/s", snap.SpawnRate), core.ColorGray},
		})
	case snap.Mode == survivor.ModeUpgrading:
		drawPanel(s, upgradeLines(snap))
	case snap.Mode == survivor.ModeGameOver:
		drawPanel(s, []panelLine{
			{"GAME OVER", core.ColorRed},
			{"", core.ColorDefault},
			{fmt.Sprintf("Score: %d   Level: %d   Upgrades: %d", snap.Score, snap.Level, snap.Upgrades.Total()), core.ColorWhite},
			{fmt.Sprintf("Best: %d", max(hud.Best, snap.Score)), core.ColorBrightYellow},
			{fmt.Sprintf("Seed: %d", hud.Seed), core.ColorGray},
			{"", core.ColorDefault},
			{"r / click to restart · q to quit", core.ColorGray},
		})
	}
}

func drawHUD(s *core.Screen, snap survivor.Snapshot, hud HUD) {
	left := fmt.Sprintf(" SCORE %d  LEVEL %d  NEXT %ds", snap.Score, snap.Level, int(math.Ceil(snap.LevelTimeLeft)))
	right := fmt.Sprintf("ENEMIES %d  %s  BEST %d ", len(snap.Enemies), snap.BulletPattern(), max(hud.Best, snap.Score))
	s.DrawTextColored(0, 0, left, core.ColorBrightCyan)
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, core.ColorMagenta)
}

func drawGrid(s *core.Screen, v viewport, w, h float64) {
	for gy := gridSpacing; gy < h; gy += gridSpacing {
		for gx := gridSpacing; gx < w; gx += gridSpacing {
			if x, y, ok := v.cell(core.V(gx, gy)); ok {
				s.SetColored(x, y, GridGlyph, core.ColorGrid)
			}
		}
	}
}

type panelLine struct {
	text  string
	color core.Color
}

func upgradeLines(snap survivor.Snapshot) []panelLine {
	lines := []panelLine{
		{"CHOOSE AN UPGRADE", core.ColorBrightYellow},
		{"", core.ColorDefault},
	}
	for i, opt := range snap.Options {
		cursor, color := "  ", core.ColorWhite
		if i == snap.Cursor {
			cursor, color = "> ", core.ColorBrightCyan
		}
		lines = append(lines, panelLine{
			text:  fmt.Sprintf("%s%d. %s  %s", cursor, i+1, opt.Name, opt.Description),
			color: color,
		})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"1-3 or ↑/↓ + enter", core.ColorGray},
	)
	return lines
}

// drawPanel draws a bordered, centered panel over the arena.
func drawPanel(s *core.Screen, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	width = min(width+4, s.Width())
	height := min(len(lines)+2, s.Height())
	r := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)

	s.DrawRect(r, ' ')
	s.DrawBox(r, core.ColorMagenta)
	for i, l := range lines {
		if strings.TrimSpace(l.text) == "" {
			continue
		}
		s.DrawTextColored(r.X+2, r.Y+1+i, l.text, l.color)
	}
}
