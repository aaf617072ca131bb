package window

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/anillaksu/neonsurvivor/internal/games/survivor"
)

const (
	gridSpacing   = 50
	lineHeight    = 18
	optionWidth   = 380
	optionHeight  = 44
	optionSpacing = 12
)

var (
	backgroundColor = color.RGBA{R: 8, G: 8, B: 20, A: 255}
	gridColor       = color.RGBA{R: 0, G: 255, B: 255, A: 24}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	playerColor     = colornames.Cyan
	enemyColor      = colornames.Deeppink
	projectileColor = colornames.Yellow
	hudColor        = colornames.Aqua
	accentColor     = colornames.Magenta
	mutedColor      = colornames.Gray
	stickColor      = color.RGBA{R: 0, G: 255, B: 255, A: 90}
)

// Draw renders the latest snapshot.
func (f *Frontend) Draw(screen *ebiten.Image) {
	snap := f.snap
	screen.Fill(backgroundColor)
	drawGrid(screen, f.width, f.height)

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size/2), projectileColor, true)
	}
	for _, e := range snap.Enemies {
		half := float32(e.Size / 2)
		vector.DrawFilledRect(screen, float32(e.Pos.X)-half, float32(e.Pos.Y)-half, half*2, half*2, enemyColor, true)
	}
	pl := snap.Player
	vector.DrawFilledCircle(screen, float32(pl.Pos.X), float32(pl.Pos.Y), float32(pl.Size/2), playerColor, true)

	if f.drag.Active() {
		f.drawStick(screen)
	}
	f.drawHUD(screen)

	switch snap.Mode {
	case survivor.ModeLevelUp:
		f.drawOverlay(screen)
		f.drawCentered(screen, fmt.Sprintf("LEVEL %d!", snap.Level), f.height/2-lineHeight, colornames.Yellow)
		f.drawCentered(screen, fmt.Sprintf("Enemies now spawn %.1f per second", snap.SpawnRate), f.height/2+lineHeight, mutedColor)
	case survivor.ModeUpgrading:
		f.drawOverlay(screen)
		f.drawUpgradeMenu(screen)
	case survivor.ModeGameOver:
		f.drawOverlay(screen)
		y := f.height/2 - 2*lineHeight
		f.drawCentered(screen, "GAME OVER", y, colornames.Red)
		f.drawCentered(screen, fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level), y+2*lineHeight, colornames.White)
		f.drawCentered(screen, fmt.Sprintf("Best: %d", max(f.recorder.Best(), snap.Score)), y+3*lineHeight, colornames.Yellow)
		f.drawCentered(screen, "Click, tap or press R to restart", y+5*lineHeight, mutedColor)
	}
}

func drawGrid(screen *ebiten.Image, w, h int) {
	for x := gridSpacing; x < w; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, gridColor, false)
	}
	for y := gridSpacing; y < h; y += gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, gridColor, false)
	}
}

// drawStick shows the joystick base at the drag anchor and the knob at the
// current deflection.
func (f *Frontend) drawStick(screen *ebiten.Image) {
	ax, ay := f.drag.Anchor()
	radius := f.game.Config().Joystick.MaxRadius
	vector.StrokeCircle(screen, float32(ax), float32(ay), float32(radius), 2, stickColor, true)

	// The snapshot has no joystick state; recompute the knob from the
	// cursor or touch position relative to the anchor.
	var px, py int
	if f.touching {
		px, py = ebiten.TouchPosition(f.touchID)
	} else {
		px, py = ebiten.CursorPosition()
	}
	dx, dy := float64(px)-ax, float64(py)-ay
	if d := math.Hypot(dx, dy); d > radius {
		dx, dy = dx/d*radius, dy/d*radius
	}
	vector.DrawFilledCircle(screen, float32(ax+dx), float32(ay+dy), float32(radius/2.5), stickColor, true)
}

func (f *Frontend) drawHUD(screen *ebiten.Image) {
	snap := f.snap
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Level: %d", snap.Level),
		fmt.Sprintf("Next level: %ds", int(math.Ceil(snap.LevelTimeLeft))),
		fmt.Sprintf("Enemies: %d", len(snap.Enemies)),
		fmt.Sprintf("Bullets: %s", snap.BulletPattern()),
	}
	for i, l := range lines {
		f.drawText(screen, l, 10, 10+i*lineHeight, hudColor)
	}
	u := snap.Upgrades
	f.drawText(screen, fmt.Sprintf("Speed +%d  Bullet +%d  Extra +%d",
		u.Count(survivor.UpgradeSpeed), u.Count(survivor.UpgradeBulletSpeed), u.Count(survivor.UpgradeExtraDirections)),
		10, f.height-lineHeight-6, mutedColor)
}

func (f *Frontend) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(f.width), float32(f.height), overlayColor, false)
}

func (f *Frontend) drawUpgradeMenu(screen *ebiten.Image) {
	snap := f.snap
	rects := optionRects(f.width, f.height, len(snap.Options))
	if len(rects) > 0 {
		f.drawCentered(screen, "CHOOSE AN UPGRADE", rects[0].Min.Y-2*lineHeight, colornames.Yellow)
	}
	for i, r := range rects {
		border := mutedColor
		if i == snap.Cursor {
			border = accentColor
		}
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, backgroundColor, false)
		vector.StrokeRect(screen, x, y, w, h, 2, border, true)

		opt := snap.Options[i]
		f.drawText(screen, fmt.Sprintf("%d. %s", i+1, opt.Name), r.Min.X+12, r.Min.Y+6, colornames.White)
		f.drawText(screen, opt.Description, r.Min.X+28, r.Min.Y+6+lineHeight, mutedColor)
	}
}

// optionRects lays out the upgrade option cards centered in the window.
func optionRects(w, h, n int) []image.Rectangle {
	if n == 0 {
		return nil
	}
	total := n*optionHeight + (n-1)*optionSpacing
	x0 := (w - optionWidth) / 2
	y0 := (h-total)/2 + lineHeight
	rects := make([]image.Rectangle, n)
	for i := range n {
		y := y0 + i*(optionHeight+optionSpacing)
		rects[i] = image.Rect(x0, y, x0+optionWidth, y+optionHeight)
	}
	return rects
}

func (f *Frontend) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, f.face, op)
}

func (f *Frontend) drawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(f.width)/2, float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, f.face, op)
}
