package blockbreaker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/block-breaker/internal/core"
)

// Visual characters for rendering
const (
	paddleGlyph       = '▀'
	ballGlyph         = '●'
	blockGlyph        = '█'
	damagedBlockGlyph = '▓'
	projectileGlyph   = '│'
	heartGlyph        = '♥'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Viewport maps world coordinates onto the screen rows below the HUD.
type Viewport struct {
	screen *core.Screen
	cols   int
	rows   int
}

// NewViewport creates a viewport covering the screen below the HUD.
func NewViewport(dst *core.Screen) *Viewport {
	return &Viewport{
		screen: dst,
		cols:   dst.Width(),
		rows:   max(dst.Height()-hudRows, 1),
	}
}

// CellX converts a world x coordinate to a screen column.
func (v *Viewport) CellX(wx float64) int {
	return int(wx * float64(v.cols) / WindowWidth)
}

// CellY converts a world y coordinate to a screen row.
func (v *Viewport) CellY(wy float64) int {
	return hudRows + int(wy*float64(v.rows)/WindowHeight)
}

// Point draws a single glyph at a world position.
func (v *Viewport) Point(p core.PointF, glyph rune, c core.Color) {
	y := v.CellY(p.Y)
	if y < hudRows {
		return
	}
	v.screen.SetColored(v.CellX(p.X), y, glyph, c)
}

// FillRect covers every cell the world rectangle touches, at least one.
func (v *Viewport) FillRect(r core.RectF, glyph rune, c core.Color) {
	x0, x1 := v.span(r.X, r.Right(), v.CellX)
	y0, y1 := v.span(r.Y, r.Bottom(), v.CellY)
	v.screen.DrawRect(core.NewRect(x0, max(y0, hudRows), x1-x0, y1-max(y0, hudRows)), glyph, c)
}

// FillBlock is FillRect with the last column left blank when the block is
// wide enough, so neighbouring blocks stay distinguishable.
func (v *Viewport) FillBlock(r core.RectF, glyph rune, c core.Color) {
	x0, x1 := v.span(r.X, r.Right(), v.CellX)
	if x1-x0 >= 3 {
		x1--
	}
	y0, y1 := v.span(r.Y, r.Bottom(), v.CellY)
	v.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), glyph, c)
}

func (v *Viewport) span(lo, hi float64, conv func(float64) int) (int, int) {
	a := conv(lo)
	// Right and bottom edges are exclusive
	b := conv(hi - 0.001)
	if b < a {
		b = a
	}
	return a, b + 1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := NewViewport(dst)
	for _, e := range g.drawOrder() {
		if e.Alive() {
			e.Draw(v)
		}
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// drawOrder lists entities back to front: blocks, upgrades, projectiles,
// then paddle and ball on top.
func (g *Game) drawOrder() []Entity {
	all := g.entities()
	out := make([]Entity, 0, len(all))
	out = append(out, all[2:]...)
	return append(out, all[0], all[1])
}

// renderHUD draws hearts, score, stage and laser status on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, strings.Repeat(string(heartGlyph), g.paddle.Hearts), core.ColorBrightRed)

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextCentered(0, scoreText)

	laser := fmt.Sprintf("Laser x%d ", g.paddle.Lasers)
	color := core.ColorBrightGreen
	if g.canShoot {
		laser += "READY"
	} else {
		laser += "....."
		color = core.ColorGray
	}
	right := fmt.Sprintf("Items:%d  %s", len(g.paddle.Items), laser)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, color)

	// Stage name on the left after the hearts when there is room
	stageText := g.stage.Title
	x := g.paddle.Hearts + 3
	if x+len(stageText) < (dst.Width()-len(scoreText))/2 {
		dst.DrawTextColored(x, 0, stageText, core.ColorGray)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  R restart  |  B stages", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateCleared:
		subtitle := fmt.Sprintf("Final Score: %d  |  R restart  |  B stages", g.score)
		g.drawCenteredBox(dst, "STAGE CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-utf8.RuneCountInString(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
