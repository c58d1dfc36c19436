package blockbreaker

import (
	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
)

// paddleBottomMargin is the distance between the paddle and the window bottom.
const paddleBottomMargin = 20.0

// Paddle is the player-controlled bar. It also carries the player's hearts
// and collected upgrades.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per second
	Hearts        int
	Items         []UpgradeKind
	Lasers        int // Number of laser barrels
}

// NewPaddle creates a paddle centered at the bottom of the window.
func NewPaddle(cfg config.PaddleConfig, hearts int) *Paddle {
	p := &Paddle{
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
		Hearts: hearts,
		Lasers: 1,
	}
	p.X = (WindowWidth - p.Width) / 2
	p.Y = WindowHeight - paddleBottomMargin - p.Height
	return p
}

// Kind implements Entity.
func (p *Paddle) Kind() EntityKind { return KindPaddle }

// Alive implements Entity. The paddle lives for the whole run.
func (p *Paddle) Alive() bool { return true }

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Update implements Entity.
func (p *Paddle) Update(ctx *UpdateContext) {
	p.Move(ctx.Input, ctx.DT)
}

// Move shifts the paddle by Speed*dt in the held direction and keeps it
// inside the window. Holding both directions cancels out.
func (p *Paddle) Move(in core.InputFrame, dt float64) {
	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	p.X += dir * p.Speed * dt
	p.clamp()
}

func (p *Paddle) clamp() {
	p.X = core.ClampF(p.X, 0, WindowWidth-p.Width)
}

// CollectItem records an upgrade and applies its effect. Effects last for
// the rest of the run.
func (p *Paddle) CollectItem(kind UpgradeKind, cfg config.PaddleConfig) {
	p.Items = append(p.Items, kind)

	switch kind {
	case UpgradeLongerPaddle:
		p.Width += cfg.WidthIncrement
		if cfg.MaxWidth > 0 && p.Width > cfg.MaxWidth {
			p.Width = cfg.MaxWidth
		}
		// A wider paddle near the right wall must move back inside
		p.clamp()
	case UpgradeFasterPaddle:
		p.Speed += cfg.SpeedIncrement
	case UpgradeExtraHeart:
		p.Hearts++
	case UpgradeLaser:
		if cfg.MaxLasers <= 0 || p.Lasers < cfg.MaxLasers {
			p.Lasers++
		}
	}
}

// LoseLife removes one heart and reports whether none are left.
func (p *Paddle) LoseLife() bool {
	if p.Hearts > 0 {
		p.Hearts--
	}
	return p.Hearts == 0
}

// LaserOrigins returns the muzzle positions on top of the paddle, spread
// evenly across its width.
func (p *Paddle) LaserOrigins() []core.PointF {
	if p.Lasers <= 0 {
		return nil
	}
	origins := make([]core.PointF, p.Lasers)
	step := p.Width / float64(p.Lasers)
	for i := range origins {
		origins[i] = core.PointF{X: p.X + step*(float64(i)+0.5), Y: p.Y}
	}
	return origins
}

// Draw implements Entity.
func (p *Paddle) Draw(v *Viewport) {
	v.FillRect(p.Bounds(), paddleGlyph, core.ColorBrightCyan)
}
