package blockbreaker

import "github.com/vovakirdan/block-breaker/internal/core"

// Projectile is a laser shot rising from the paddle.
type Projectile struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
	Active        bool
}

// NewProjectile creates a projectile whose bottom edge is centered on the
// muzzle position.
func NewProjectile(muzzle core.PointF, w, h, speed float64) *Projectile {
	return &Projectile{
		X:      muzzle.X - w/2,
		Y:      muzzle.Y - h,
		Width:  w,
		Height: h,
		Speed:  speed,
		Active: true,
	}
}

// Kind implements Entity.
func (p *Projectile) Kind() EntityKind { return KindProjectile }

// Alive implements Entity.
func (p *Projectile) Alive() bool { return p.Active }

// Bounds returns the projectile rectangle.
func (p *Projectile) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Update implements Entity.
func (p *Projectile) Update(ctx *UpdateContext) {
	p.Y -= p.Speed * ctx.DT
	if p.Y+p.Height < 0 {
		p.Active = false
	}
}

// Draw implements Entity.
func (p *Projectile) Draw(v *Viewport) {
	v.Point(p.Bounds().Center(), projectileGlyph, core.ColorOrange)
}
