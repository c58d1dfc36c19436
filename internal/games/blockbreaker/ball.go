package blockbreaker

import (
	"math"

	"github.com/vovakirdan/block-breaker/internal/core"
)

// Ball bounces between walls, paddle and blocks. Until launched it rests on
// top of the paddle.
type Ball struct {
	X, Y   float64 // Center
	DX, DY float64 // Units per second, both always non-zero
	Radius float64
	Active bool
	Lost   bool // Set when the ball leaves through the bottom edge
}

// NewBall creates an inactive ball with an upward launch direction chosen
// by rng.
func NewBall(radius, speed float64, rng *SimpleRNG) *Ball {
	return &Ball{
		Radius: radius,
		DX:     rng.Sign() * speed,
		DY:     -speed,
	}
}

// Kind implements Entity.
func (b *Ball) Kind() EntityKind { return KindBall }

// Alive implements Entity.
func (b *Ball) Alive() bool { return true }

// Bounds returns the bounding square used for collisions.
func (b *Ball) Bounds() core.RectF {
	return core.RectAround(b.X, b.Y, 2*b.Radius, 2*b.Radius)
}

// Update implements Entity.
func (b *Ball) Update(ctx *UpdateContext) {
	if !b.Active {
		b.RestOn(ctx.Paddle)
		return
	}
	if b.Move(ctx.DT) {
		b.Lost = true
	}
}

// RestOn places the ball on top of the paddle center.
func (b *Ball) RestOn(p *Paddle) {
	b.X = p.CenterX()
	b.Y = p.Y - b.Radius
}

// Launch activates a resting ball, sending it upward.
func (b *Ball) Launch() {
	b.Active = true
	b.DY = -math.Abs(b.DY)
}

// Move integrates the position and reflects off the side and top walls.
// Reflection forces the velocity away from the wall so the ball cannot get
// stuck inside it. Returns true once the ball's center drops below the
// bottom edge.
func (b *Ball) Move(dt float64) (missed bool) {
	b.X += b.DX * dt
	b.Y += b.DY * dt

	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.DX = math.Abs(b.DX)
	} else if b.X+b.Radius > WindowWidth {
		b.X = WindowWidth - b.Radius
		b.DX = -math.Abs(b.DX)
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.DY = math.Abs(b.DY)
	}

	return b.Y > WindowHeight
}

// Recenter puts the ball back in the middle of the window heading down,
// with a random horizontal direction.
func (b *Ball) Recenter(speed float64, rng *SimpleRNG) {
	b.X = WindowWidth / 2
	b.Y = WindowHeight / 2
	b.DX = rng.Sign() * speed
	b.DY = speed
	b.Lost = false
}

// SetSpeed changes the per-axis speed, keeping the direction.
func (b *Ball) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	b.DX = math.Copysign(speed, b.DX)
	b.DY = math.Copysign(speed, b.DY)
}

// BounceOffPaddle sends the ball upward. The horizontal direction follows
// the half of the paddle that was hit.
func (b *Ball) BounceOffPaddle(p *Paddle) {
	b.Y = p.Y - b.Radius
	b.DY = -math.Abs(b.DY)
	if b.X < p.CenterX() {
		b.DX = -math.Abs(b.DX)
	} else {
		b.DX = math.Abs(b.DX)
	}
}

// BounceOffBlock reflects the vertical velocity and moves the ball out of
// the block on the side it now travels toward.
func (b *Ball) BounceOffBlock(r core.RectF) {
	b.DY = -b.DY
	if b.DY < 0 {
		b.Y = math.Min(b.Y, r.Y-b.Radius)
	} else {
		b.Y = math.Max(b.Y, r.Bottom()+b.Radius)
	}
}

// Draw implements Entity.
func (b *Ball) Draw(v *Viewport) {
	v.Point(core.PointF{X: b.X, Y: b.Y}, ballGlyph, core.ColorBrightWhite)
}
