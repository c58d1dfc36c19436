package blockbreaker

import "github.com/vovakirdan/block-breaker/internal/core"

// EntityKind tags the five entity categories.
type EntityKind int

const (
	KindPaddle EntityKind = iota
	KindBall
	KindBlock
	KindUpgrade
	KindProjectile
)

// UpdateContext is passed to every entity once per frame.
type UpdateContext struct {
	DT     float64 // Seconds since the previous frame
	Input  core.InputFrame
	Paddle *Paddle
}

// Entity is anything the game loop updates and draws each frame.
// Collision resolution works on the concrete types; the loop only needs
// this common surface.
type Entity interface {
	Kind() EntityKind
	Bounds() core.RectF
	Alive() bool
	Update(ctx *UpdateContext)
	Draw(v *Viewport)
}
