package blockbreaker

import "github.com/vovakirdan/block-breaker/internal/core"

// UpgradeKind names a collectible paddle upgrade.
type UpgradeKind string

const (
	UpgradeLongerPaddle UpgradeKind = "longer_paddle"
	UpgradeFasterPaddle UpgradeKind = "faster_paddle"
	UpgradeExtraHeart   UpgradeKind = "extra_heart"
	UpgradeLaser        UpgradeKind = "laser"
)

// UpgradeKinds lists every kind; drops pick uniformly from it.
var UpgradeKinds = []UpgradeKind{
	UpgradeLongerPaddle,
	UpgradeFasterPaddle,
	UpgradeExtraHeart,
	UpgradeLaser,
}

// Glyph returns the character used to draw the upgrade.
func (k UpgradeKind) Glyph() rune {
	switch k {
	case UpgradeLongerPaddle:
		return 'W'
	case UpgradeFasterPaddle:
		return 'S'
	case UpgradeExtraHeart:
		return '♥'
	case UpgradeLaser:
		return 'L'
	default:
		return '?'
	}
}

func (k UpgradeKind) color() core.Color {
	switch k {
	case UpgradeLongerPaddle:
		return core.ColorBrightGreen
	case UpgradeFasterPaddle:
		return core.ColorBrightYellow
	case UpgradeExtraHeart:
		return core.ColorBrightRed
	default:
		return core.ColorBrightMagenta
	}
}

// Upgrade falls from a destroyed block until collected or off-screen.
type Upgrade struct {
	Type          UpgradeKind
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
	Active        bool
}

// NewUpgrade creates an upgrade centered on pos.
func NewUpgrade(kind UpgradeKind, pos core.PointF, w, h, speed float64) *Upgrade {
	return &Upgrade{
		Type:   kind,
		X:      pos.X - w/2,
		Y:      pos.Y - h/2,
		Width:  w,
		Height: h,
		Speed:  speed,
		Active: true,
	}
}

// Kind implements Entity.
func (u *Upgrade) Kind() EntityKind { return KindUpgrade }

// Alive implements Entity.
func (u *Upgrade) Alive() bool { return u.Active }

// Bounds returns the upgrade rectangle.
func (u *Upgrade) Bounds() core.RectF {
	return core.NewRectF(u.X, u.Y, u.Width, u.Height)
}

// Update implements Entity.
func (u *Upgrade) Update(ctx *UpdateContext) {
	u.Y += u.Speed * ctx.DT
	if u.Y > WindowHeight {
		u.Active = false
	}
}

// Draw implements Entity.
func (u *Upgrade) Draw(v *Viewport) {
	v.Point(u.Bounds().Center(), u.Type.Glyph(), u.Type.color())
}
