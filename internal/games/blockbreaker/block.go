package blockbreaker

import "github.com/vovakirdan/block-breaker/internal/core"

// Block is a destructible brick.
type Block struct {
	Code          rune
	X, Y          float64
	Width, Height float64
	HP, MaxHP     int
	Destroyed     bool
}

// BlockHit is the outcome of damaging a block.
type BlockHit struct {
	Destroyed bool
	Center    core.PointF
	Code      rune
	MaxHP     int
}

// NewBlock creates a block whose hit points come from its code.
func NewBlock(code rune, x, y, w, h float64) *Block {
	hp := hitPointsFor(code)
	return &Block{
		Code:   code,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		HP:     hp,
		MaxHP:  hp,
	}
}

// Kind implements Entity.
func (b *Block) Kind() EntityKind { return KindBlock }

// Alive implements Entity.
func (b *Block) Alive() bool { return !b.Destroyed }

// Bounds returns the block rectangle.
func (b *Block) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// Update implements Entity. Blocks are static.
func (b *Block) Update(*UpdateContext) {}

// Damage removes n hit points. HP never goes below zero and never grows.
func (b *Block) Damage(n int) BlockHit {
	if n > 0 && !b.Destroyed {
		b.HP -= n
		if b.HP <= 0 {
			b.HP = 0
			b.Destroyed = true
		}
	}
	return BlockHit{
		Destroyed: b.Destroyed,
		Center:    b.Bounds().Center(),
		Code:      b.Code,
		MaxHP:     b.MaxHP,
	}
}

// Draw implements Entity.
func (b *Block) Draw(v *Viewport) {
	if b.Destroyed {
		return
	}
	glyph := blockGlyph
	if b.HP < b.MaxHP {
		glyph = damagedBlockGlyph
	}
	v.FillBlock(b.Bounds(), glyph, blockColor(b.HP))
}

// blockColor picks the color for the remaining hit points.
func blockColor(hp int) core.Color {
	switch hp {
	case 1:
		return core.ColorBlue
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorRed
	case 4:
		return core.ColorOrange
	case 5:
		return core.ColorMagenta
	case 6:
		return core.ColorYellow
	case 7:
		return core.ColorCyan
	case 8:
		return core.ColorBrightWhite
	default:
		return core.ColorGray
	}
}
