package blockbreaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-breaker/internal/core"
)

func TestCollideBallPaddle(t *testing.T) {
	p, _ := testPaddle()
	p.X = 500
	p.Width = 200

	// Falling onto the left half
	b := &Ball{X: 550, Y: p.Y, DX: 300, DY: 300, Radius: 10, Active: true}
	require.True(t, collideBallPaddle(b, p))
	assert.Less(t, b.DY, 0.0)
	assert.Equal(t, -300.0, b.DX)
	assert.Equal(t, p.Y-b.Radius, b.Y)

	// Falling onto the right half
	b = &Ball{X: 650, Y: p.Y, DX: -300, DY: 300, Radius: 10, Active: true}
	require.True(t, collideBallPaddle(b, p))
	assert.Equal(t, 300.0, b.DX)

	// Already moving up: no contact
	b = &Ball{X: 650, Y: p.Y, DX: -300, DY: -300, Radius: 10, Active: true}
	assert.False(t, collideBallPaddle(b, p))
	assert.Equal(t, -300.0, b.DX)
}

func TestCollideBallBlocksFirstMatch(t *testing.T) {
	first := NewBlock('1', 100, 100, 100, 40)
	second := NewBlock('1', 100, 100, 100, 40)
	b := &Ball{X: 150, Y: 145, DX: 300, DY: -300, Radius: 10, Active: true}

	hit, ok := collideBallBlocks(b, []*Block{first, second})

	require.True(t, ok)
	assert.True(t, hit.Destroyed)
	assert.True(t, first.Destroyed)
	assert.False(t, second.Destroyed)
	assert.Greater(t, b.DY, 0.0, "vertical velocity is reflected")
	assert.GreaterOrEqual(t, b.Y-b.Radius, first.Bounds().Bottom())
}

func TestCollideBallBlocksSkipsDestroyed(t *testing.T) {
	dead := NewBlock('1', 100, 100, 100, 40)
	dead.Damage(1)
	b := &Ball{X: 150, Y: 145, DX: 300, DY: -300, Radius: 10, Active: true}

	_, ok := collideBallBlocks(b, []*Block{dead})
	assert.False(t, ok)
	assert.Equal(t, -300.0, b.DY)
}

func TestCollideProjectilesOneBlockEach(t *testing.T) {
	first := NewBlock('2', 600, 300, 80, 40)
	second := NewBlock('2', 600, 300, 80, 40)
	p := NewProjectile(core.PointF{X: 640, Y: 350}, 6, 20, 500)

	hits := collideProjectiles([]*Projectile{p}, []*Block{first, second})

	require.Len(t, hits, 1)
	assert.Equal(t, 1, first.HP)
	assert.Equal(t, 2, second.HP)
	assert.False(t, p.Active)
}

func TestCollideProjectilesSharedTarget(t *testing.T) {
	blk := NewBlock('1', 600, 300, 80, 40)
	p1 := NewProjectile(core.PointF{X: 620, Y: 350}, 6, 20, 500)
	p2 := NewProjectile(core.PointF{X: 660, Y: 350}, 6, 20, 500)

	hits := collideProjectiles([]*Projectile{p1, p2}, []*Block{blk})

	require.Len(t, hits, 1, "destroyed blocks take no further hits")
	assert.True(t, hits[0].Destroyed)
	assert.False(t, p1.Active)
	assert.True(t, p2.Active)
}

func TestCollectUpgrades(t *testing.T) {
	p, _ := testPaddle()
	on := NewUpgrade(UpgradeLaser, core.PointF{X: p.CenterX(), Y: p.Y + 5}, 40, 30, 300)
	off := NewUpgrade(UpgradeExtraHeart, core.PointF{X: p.CenterX(), Y: 100}, 40, 30, 300)

	got := collectUpgrades(p, []*Upgrade{on, off})

	require.Len(t, got, 1)
	assert.Equal(t, UpgradeLaser, got[0].Type)
	assert.False(t, on.Active)
	assert.True(t, off.Active)
}
