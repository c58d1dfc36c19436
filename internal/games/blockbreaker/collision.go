package blockbreaker

// Each detector makes a single pass over one entity category. Stages hold
// at most a few hundred blocks, so there is no spatial index.

// collideBallPaddle bounces the ball off the paddle. Contact only counts
// while the ball moves down, so a ball already leaving the paddle is not
// caught twice.
func collideBallPaddle(b *Ball, p *Paddle) bool {
	if !b.Active || b.DY <= 0 {
		return false
	}
	if !b.Bounds().Intersects(p.Bounds()) {
		return false
	}
	b.BounceOffPaddle(p)
	return true
}

// collideBallBlocks damages the first live block the ball overlaps, in
// stage order, and reflects the ball.
func collideBallBlocks(b *Ball, blocks []*Block) (BlockHit, bool) {
	if !b.Active {
		return BlockHit{}, false
	}
	bounds := b.Bounds()
	for _, blk := range blocks {
		if blk.Destroyed || !bounds.Intersects(blk.Bounds()) {
			continue
		}
		hit := blk.Damage(1)
		b.BounceOffBlock(blk.Bounds())
		return hit, true
	}
	return BlockHit{}, false
}

// collectUpgrades deactivates every upgrade touching the paddle and returns
// them in order.
func collectUpgrades(p *Paddle, upgrades []*Upgrade) []*Upgrade {
	var collected []*Upgrade
	bounds := p.Bounds()
	for _, u := range upgrades {
		if !u.Active || !bounds.Intersects(u.Bounds()) {
			continue
		}
		u.Active = false
		collected = append(collected, u)
	}
	return collected
}

// collideProjectiles lets each live projectile damage at most one block,
// the first live one it overlaps. A projectile that hits is consumed.
func collideProjectiles(projectiles []*Projectile, blocks []*Block) []BlockHit {
	var hits []BlockHit
	for _, p := range projectiles {
		if !p.Active {
			continue
		}
		bounds := p.Bounds()
		for _, blk := range blocks {
			if blk.Destroyed || !bounds.Intersects(blk.Bounds()) {
				continue
			}
			hits = append(hits, blk.Damage(1))
			p.Active = false
			break
		}
	}
	return hits
}
