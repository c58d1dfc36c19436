package blockbreaker

import "math"

// Snapshot captures the simulation state for determinism checks and
// debugging. Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Hearts     int
	Items      int
	Lasers     int
	PaddleX    float64
	PaddleW    float64
	PaddleV    float64
	BallX      float64
	BallY      float64
	BallDX     float64
	BallDY     float64
	BallActive bool

	// Live blocks, 1 int each: remaining HP
	BlockHP []int

	// Falling upgrades, 2 values each: kind index, Y
	UpgradeData []float64

	// Projectiles in flight, 2 values each: X, Y
	ProjectileData []float64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockHP := make([]int, len(g.blocks))
	for i, b := range g.blocks {
		blockHP[i] = b.HP
	}

	upgradeData := make([]float64, 0, len(g.upgrades)*2)
	for _, u := range g.upgrades {
		upgradeData = append(upgradeData, float64(upgradeIndex(u.Type)), u.Y)
	}

	projectileData := make([]float64, 0, len(g.projectiles)*2)
	for _, p := range g.projectiles {
		projectileData = append(projectileData, p.X, p.Y)
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Score:      g.score,
		Hearts:     g.paddle.Hearts,
		Items:      len(g.paddle.Items),
		Lasers:     g.paddle.Lasers,
		PaddleX:    g.paddle.X,
		PaddleW:    g.paddle.Width,
		PaddleV:    g.paddle.Speed,
		BallX:      g.ball.X,
		BallY:      g.ball.Y,
		BallDX:     g.ball.DX,
		BallDY:     g.ball.DY,
		BallActive: g.ball.Active,

		BlockHP:        blockHP,
		UpgradeData:    upgradeData,
		ProjectileData: projectileData,
		RNGState:       g.rng.State(),
	}
}

func upgradeIndex(k UpgradeKind) int {
	for i, kind := range UpgradeKinds {
		if kind == k {
			return i
		}
	}
	return -1
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hearts) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Items)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lasers) //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.PaddleX, snap.PaddleW, snap.PaddleV,
		snap.BallX, snap.BallY, snap.BallDX, snap.BallDY,
	} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.BallActive {
		h = h*31 + 1
	}

	for _, v := range snap.BlockHP {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range snap.UpgradeData {
		h = h*31 + math.Float64bits(f)
	}
	for _, f := range snap.ProjectileData {
		h = h*31 + math.Float64bits(f)
	}

	return h*31 + snap.RNGState
}
