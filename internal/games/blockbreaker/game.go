// Package blockbreaker implements a single-player block breaker: a paddle
// bounces a ball into a field of blocks, destroyed blocks may drop
// upgrades, and a laser upgrade lets the paddle shoot.
package blockbreaker

import (
	"fmt"
	"time"

	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
	"github.com/vovakirdan/block-breaker/internal/registry"
)

// Game states
const (
	StateServe    = "serve"    // Ball resting on paddle, waiting for launch
	StateRunning  = "running"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No hearts left
	StateCleared  = "cleared"  // Every block destroyed
)

// ShootCooldown is the minimum wall-clock time between two laser volleys.
const ShootCooldown = 500 * time.Millisecond

// Minimum terminal size the renderer supports.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses the given tuning instead of loading it on Reset.
func WithConfig(cfg config.BlockBreakerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgFixed = true
	}
}

// WithClock replaces the wall clock used for frame deltas and the shoot
// cooldown.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// Game implements the block breaker logic.
type Game struct {
	stage Stage

	// Entities
	paddle      *Paddle
	ball        *Ball
	blocks      []*Block
	upgrades    []*Upgrade
	projectiles []*Projectile

	// Game state
	state       string
	pausedFrom  string
	score       int
	tickCount   int
	blocksTotal int
	lastFrame   time.Time
	lastShot    time.Time
	hasShot     bool
	canShoot    bool
	events      []core.Event

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BlockBreakerConfig
	cfgFixed   bool
	clock      core.Clock
	rng        *SimpleRNG
	difficulty *config.DifficultyManager

	screenTooSmall bool
}

// NewStage creates a game for a built-in or custom stage.
func NewStage(stage Stage, opts ...Option) *Game {
	g := &Game{
		stage: stage,
		clock: core.SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New creates a game for the built-in stage with the given ID.
func New(stageID string, opts ...Option) (*Game, error) {
	stage, ok := StageByID(stageID)
	if !ok {
		return nil, fmt.Errorf("blockbreaker: unknown stage %q", stageID)
	}
	return NewStage(stage, opts...), nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.stage.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Breaker: " + g.stage.Title
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgFixed {
		// Load game config
		cfg, err := config.LoadBlockBreaker(configPath)
		if err != nil {
			cfg = config.DefaultBlockBreakerConfig()
		}

		// Apply difficulty preset if set
		if difficultyPreset != "" {
			config.ApplyBlockBreakerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = NewSimpleRNG(runtime.Seed)
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.paddle = NewPaddle(g.cfg.Paddle, g.cfg.Gameplay.Hearts)
	g.blocks = g.stage.Blocks()
	g.blocksTotal = len(g.blocks)
	g.upgrades = g.upgrades[:0]
	g.projectiles = g.projectiles[:0]

	g.score = 0
	g.tickCount = 0
	g.ball = NewBall(g.cfg.Ball.Radius, g.ballSpeed(), g.rng)
	g.ball.RestOn(g.paddle)

	g.lastFrame = g.clock.Now()
	g.lastShot = time.Time{}
	g.hasShot = false
	g.canShoot = true
	g.events = nil
	g.state = StateServe
	g.pausedFrom = ""
}

// Resize records a new terminal size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	now := g.clock.Now()
	dt := g.frameDelta(now)

	if g.screenTooSmall {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateCleared) {
		g.Reset(g.runtime)
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.pausedFrom
		case StateServe, StateRunning:
			g.pausedFrom = g.state
			g.state = StatePaused
		}
	}

	// Don't update if paused or finished
	if g.state != StateServe && g.state != StateRunning {
		return g.result()
	}

	g.tickCount++

	// Space launches the ball and fires the lasers
	if in.Has(core.ActionFire) {
		if g.state == StateServe {
			g.ball.Launch()
			g.state = StateRunning
		}
		if g.cooldownReady(now) {
			g.shoot(now)
		}
	}

	ctx := &UpdateContext{DT: dt, Input: in, Paddle: g.paddle}
	for _, e := range g.entities() {
		e.Update(ctx)
	}

	collideBallPaddle(g.ball, g.paddle)
	if hit, ok := collideBallBlocks(g.ball, g.blocks); ok {
		g.onBlockHit(hit, "ball")
	}
	if g.ball.Lost {
		g.onMiss()
	}

	for _, u := range collectUpgrades(g.paddle, g.upgrades) {
		g.paddle.CollectItem(u.Type, g.cfg.Paddle)
		g.emit(core.Event{
			Kind:   core.EventUpgradeCollected,
			Pos:    u.Bounds().Center(),
			Detail: string(u.Type),
			Count:  len(g.paddle.Items),
		})
	}

	g.canShoot = g.cooldownReady(now)

	for _, hit := range collideProjectiles(g.projectiles, g.blocks) {
		g.onBlockHit(hit, "laser")
	}

	g.compact()

	if g.state == StateRunning && len(g.blocks) == 0 {
		g.state = StateCleared
		g.emit(core.Event{Kind: core.EventStageCleared, Count: g.score})
	}

	return g.result()
}

// frameDelta returns the seconds since the previous frame, clamped so that
// a stalled terminal does not teleport the ball through blocks.
func (g *Game) frameDelta(now time.Time) float64 {
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	maxDT := g.cfg.Gameplay.MaxFrameDelta
	if maxDT <= 0 {
		maxDT = 0.05
	}
	return core.ClampF(dt, 0, maxDT)
}

// entities lists everything updated and drawn each frame, paddle first so
// a resting ball follows the paddle's new position.
func (g *Game) entities() []Entity {
	out := make([]Entity, 0, 2+len(g.blocks)+len(g.upgrades)+len(g.projectiles))
	out = append(out, g.paddle, g.ball)
	for _, b := range g.blocks {
		out = append(out, b)
	}
	for _, u := range g.upgrades {
		out = append(out, u)
	}
	for _, p := range g.projectiles {
		out = append(out, p)
	}
	return out
}

// cooldownReady reports whether a volley may be fired at now.
func (g *Game) cooldownReady(now time.Time) bool {
	return !g.hasShot || now.Sub(g.lastShot) >= ShootCooldown
}

// shoot fires one projectile per laser barrel.
func (g *Game) shoot(now time.Time) {
	origins := g.paddle.LaserOrigins()
	if len(origins) == 0 {
		return
	}
	up := g.cfg.Upgrades
	for _, o := range origins {
		g.projectiles = append(g.projectiles,
			NewProjectile(o, up.ProjectileWidth, up.ProjectileHeight, up.ProjectileSpeed))
	}
	g.lastShot = now
	g.hasShot = true
	g.canShoot = false
	g.emit(core.Event{
		Kind:  core.EventShoot,
		Pos:   core.PointF{X: g.paddle.CenterX(), Y: g.paddle.Y},
		Count: len(origins),
	})
}

// onBlockHit scores a damaged block and rolls for an upgrade drop when it
// was destroyed.
func (g *Game) onBlockHit(hit BlockHit, source string) {
	g.emit(core.Event{Kind: core.EventBlockHit, Pos: hit.Center, Detail: source})
	if !hit.Destroyed {
		return
	}

	g.score += g.cfg.Gameplay.BlockPoints * hit.MaxHP
	g.emit(core.Event{
		Kind:   core.EventBlockDestroyed,
		Pos:    hit.Center,
		Detail: string(hit.Code),
		Count:  g.score,
	})

	if g.rng.Float64() < g.cfg.Upgrades.DropChance {
		kind := UpgradeKinds[g.rng.Intn(len(UpgradeKinds))]
		up := g.cfg.Upgrades
		g.upgrades = append(g.upgrades, NewUpgrade(kind, hit.Center, up.Width, up.Height, up.FallSpeed))
		g.emit(core.Event{Kind: core.EventUpgradeDropped, Pos: hit.Center, Detail: string(kind)})
	}

	g.ball.SetSpeed(g.ballSpeed())
}

// onMiss costs a heart. The ball restarts from the window center while
// hearts remain.
func (g *Game) onMiss() {
	gameOver := g.paddle.LoseLife()
	g.emit(core.Event{Kind: core.EventLifeLost, Count: g.paddle.Hearts})
	if gameOver {
		g.ball.Lost = false
		g.state = StateGameOver
		g.emit(core.Event{Kind: core.EventGameOver, Count: g.score})
		return
	}
	g.ball.Recenter(g.ballSpeed(), g.rng)
}

// compact drops destroyed blocks and spent upgrades and projectiles.
func (g *Game) compact() {
	g.blocks = compactAlive(g.blocks)
	g.upgrades = compactAlive(g.upgrades)
	g.projectiles = compactAlive(g.projectiles)
}

func compactAlive[T Entity](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Alive() {
			kept = append(kept, it)
		}
	}
	// Release references held past the new length
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

// ballSpeed returns the per-axis ball speed for the current score.
func (g *Game) ballSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Ball.Speed, g.cfg.Ball.MaxSpeed, g.score, g.tickCount)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	hearts := 0
	if g.paddle != nil {
		hearts = g.paddle.Hearts
	}
	return core.GameState{
		Score:    g.score,
		Hearts:   hearts,
		Stage:    g.stage.ID,
		Phase:    g.state,
		GameOver: g.state == StateGameOver || g.state == StateCleared,
		Won:      g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// Stage returns the stage being played.
func (g *Game) Stage() Stage {
	return g.stage
}

// Paddle returns the player's paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Blocks returns the live blocks in stage order.
func (g *Game) Blocks() []*Block {
	return g.blocks
}

// Upgrades returns the falling upgrades.
func (g *Game) Upgrades() []*Upgrade {
	return g.upgrades
}

// Projectiles returns the projectiles in flight.
func (g *Game) Projectiles() []*Projectile {
	return g.projectiles
}

// CanShoot reports whether the laser cooldown has elapsed as of the last
// frame.
func (g *Game) CanShoot() bool {
	return g.canShoot
}

// Register every built-in stage with the registry
func init() {
	for _, s := range builtinStages {
		registry.Register(s.ID, func() registry.Game {
			return NewStage(s)
		})
	}
}
