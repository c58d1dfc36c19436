package core

// EventKind identifies something that happened during a tick.
// The platform maps events to sounds, log lines and persisted stats.
type EventKind int

const (
	EventShoot EventKind = iota
	EventBlockHit
	EventBlockDestroyed
	EventUpgradeDropped
	EventUpgradeCollected
	EventLifeLost
	EventGameOver
	EventStageCleared
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "shoot"
	case EventBlockHit:
		return "block_hit"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventUpgradeDropped:
		return "upgrade_dropped"
	case EventUpgradeCollected:
		return "upgrade_collected"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventStageCleared:
		return "stage_cleared"
	default:
		return "unknown"
	}
}

// Event is a single gameplay occurrence.
type Event struct {
	Kind   EventKind
	Pos    PointF // World position, when meaningful
	Detail string // Upgrade kind, block code, etc.
	Count  int    // Projectiles fired, hearts left, etc.
}
