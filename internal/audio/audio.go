// Package audio plays the game's sound effects and background music
// through the beep speaker.
package audio

import (
	"github.com/vovakirdan/block-breaker/internal/core"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundLaser Sound = iota
	SoundLaserHit
	SoundPowerup
)

// String returns the sound name, which is also its asset file stem.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundLaserHit:
		return "laser_hit"
	case SoundPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// Effects lists every sound effect.
var Effects = []Sound{SoundLaser, SoundLaserHit, SoundPowerup}

// musicName is the asset file stem of the background track.
const musicName = "music"

// Player plays sounds. Implementations never block the game loop.
type Player interface {
	Play(s Sound)
	StartMusic()
	Close()
}

// SoundFor maps a game event to the effect it triggers, if any.
func SoundFor(e core.Event) (Sound, bool) {
	switch e.Kind {
	case core.EventShoot:
		return SoundLaser, true
	case core.EventBlockHit:
		if e.Detail == "laser" {
			return SoundLaserHit, true
		}
	case core.EventUpgradeCollected:
		return SoundPowerup, true
	}
	return 0, false
}

// Silent is a Player that does nothing. Used with --mute, over SSH and
// when no audio device is available.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Sound) {}

// StartMusic implements Player.
func (Silent) StartMusic() {}

// Close implements Player.
func (Silent) Close() {}
