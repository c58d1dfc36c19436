package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Volumes per sound, relative to full scale.
var volumes = map[Sound]float64{
	SoundLaser:    0.1,
	SoundLaserHit: 0.02,
	SoundPowerup:  0.1,
}

const musicVolume = 0.1

// Engine plays a Bank through the system speaker. All sounds share one
// mixer so overlapping effects never cut each other off.
type Engine struct {
	mu     sync.Mutex
	bank   *Bank
	mixer  *beep.Mixer
	music  *beep.Ctrl
	closed bool
}

// NewEngine opens the speaker and starts an empty mixer on it.
func NewEngine(bank *Bank) (*Engine, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	e := &Engine{
		bank:  bank,
		mixer: &beep.Mixer{},
	}
	speaker.Play(e.mixer)
	return e, nil
}

// Play implements Player.
func (e *Engine) Play(s Sound) {
	e.mu.Lock()
	defer e.mu.Unlock()

	buf := e.bank.Effect(s)
	if e.closed || buf == nil {
		return
	}

	speaker.Lock()
	e.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), volumes[s]))
	speaker.Unlock()
}

// StartMusic implements Player. The track loops until Close.
func (e *Engine) StartMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	buf := e.bank.Music()
	if e.closed || buf == nil || e.music != nil || buf.Len() == 0 {
		return
	}

	e.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	speaker.Lock()
	e.mixer.Add(withVolume(e.music, musicVolume))
	speaker.Unlock()
}

// Close implements Player.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true

	speaker.Lock()
	if e.music != nil {
		e.music.Paused = true
	}
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// withVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so zero volume becomes silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ErrNoDevice wraps speaker initialization failures. Open still returns a
// usable Silent player alongside it.
var ErrNoDevice = errors.New("audio: no output device")

// Options selects the audio source.
type Options struct {
	Mute      bool
	SoundsDir string // Load WAV files from here instead of synthesizing
}

// Open builds the player described by opts. Unreadable sound files are a
// hard error; a missing audio device returns Silent with ErrNoDevice.
func Open(opts Options) (Player, error) {
	if opts.Mute {
		return Silent{}, nil
	}

	var (
		bank *Bank
		err  error
	)
	if opts.SoundsDir != "" {
		bank, err = LoadBank(opts.SoundsDir)
	} else {
		bank, err = SynthBank()
	}
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(bank)
	if err != nil {
		return Silent{}, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	return engine, nil
}
