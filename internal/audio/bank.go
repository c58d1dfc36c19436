package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the output rate of the speaker. Loaded files are resampled
// to it.
const SampleRate = beep.SampleRate(44100)

var outputFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Bank holds decoded effects and the music track in memory.
type Bank struct {
	effects map[Sound]*beep.Buffer
	music   *beep.Buffer
}

// Effect returns the buffer for s, or nil.
func (b *Bank) Effect(s Sound) *beep.Buffer {
	return b.effects[s]
}

// Music returns the background track buffer.
func (b *Bank) Music() *beep.Buffer {
	return b.music
}

// LoadBank decodes <name>.wav for every effect plus music.wav from dir.
// A missing or undecodable file is an error.
func LoadBank(dir string) (*Bank, error) {
	bank := &Bank{effects: make(map[Sound]*beep.Buffer, len(Effects))}
	for _, s := range Effects {
		buf, err := loadWAV(filepath.Join(dir, s.String()+".wav"))
		if err != nil {
			return nil, err
		}
		bank.effects[s] = buf
	}
	music, err := loadWAV(filepath.Join(dir, musicName+".wav"))
	if err != nil {
		return nil, err
	}
	bank.music = music
	return bank, nil
}

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}

	buf := beep.NewBuffer(outputFormat)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return buf, nil
}

// SynthBank renders the built-in effects and music.
func SynthBank() (*Bank, error) {
	laser, err := render(sweep(1400, 300, 140*time.Millisecond))
	if err != nil {
		return nil, err
	}
	hit, err := render(noiseBurst(90 * time.Millisecond))
	if err != nil {
		return nil, err
	}
	powerup, err := render(arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 60*time.Millisecond))
	if err != nil {
		return nil, err
	}
	music, err := render(bassLine())
	if err != nil {
		return nil, err
	}

	return &Bank{
		effects: map[Sound]*beep.Buffer{
			SoundLaser:    laser,
			SoundLaserHit: hit,
			SoundPowerup:  powerup,
		},
		music: music,
	}, nil
}

func render(s beep.Streamer, err error) (*beep.Buffer, error) {
	if err != nil {
		return nil, fmt.Errorf("audio: synthesize: %w", err)
	}
	buf := beep.NewBuffer(outputFormat)
	buf.Append(s)
	return buf, nil
}

// tone is a sine tone of fixed length with a short fade out.
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, err
	}
	n := SampleRate.N(d)
	return fade(beep.Take(n, sine), n), nil
}

// arpeggio plays the notes one after another.
func arpeggio(notes []float64, each time.Duration) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		t, err := tone(f, each)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return beep.Seq(parts...), nil
}

// bassLine is a short loopable minor riff.
func bassLine() (beep.Streamer, error) {
	notes := []float64{110, 110, 130.81, 146.83, 110, 110, 98, 103.83}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		t, err := tone(f, 300*time.Millisecond)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return beep.Seq(parts...), nil
}

// sweep glides a square-ish wave from one frequency to another.
func sweep(from, to float64, d time.Duration) (beep.Streamer, error) {
	total := SampleRate.N(d)
	phase := 0.0
	pos := 0
	return fade(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			freq := from + (to-from)*float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*phase) + 0.3*math.Sin(6*math.Pi*phase)
			samples[i][0] = 0.6 * v
			samples[i][1] = 0.6 * v
			phase += freq / float64(SampleRate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	}), total), nil
}

// noiseBurst is decaying white noise from a fixed-seed generator, so the
// rendered effect is identical on every run.
func noiseBurst(d time.Duration) (beep.Streamer, error) {
	total := SampleRate.N(d)
	seed := uint32(0x9e3779b9)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			noise := float64(seed)/float64(math.MaxUint32)*2 - 1
			t := float64(pos) / float64(SampleRate)
			v := math.Exp(-t*40) * noise
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}), nil
}

// fade applies a linear release over the last fifth of total samples.
func fade(s beep.Streamer, total int) beep.Streamer {
	release := max(total/5, 1)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range n {
			if left := total - pos; left < release {
				vol := float64(left) / float64(release)
				samples[i][0] *= vol
				samples[i][1] *= vol
			}
			pos++
		}
		return n, ok
	})
}
