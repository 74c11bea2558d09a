// Package sound plays the short effect heard when a block is collected.
package sound

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/particle-arcade/internal/config"
)

const chirpLength = 120 * time.Millisecond

// Player owns the speaker. A disabled or failed Player silently drops
// every request.
type Player struct {
	cfg    config.Audio
	format beep.Format
	clip   *beep.Buffer
	ready  bool
}

// New prepares the collect effect and initialises the speaker. With audio
// disabled it returns a silent Player and no error.
func New(cfg config.Audio) (*Player, error) {
	p := &Player{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
	if !cfg.Enabled {
		return p, nil
	}

	if cfg.CollectSound != "" {
		clip, err := LoadClip(cfg.CollectSound)
		if err != nil {
			return p, err
		}
		p.clip = clip
		p.format = clip.Format()
	}

	bufferSize := p.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(p.format.SampleRate, bufferSize); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	log.Printf("[sound] speaker ready at %d Hz", p.format.SampleRate)
	return p, nil
}

// LoadClip decodes a wav, mp3 or flac file fully into memory.
func LoadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported sound file type: " + ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}

// Enabled reports whether PlayCollect makes any sound.
func (p *Player) Enabled() bool {
	return p != nil && p.ready
}

// PlayCollect plays the collect effect. Without a custom clip the chirp's
// pitch rises with the block value.
func (p *Player) PlayCollect(value int) {
	if !p.Enabled() {
		return
	}
	var s beep.Streamer
	if p.clip != nil {
		s = p.clip.Streamer(0, p.clip.Len())
	} else {
		s = Chirp(p.format.SampleRate, value)
	}
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: p.cfg.Volume})
}

// Close stops everything still playing.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Clear()
	p.ready = false
}

// Chirp is a short rising, decaying sine tone.
func Chirp(sr beep.SampleRate, value int) beep.Streamer {
	total := sr.N(chirpLength)
	base := 440 + 4*float64(value)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			progress := float64(pos) / float64(total)
			freq := base * (1 + 0.5*progress)
			phase += 2 * math.Pi * freq / float64(sr)
			v := 0.4 * (1 - progress) * math.Sin(phase)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
