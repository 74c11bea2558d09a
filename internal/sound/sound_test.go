package sound

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/particle-arcade/internal/config"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestChirpLengthAndLevel(t *testing.T) {
	sr := beep.SampleRate(44100)
	n, peak := drain(Chirp(sr, 100))
	if want := sr.N(chirpLength); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
	if peak == 0 || peak > 0.4 {
		t.Errorf("peak = %v, want (0, 0.4]", peak)
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Enabled() {
		t.Error("Enabled() = true for disabled audio")
	}
	p.PlayCollect(75)
	p.Close()

	var nilPlayer *Player
	nilPlayer.PlayCollect(1)
	nilPlayer.Close()
}

func TestLoadClipWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collect.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, Chirp(format.SampleRate, 50), format); err != nil {
		t.Fatal(err)
	}
	f.Close()

	clip, err := LoadClip(path)
	if err != nil {
		t.Fatalf("LoadClip() error = %v", err)
	}
	if want := format.SampleRate.N(chirpLength); clip.Len() != want {
		t.Errorf("Len() = %d, want %d", clip.Len(), want)
	}
	if clip.Format().SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", clip.Format().SampleRate)
	}
}

func TestLoadClipErrors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "collect.ogg")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(bad, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{txt, bad, filepath.Join(dir, "missing.wav")} {
		if _, err := LoadClip(path); err == nil {
			t.Errorf("LoadClip(%s) error = nil", filepath.Base(path))
		}
	}
}
