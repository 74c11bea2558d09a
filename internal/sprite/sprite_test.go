package sprite

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func waitDone(t *testing.T, s *Sprite) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("sprite load did not finish")
	}
}

func TestLoadSucceedsAfterPoll(t *testing.T) {
	fsys := fstest.MapFS{"qubic.png": {Data: pngBytes(t, 8, 4)}}
	s := Load(fsys, "qubic.png")

	waitDone(t, s)
	if _, ok := s.Image(); ok {
		t.Fatal("Image() ok before Poll, want completion consumed by the frame loop")
	}

	s.Poll()
	img, ok := s.Image()
	if !ok {
		t.Fatalf("Image() ok = false after Poll, err = %v", s.Err())
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 8x4", b)
	}
	if s.Failed() {
		t.Error("Failed() = true")
	}
	if s.Name() != "qubic.png" {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestLoadFailures(t *testing.T) {
	fsys := fstest.MapFS{"broken.png": {Data: []byte("not an image")}}

	tests := []struct {
		name string
		file string
	}{
		{"missing file", "missing.png"},
		{"undecodable", "broken.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Load(fsys, tt.file)
			waitDone(t, s)
			s.Poll()
			if !s.Failed() {
				t.Error("Failed() = false, want true")
			}
			if s.Err() == nil {
				t.Error("Err() = nil")
			}
			if _, ok := s.Image(); ok {
				t.Error("Image() ok = true for failed sprite")
			}
			// a failed sprite is never retried
			s.Poll()
			if !s.Failed() {
				t.Error("state changed on second Poll")
			}
		})
	}
}

func TestNilFS(t *testing.T) {
	s := Load(nil, "x.png")
	waitDone(t, s)
	s.Poll()
	if !s.Failed() {
		t.Error("Failed() = false for nil fs")
	}
}

func TestNilSprite(t *testing.T) {
	var s *Sprite
	s.Poll()
	if _, ok := s.Image(); ok {
		t.Error("nil sprite reported loaded")
	}
	if s.Failed() || s.Err() != nil || s.Name() != "" {
		t.Error("nil sprite accessors should be zero")
	}
}
