// Package sprite loads images in the background so a frame loop never waits
// on disk. Completion is picked up by polling from the loop itself.
package sprite

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
)

type state int

const (
	loading state = iota
	loaded
	failed
)

type result struct {
	img image.Image
	err error
}

// Sprite is an image that becomes available some frames after Load.
// All methods except Done must be called from the frame loop goroutine.
type Sprite struct {
	name  string
	state state
	img   image.Image
	err   error
	ready chan result
	done  chan struct{}
}

// Load starts decoding name from fsys and returns immediately.
func Load(fsys fs.FS, name string) *Sprite {
	s := &Sprite{
		name:  name,
		ready: make(chan result, 1),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		img, err := decode(fsys, name)
		s.ready <- result{img: img, err: err}
	}()
	return s
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("sprite %s: no file system", name)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return img, nil
}

// Poll consumes a finished load without blocking. Failures are logged once
// and the sprite stays unloaded; there is no retry.
func (s *Sprite) Poll() {
	if s == nil || s.state != loading {
		return
	}
	select {
	case r := <-s.ready:
		if r.err != nil {
			s.state = failed
			s.err = r.err
			log.Printf("[sprite] %v", r.err)
			return
		}
		s.state = loaded
		s.img = r.img
	default:
	}
}

// Image returns the decoded image once a Poll has observed it.
func (s *Sprite) Image() (image.Image, bool) {
	if s == nil || s.state != loaded {
		return nil, false
	}
	return s.img, true
}

func (s *Sprite) Failed() bool {
	return s != nil && s.state == failed
}

func (s *Sprite) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

func (s *Sprite) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Done is closed when the background decode has finished, successfully or not.
func (s *Sprite) Done() <-chan struct{} {
	return s.done
}
