// Package particles animates the ambient background: a set of drifting
// points joined by lines that fade in as their endpoints come close.
package particles

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-arcade/internal/config"
	"github.com/iburimskiy/particle-arcade/internal/host"
	"github.com/iburimskiy/particle-arcade/internal/render"
)

// Field owns the particles and connections and draws them once per frame.
// It starts animating as soon as it is constructed and runs until Destroy.
type Field struct {
	cfg     config.Particles
	surface render.Surface
	frames  host.Frames

	particles   []Particle
	connections []Connection

	resizeSub host.Subscription
	frameID   host.FrameID
	ticks     int
	destroyed bool
}

// New sizes surface to the current viewport, seeds the network and requests
// the first frame. rng may be nil.
func New(surface render.Surface, frames host.Frames, events *host.Events, cfg config.Particles, rng *rand.Rand) (*Field, error) {
	if surface == nil {
		return nil, fmt.Errorf("particle field: %w", render.ErrNoSurface)
	}
	if frames == nil || events == nil {
		return nil, fmt.Errorf("particle field: host scheduler and events are required")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f := &Field{
		cfg:     cfg,
		surface: surface,
		frames:  frames,
	}
	f.resize(events.Viewport())
	f.seed(rng)

	f.resizeSub = events.OnResize(f.resize)
	f.frameID = frames.Request(f.animate)
	return f, nil
}

func (f *Field) resize(v host.Viewport) {
	f.surface.Resize(v.Pixels())
}

func (f *Field) seed(rng *rand.Rand) {
	w, h := f.surface.Size()
	count := int(float64(w) / f.cfg.Spacing)

	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       rng.Float64() * float64(w),
			Y:       rng.Float64() * float64(h),
			Radius:  f.cfg.Radius.Lerp(rng.Float64()),
			Speed:   f.cfg.Speed.Lerp(rng.Float64()),
			Heading: rng.Float64() * 2 * math.Pi,
			Color:   f.cfg.Color,
			Opacity: f.cfg.Opacity.Lerp(rng.Float64()),
		}
	}

	span := f.cfg.ConnectionsMax - f.cfg.ConnectionsMin + 1
	f.connections = f.connections[:0]
	for i := range f.particles {
		n := f.cfg.ConnectionsMin + rng.IntN(span)
		for range n {
			// self-links are dropped, not redrawn
			target := rng.IntN(count)
			if target != i {
				f.connections = append(f.connections, Connection{
					a:           i,
					b:           target,
					maxDistance: f.cfg.ConnectionDistance,
				})
			}
		}
	}
}

func (f *Field) animate(time.Duration) {
	if f.destroyed {
		return
	}
	f.Step()
	f.frameID = f.frames.Request(f.animate)
}

// Step clears the surface, advances every particle and draws the network.
func (f *Field) Step() {
	w, h := f.surface.Size()
	f.surface.Clear()

	for i := range f.particles {
		p := &f.particles[i]
		p.Step(float64(w), float64(h))
		p.Draw(f.surface)
	}
	for _, c := range f.connections {
		c.draw(f.surface, f.particles, &f.cfg)
	}
	f.ticks++
}

// Destroy stops the animation and detaches from window events. It is safe
// to call more than once.
func (f *Field) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.frames.Cancel(f.frameID)
	f.resizeSub.Cancel()
}

func (f *Field) Destroyed() bool {
	return f.destroyed
}

// Particles exposes the live particles. Callers must not retain the slice
// across frames.
func (f *Field) Particles() []Particle {
	return f.particles
}

func (f *Field) Connections() []Connection {
	return f.connections
}

// Ticks counts completed frames.
func (f *Field) Ticks() int {
	return f.ticks
}

func (f *Field) Surface() render.Surface {
	return f.surface
}
