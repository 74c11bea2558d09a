package particles

import (
	"math"

	"github.com/iburimskiy/particle-arcade/internal/config"
	"github.com/iburimskiy/particle-arcade/internal/render"
)

// Connection links two distinct particles by index into the field's
// particle slice. It never owns them and is never mutated after creation.
type Connection struct {
	a, b        int
	maxDistance float64
}

func (c Connection) Endpoints() (int, int) {
	return c.a, c.b
}

func (c Connection) MaxDistance() float64 {
	return c.maxDistance
}

// Opacity returns the line opacity for two endpoints d apart, or 0 when the
// line is not drawn.
func (c Connection) Opacity(d, scale float64) float64 {
	if d >= c.maxDistance {
		return 0
	}
	return (1 - d/c.maxDistance) * scale
}

func (c Connection) draw(canvas render.Canvas, ps []Particle, cfg *config.Particles) {
	pa, pb := &ps[c.a], &ps[c.b]
	d := math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
	if d >= c.maxDistance {
		return
	}
	canvas.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, cfg.LineWidth, cfg.Color.WithAlpha(c.Opacity(d, cfg.ConnectionOpacity)))
}
