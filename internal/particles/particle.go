package particles

import (
	"math"

	"github.com/iburimskiy/particle-arcade/internal/config"
	"github.com/iburimskiy/particle-arcade/internal/render"
)

// Particle is one moving point of the network.
type Particle struct {
	X, Y    float64
	Radius  float64
	Speed   float64 // units per frame
	Heading float64 // radians
	Color   config.Color
	Opacity float64
}

// Step advances the particle one frame inside a w×h surface, bouncing off
// the edges and clamping its position back into bounds.
func (p *Particle) Step(w, h float64) {
	p.X += math.Cos(p.Heading) * p.Speed
	p.Y += math.Sin(p.Heading) * p.Speed

	if p.X <= 0 || p.X >= w {
		p.Heading = math.Pi - p.Heading
	}
	if p.Y <= 0 || p.Y >= h {
		p.Heading = -p.Heading
	}

	p.X = clamp(p.X, 0, w)
	p.Y = clamp(p.Y, 0, h)
}

// Alpha is the fill alpha: the opacity factor read as a percentage of full
// alpha, so a factor of 0.8 yields 80/255.
func (p *Particle) Alpha() float64 {
	return math.Floor(p.Opacity*100) / 255
}

func (p *Particle) Draw(c render.Canvas) {
	c.FillCircle(p.X, p.Y, p.Radius, p.Color.WithAlpha(p.Alpha()))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
