package arcade

import (
	"math"

	"github.com/iburimskiy/particle-arcade/internal/config"
)

// Vec is a 2D direction or offset.
type Vec struct {
	X, Y float64
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle is the rotation that points +X along v.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Collector is the player-controlled entity. Size is its radius.
type Collector struct {
	X, Y  float64
	Size  float64
	Dir   Vec
	Speed float64 // units per second
	Color config.Color
}

// Block is a collectible worth Value points.
type Block struct {
	X, Y  float64
	Size  float64
	Color config.Color
	Value int
}

// Touches reports whether the collector's circle reaches the block's
// half-size disc.
func (c Collector) Touches(b Block) bool {
	return math.Hypot(c.X-b.X, c.Y-b.Y) < c.Size+b.Size/2
}

// Collect describes one consumed block.
type Collect struct {
	Value int
	X, Y  float64
	Score int // score after the block was added
}
