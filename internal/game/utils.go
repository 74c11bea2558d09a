package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// tint converts HSV to an opaque color (hue: 0-360, saturation: 0-1, value: 0-1)
func tint(h, s, v float64) color.RGBA {
	r, g, b := colorful.Hsv(math.Mod(h, 360), s, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// fade scales a color's alpha by a, keeping it premultiplied.
func fade(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
