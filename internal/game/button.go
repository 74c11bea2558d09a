package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-arcade/internal/render"
)

type button struct {
	label   string
	primary bool
	action  func()

	hovered bool
	pressed bool
}

func (b *button) background() color.Color {
	switch {
	case b.pressed:
		return color.RGBA{R: 55, G: 65, B: 81, A: 255} // Pressed
	case b.primary && b.hovered:
		return color.RGBA{R: 8, G: 145, B: 178, A: 255}
	case b.primary:
		return color.RGBA{R: 6, G: 182, B: 212, A: 255}
	case b.hovered:
		return color.RGBA{R: 55, G: 65, B: 81, A: 255} // Hovered
	default:
		return color.RGBA{R: 31, G: 41, B: 55, A: 255} // Normal
	}
}

func (b *button) draw(screen *ebiten.Image, r image.Rectangle, scale float64) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.background(), false)

	// Button border
	borderColor := color.RGBA{R: 75, G: 85, B: 99, A: 255}
	if b.primary {
		borderColor = color.RGBA{R: 37, G: 99, B: 235, A: 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)

	// Button text
	textColor := color.RGBA{R: 209, G: 213, B: 219, A: 255}
	if b.primary {
		textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	size := 14 * scale
	cx := float64(r.Min.X) + float64(r.Dx())/2
	cy := float64(r.Min.Y) + (float64(r.Dy())-size)/2
	render.DrawLabel(screen, b.label, cx, cy, size, render.AlignCenter, textColor)
}
