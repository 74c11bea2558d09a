// Package render defines the 2D drawing surface the simulations paint into
// and provides an Ebitengine implementation plus a recording one.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrNoSurface reports a component constructed without a usable drawing surface.
var ErrNoSurface = errors.New("no drawing surface")

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is an immediate-mode 2D raster target. Coordinates are surface pixels.
type Canvas interface {
	Size() (w, h int)
	Clear()
	Fill(c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	// DrawImage draws img scaled into the square of half-extent half centred
	// on (cx, cy), rotated by angle radians around that centre.
	DrawImage(img image.Image, cx, cy, half, angle float64)
	// Text draws s with its top edge at y. x is the left, centre or right
	// edge depending on align.
	Text(s string, x, y, size float64, align Align, c color.Color)
}

// Surface is a Canvas the owner can resize and release.
type Surface interface {
	Canvas
	Resize(w, h int)
	Dispose()
}

// Factory allocates a surface of the given pixel size.
type Factory func(w, h int) Surface
