package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

const labelFaceSize = 13

// ImageSurface draws into an offscreen Ebitengine image.
type ImageSurface struct {
	w, h  int
	img   *ebiten.Image
	cache map[image.Image]*ebiten.Image
}

func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{cache: map[image.Image]*ebiten.Image{}}
	s.Resize(w, h)
	return s
}

// ImageFactory is a Factory producing ImageSurfaces.
func ImageFactory(w, h int) Surface {
	return NewImageSurface(w, h)
}

// Image exposes the backing image for blitting; nil after Dispose.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

func (s *ImageSurface) Size() (int, int) {
	return s.w, s.h
}

// Resize reallocates the backing image, dropping its contents.
func (s *ImageSurface) Resize(w, h int) {
	if s.img != nil && w == s.w && h == s.h {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.w, s.h = w, h
	// ebiten images cannot be empty
	s.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (s *ImageSurface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	for k, img := range s.cache {
		img.Deallocate()
		delete(s.cache, k)
	}
}

func (s *ImageSurface) Clear() {
	if s.img == nil {
		return
	}
	s.img.Clear()
}

func (s *ImageSurface) Fill(c color.Color) {
	if s.img == nil {
		return
	}
	s.img.Fill(c)
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *ImageSurface) DrawImage(img image.Image, cx, cy, half, angle float64) {
	if s.img == nil || img == nil {
		return
	}
	src := s.lookup(img)
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(2*half/float64(b.Dx()), 2*half/float64(b.Dy()))
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(src, op)
}

func (s *ImageSurface) Text(str string, x, y, size float64, align Align, c color.Color) {
	if s.img == nil {
		return
	}
	DrawLabel(s.img, str, x, y, size, align, c)
}

// DrawLabel draws str onto dst with its top edge at y, scaled to size pixels.
func DrawLabel(dst *ebiten.Image, str string, x, y, size float64, align Align, c color.Color) {
	scale := size / labelFaceSize
	op := &text.DrawOptions{}
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, str, labelFace, op)
}

// lookup converts decoded images to GPU images once per surface.
func (s *ImageSurface) lookup(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := s.cache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	s.cache[img] = e
	return e
}

// Blit draws a mounted surface onto dst with its top-left corner at (x, y),
// magnified by scale. Surfaces other than ImageSurface have nothing to show
// and are skipped.
func Blit(dst *ebiten.Image, surface any, x, y, scale float64) {
	s, ok := surface.(*ImageSurface)
	if !ok || s.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if scale > 0 && scale != 1 {
		op.GeoM.Scale(scale, scale)
		op.Filter = ebiten.FilterLinear
	}
	op.GeoM.Translate(x, y)
	dst.DrawImage(s.img, op)
}
