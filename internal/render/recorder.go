package render

import (
	"image"
	"image/color"
)

type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpCircle
	OpLine
	OpImage
	OpText
)

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	R              float64 // circle radius, line width, image half-extent or text size
	Angle          float64
	Color          color.Color
	Image          image.Image
	Text           string
	Align          Align
}

// Recorder is a Surface that remembers what was drawn instead of rasterizing
// it. It backs headless runs and tests.
type Recorder struct {
	W, H     int
	Ops      []Op
	Disposed bool
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// RecorderFactory is a Factory producing Recorders.
func RecorderFactory(w, h int) Surface {
	return NewRecorder(w, h)
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Resize(w, h int) {
	r.W, r.H = w, h
}

func (r *Recorder) Dispose() {
	r.Disposed = true
	r.Ops = nil
}

// Clear also drops previously recorded ops, so Ops always holds the latest frame.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

// Fill paints the whole surface, so it also starts a new frame like Clear.
func (r *Recorder) Fill(c color.Color) {
	r.Ops = append(r.Ops[:0], Op{Kind: OpFill, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: cx, Y0: cy, R: rad, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, R: width, Color: c})
}

func (r *Recorder) DrawImage(img image.Image, cx, cy, half, angle float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X0: cx, Y0: cy, R: half, Angle: angle, Image: img})
}

func (r *Recorder) Text(s string, x, y, size float64, align Align, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X0: x, Y0: y, R: size, Text: s, Align: align, Color: c})
}

// Count returns how many recorded ops are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Find returns the recorded ops of kind k.
func (r *Recorder) Find(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}
