package game

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	popupDuration = 0.9 // seconds
	popupRise     = 40  // unscaled pixels
)

// popup is a floating "+value" label that drifts up and fades out over a
// collected block.
type popup struct {
	text   string
	x, y   float64
	col    color.RGBA
	rise   *gween.Tween
	fade   *gween.Tween
	offset float64
	alpha  float64
	done   bool
}

func newPopup(text string, x, y, scale float64, col color.RGBA) *popup {
	return &popup{
		text:  text,
		x:     x,
		y:     y,
		col:   col,
		rise:  gween.New(0, float32(-popupRise*scale), popupDuration, ease.OutQuad),
		fade:  gween.New(1, 0, popupDuration, ease.InQuad),
		alpha: 1,
	}
}

func (p *popup) update(dt float32) {
	off, _ := p.rise.Update(dt)
	a, finished := p.fade.Update(dt)
	p.offset = float64(off)
	p.alpha = clamp01(float64(a))
	p.done = finished
}

// updatePopups advances every popup and drops the finished ones in place.
func updatePopups(ps []*popup, dt float32) []*popup {
	live := ps[:0]
	for _, p := range ps {
		p.update(dt)
		if !p.done {
			live = append(live, p)
		}
	}
	clear(ps[len(live):])
	return live
}
