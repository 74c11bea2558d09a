package game

import (
	"image"
	"math"
)

const (
	// Unscaled dimensions; multiplied by the device scale factor.
	maxArenaWidth = 896
	pagePadding   = 24
	buttonHeight  = 40
	buttonGap     = 16
	statusGap     = 20
	statusHeight  = 16

	buttonCount = 4
)

// layout is the placement of everything the host draws, in screen pixels.
type layout struct {
	arena   image.Rectangle
	buttons [buttonCount]image.Rectangle
	status  image.Rectangle
}

// computeLayout centres a 16:9 arena with the button row and status line
// beneath it, shrinking the arena until the whole block fits the window.
func computeLayout(w, h int, scale float64) layout {
	px := func(v float64) int { return int(v * scale) }

	pad := px(pagePadding)
	below := px(buttonGap + buttonHeight + statusGap + statusHeight)

	arenaW := min(w-2*pad, px(maxArenaWidth))
	arenaH := arenaW * 9 / 16
	if maxH := h - 2*pad - below; arenaH > maxH {
		arenaH = maxH
		arenaW = arenaH * 16 / 9
	}
	arenaW, arenaH = max(arenaW, 0), max(arenaH, 0)

	left := (w - arenaW) / 2
	top := max((h-arenaH-below)/2, 0)

	var l layout
	l.arena = image.Rect(left, top, left+arenaW, top+arenaH)

	gap := px(buttonGap)
	btnW := max((arenaW-(buttonCount-1)*gap)/buttonCount, 0)
	btnTop := l.arena.Max.Y + gap
	for i := range l.buttons {
		x := left + i*(btnW+gap)
		l.buttons[i] = image.Rect(x, btnTop, x+btnW, btnTop+px(buttonHeight))
	}

	statusTop := btnTop + px(buttonHeight+statusGap)
	l.status = image.Rect(left, statusTop, left+arenaW, statusTop+px(statusHeight))
	return l
}

// buttonAt returns the index of the button under (x, y), or -1.
func (l layout) buttonAt(x, y int) int {
	p := image.Pt(x, y)
	for i, r := range l.buttons {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// logical converts a rectangle in screen pixels to device-independent units,
// the space the arcade simulates in.
func logical(r image.Rectangle, scale float64) image.Rectangle {
	if scale <= 0 {
		scale = 1
	}
	unit := func(v int) int { return int(math.Round(float64(v) / scale)) }
	return image.Rect(unit(r.Min.X), unit(r.Min.Y), unit(r.Max.X), unit(r.Max.Y))
}
