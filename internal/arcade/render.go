package arcade

import (
	"fmt"

	"github.com/iburimskiy/particle-arcade/internal/render"
)

const (
	scoreTextSize = 16
	epochTextSize = 14
	labelInset    = 10
)

// render repaints the whole arena. Sprites that have not finished loading
// are skipped.
func (g *Game) render() {
	g.collectorSprite.Poll()
	g.blockSprite.Poll()

	c := g.surface
	w, h := c.Size()
	fw, fh := float64(w), float64(h)

	c.Fill(g.cfg.Background)
	for x := 0.0; x < fw; x += g.cfg.GridSpacing {
		c.StrokeLine(x, 0, x, fh, 1, g.cfg.Grid)
	}
	for y := 0.0; y < fh; y += g.cfg.GridSpacing {
		c.StrokeLine(0, y, fw, y, 1, g.cfg.Grid)
	}

	if img, ok := g.blockSprite.Image(); ok {
		for _, b := range g.blocks {
			c.DrawImage(img, b.X, b.Y, b.Size, 0)
		}
	}

	if img, ok := g.collectorSprite.Image(); ok {
		col := g.collector
		angle := 0.0
		if !col.Dir.IsZero() {
			angle = col.Dir.Angle()
		}
		c.DrawImage(img, col.X, col.Y, col.Size, angle)
	}

	c.Text(fmt.Sprintf("Score: %d", g.score), labelInset, labelInset, scoreTextSize, render.AlignLeft, g.cfg.Score)
	c.Text(fmt.Sprintf("Epoch: %d", g.cfg.Epoch), fw-labelInset, labelInset, epochTextSize, render.AlignRight, g.cfg.EpochLabel)
}
