// Package arcade implements the block collector mini-game: a collector
// steered with the arrow keys eats reward blocks scattered over an arena.
package arcade

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-arcade/internal/config"
	"github.com/iburimskiy/particle-arcade/internal/host"
	"github.com/iburimskiy/particle-arcade/internal/render"
	"github.com/iburimskiy/particle-arcade/internal/sprite"
)

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options wires a Game into its host.
type Options struct {
	Config     config.Arcade
	Frames     host.Frames
	Events     *host.Events
	Container  *host.Container
	NewSurface render.Factory

	// Sprites holds Config.CollectorSprite and Config.BlockSprite. A nil FS
	// leaves both sprites unrendered.
	Sprites fs.FS
	Rand    *rand.Rand

	// OnCollect, when set, is called for every consumed block.
	OnCollect func(Collect)
	// Logger receives lifecycle messages. Nil disables them.
	Logger *log.Logger
}

// Game is one session of the block collector. It is driven entirely by the
// host's frame scheduler and must be used from that goroutine only.
type Game struct {
	cfg       config.Arcade
	frames    host.Frames
	container *host.Container
	surface   render.Surface
	subs      []host.Subscription
	rng       *rand.Rand
	onCollect func(Collect)
	logger    *log.Logger

	collectorSprite *sprite.Sprite
	blockSprite     *sprite.Sprite

	collector Collector
	blocks    []Block
	score     int
	highScore int

	state     State
	frameID   host.FrameID
	lastTS    time.Duration
	haveLast  bool
	played    time.Duration
	destroyed bool
}

// New mounts a surface sized to the container, starts loading the sprites,
// seeds the blocks and renders once. The game starts Idle.
func New(opts Options) (*Game, error) {
	if opts.Container == nil || opts.NewSurface == nil {
		return nil, fmt.Errorf("arcade: %w", render.ErrNoSurface)
	}
	if opts.Frames == nil || opts.Events == nil {
		return nil, errors.New("arcade: host scheduler and events are required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("arcade: %w", err)
	}

	surface := opts.NewSurface(opts.Container.Size())
	if surface == nil {
		return nil, fmt.Errorf("arcade: %w", render.ErrNoSurface)
	}
	opts.Container.Append(surface)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g := &Game{
		cfg:       opts.Config,
		frames:    opts.Frames,
		container: opts.Container,
		surface:   surface,
		rng:       rng,
		onCollect: opts.OnCollect,
		logger:    opts.Logger,

		collectorSprite: sprite.Load(opts.Sprites, opts.Config.CollectorSprite),
		blockSprite:     sprite.Load(opts.Sprites, opts.Config.BlockSprite),
	}
	g.resetCollector()
	g.generateBlocks(g.cfg.BlockCount)

	g.subs = append(g.subs,
		opts.Events.OnResize(g.handleResize),
		opts.Events.OnKeyDown(g.handleKeyDown),
	)

	g.render()
	return g, nil
}

func (g *Game) resetCollector() {
	w, h := g.surface.Size()
	g.collector = Collector{
		X:     float64(w) / 2,
		Y:     float64(h) / 2,
		Size:  g.cfg.CollectorSize,
		Speed: g.cfg.CollectorSpeed,
		Color: g.cfg.Collector,
	}
}

func (g *Game) generateBlocks(count int) {
	w, h := g.surface.Size()
	m := g.cfg.SpawnMargin
	for range count {
		g.blocks = append(g.blocks, Block{
			X:     g.rng.Float64()*(float64(w)-2*m) + m,
			Y:     g.rng.Float64()*(float64(h)-2*m) + m,
			Size:  g.cfg.BlockSize,
			Color: g.cfg.Block,
			Value: g.cfg.BlockValueMin + g.rng.IntN(g.cfg.BlockValueMax-g.cfg.BlockValueMin),
		})
	}
}

func (g *Game) handleResize(host.Viewport) {
	g.surface.Resize(g.container.Size())
	if g.state != Running {
		// resizing drops the surface contents; a running game repaints next frame
		g.render()
	}
}

// handleKeyDown steers the collector. The new direction replaces the old
// one and persists after the key is released.
func (g *Game) handleKeyDown(k host.Key) {
	switch k {
	case host.KeyArrowLeft:
		g.collector.Dir = Vec{X: -1}
	case host.KeyArrowRight:
		g.collector.Dir = Vec{X: 1}
	case host.KeyArrowUp:
		g.collector.Dir = Vec{Y: -1}
	case host.KeyArrowDown:
		g.collector.Dir = Vec{Y: 1}
	}
}

// update advances the simulation by dt seconds.
func (g *Game) update(dt float64) {
	c := &g.collector
	c.X += c.Dir.X * c.Speed * dt
	c.Y += c.Dir.Y * c.Speed * dt

	w, h := g.surface.Size()
	c.X = max(c.Size, min(c.X, float64(w)-c.Size))
	c.Y = max(c.Size, min(c.Y, float64(h)-c.Size))

	// walk backwards so removals do not shift unvisited blocks and
	// replacements appended at the end are not checked this frame
	for i := len(g.blocks) - 1; i >= 0; i-- {
		b := g.blocks[i]
		if !c.Touches(b) {
			continue
		}
		g.score += b.Value
		g.highScore = max(g.highScore, g.score)
		g.blocks = append(g.blocks[:i], g.blocks[i+1:]...)
		g.generateBlocks(1)
		if g.onCollect != nil {
			g.onCollect(Collect{Value: b.Value, X: b.X, Y: b.Y, Score: g.score})
		}
	}
}

func (g *Game) loop(ts time.Duration) {
	if g.state != Running {
		return
	}
	if !g.haveLast {
		g.lastTS = ts
		g.haveLast = true
	}
	elapsed := ts - g.lastTS
	g.lastTS = ts
	g.played += elapsed

	g.update(elapsed.Seconds())
	g.render()

	g.frameID = g.frames.Request(g.loop)
}

// Start runs the game loop. It is a no-op while running or after Destroy.
// The first frame after a start advances by zero time.
func (g *Game) Start() {
	if g.destroyed || g.state == Running {
		return
	}
	g.state = Running
	g.haveLast = false
	g.frameID = g.frames.Request(g.loop)
	g.logf("start")
}

// Pause halts the loop and keeps all state.
func (g *Game) Pause() {
	if g.state != Running {
		return
	}
	g.state = Paused
	g.frames.Cancel(g.frameID)
	g.frameID = 0
	g.logf("pause at score %d", g.score)
}

// Restart resets score, collector and blocks. A running game keeps running;
// an idle or paused one stays where it was.
func (g *Game) Restart() {
	if g.destroyed {
		return
	}
	g.score = 0
	g.resetCollector()
	g.blocks = g.blocks[:0]
	g.generateBlocks(g.cfg.BlockCount)
	g.render()

	if g.state == Running {
		g.Pause()
		g.Start()
	}
	g.logf("restart")
}

// Destroy stops the loop, detaches every listener and unmounts the surface.
// It is safe to call repeatedly and from any state.
func (g *Game) Destroy() {
	if g.destroyed {
		return
	}
	g.Pause()
	g.destroyed = true
	g.state = Idle
	for _, s := range g.subs {
		s.Cancel()
	}
	g.subs = nil
	g.container.Remove(g.surface)
	g.surface.Dispose()
	g.logf("destroy")
}

func (g *Game) logf(format string, args ...any) {
	if g.logger == nil {
		return
	}
	g.logger.Printf("[arcade] "+format, args...)
}

func (g *Game) State() State         { return g.state }
func (g *Game) Score() int           { return g.score }
func (g *Game) Destroyed() bool      { return g.destroyed }
func (g *Game) Collector() Collector { return g.collector }

// HighScore is the best score reached since the game was created. Restart
// does not clear it.
func (g *Game) HighScore() int { return g.highScore }

// PlayTime is the total time spent running.
func (g *Game) PlayTime() time.Duration { return g.played }

// Blocks exposes the live blocks. Callers must not retain the slice.
func (g *Game) Blocks() []Block { return g.blocks }

func (g *Game) Surface() render.Surface { return g.surface }
