// Package game is the Ebitengine host: it owns the window, relays input and
// drives the particle background and the block collector through the frame
// scheduler.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-arcade/internal/arcade"
	"github.com/iburimskiy/particle-arcade/internal/config"
	"github.com/iburimskiy/particle-arcade/internal/host"
	"github.com/iburimskiy/particle-arcade/internal/particles"
	"github.com/iburimskiy/particle-arcade/internal/render"
	"github.com/iburimskiy/particle-arcade/internal/sound"
)

const helpText = "Use arrow keys to move Qubic and eat XMR blocks!"

var (
	pageColor   = color.RGBA{R: 3, G: 7, B: 18, A: 255}
	panelColor  = color.RGBA{A: 255}
	statusColor = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	accentColor = color.RGBA{R: 34, G: 211, B: 238, A: 255}
)

var arrowKeys = []struct {
	key  ebiten.Key
	name host.Key
}{
	{ebiten.KeyArrowLeft, host.KeyArrowLeft},
	{ebiten.KeyArrowRight, host.KeyArrowRight},
	{ebiten.KeyArrowUp, host.KeyArrowUp},
	{ebiten.KeyArrowDown, host.KeyArrowDown},
}

// Options configures New.
type Options struct {
	Config config.Config
	// Sprites holds the arcade sprite files.
	Sprites fs.FS
	// Scale is the device scale factor; zero asks the current monitor.
	Scale   float64
	Verbose bool
	// NewSurface allocates the drawing surfaces; nil means render.ImageFactory.
	NewSurface render.Factory
}

// Game implements ebiten.Game.
type Game struct {
	cfg     config.Config
	verbose bool
	start   time.Time

	frames *host.Scheduler
	events *host.Events
	arena  *host.Container

	background render.Surface
	field      *particles.Field
	arcade     *arcade.Game
	sound      *sound.Player

	layout        layout
	scale         float64
	width, height int
	pending       *host.Viewport

	buttons []*button
	popups  []*popup
	elapsed float64 // seconds, drives the frame glow

	closed bool
}

// New builds the window contents at the configured size and mounts both
// simulations. Any construction failure is returned before the loop starts.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = deviceScale()
	}

	viewport := host.Viewport{
		Width:      float64(cfg.Window.Width),
		Height:     float64(cfg.Window.Height),
		PixelRatio: scale,
	}
	w, h := viewport.Pixels()

	g := &Game{
		cfg:     cfg,
		verbose: opts.Verbose,
		start:   time.Now(),
		frames:  host.NewScheduler(),
		events:  host.NewEvents(viewport),
		layout:  computeLayout(w, h, scale),
		scale:   scale,
		width:   w,
		height:  h,
	}
	newSurface := opts.NewSurface
	if newSurface == nil {
		newSurface = render.ImageFactory
	}
	g.arena = host.NewContainer(logical(g.layout.arena, scale))
	g.background = newSurface(w, h)
	if g.background == nil {
		return nil, fmt.Errorf("game: %w", render.ErrNoSurface)
	}

	var err error
	g.field, err = particles.New(g.background, g.frames, g.events, cfg.Particles, g.rand(1))
	if err != nil {
		g.background.Dispose()
		return nil, err
	}

	var logger *log.Logger
	if opts.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	g.arcade, err = arcade.New(arcade.Options{
		Config:     cfg.Arcade,
		Frames:     g.frames,
		Events:     g.events,
		Container:  g.arena,
		NewSurface: newSurface,
		Sprites:    opts.Sprites,
		Rand:       g.rand(2),
		OnCollect:  g.onCollect,
		Logger:     logger,
	})
	if err != nil {
		g.field.Destroy()
		g.background.Dispose()
		return nil, err
	}

	g.sound, err = sound.New(cfg.Audio)
	if err != nil {
		log.Printf("[sound] disabled: %v", err)
	}

	g.buttons = []*button{
		{label: "Play", primary: true, action: g.arcade.Start},
		{label: "Pause", action: g.arcade.Pause},
		{label: "Restart", action: g.arcade.Restart},
		{label: "Controls", action: showHelp},
	}
	return g, nil
}

// rand returns a seeded source when the config fixes a seed, nil otherwise.
func (g *Game) rand(stream uint64) *rand.Rand {
	if g.cfg.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(g.cfg.Seed, stream))
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	if g.pending != nil {
		g.applyResize(*g.pending)
		g.pending = nil
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	g.frames.Run(time.Since(g.start))

	dt := 1 / float64(ebiten.TPS())
	g.elapsed += dt
	g.popups = updatePopups(g.popups, float32(dt))
	return nil
}

func (g *Game) handleInput() error {
	for _, k := range arrowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.events.EmitKeyDown(k.name)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.events.EmitKeyUp(k.name)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.Close()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.arcade.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		showHelp()
	}

	// Button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	hovered := g.layout.buttonAt(mouseX, mouseY)
	for i, b := range g.buttons {
		b.hovered = i == hovered
	}
	if hovered >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttons[hovered].pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		for _, b := range g.buttons {
			if b.pressed && b.hovered {
				b.action()
			}
			b.pressed = false
		}
	}
	return nil
}

func (g *Game) togglePause() {
	if g.arcade.State() == arcade.Running {
		g.arcade.Pause()
		return
	}
	g.arcade.Start()
}

func (g *Game) onCollect(c arcade.Collect) {
	g.sound.PlayCollect(c.Value)

	x, y := g.arenaToScreen(c.X, c.Y)
	col := tint(180+float64(c.Value), 0.7, 1)
	g.popups = append(g.popups, newPopup(fmt.Sprintf("+%d", c.Value), x, y, g.scale, col))
}

// arenaToScreen maps arcade units to screen pixels.
func (g *Game) arenaToScreen(x, y float64) (float64, float64) {
	origin := g.layout.arena.Min
	return float64(origin.X) + x*g.scale, float64(origin.Y) + y*g.scale
}

func showHelp() {
	go func() {
		err := zenity.Info(helpText, zenity.Title("Controls"), zenity.InfoIcon)
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("[game] help dialog: %v", err)
		}
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(pageColor)
	render.Blit(screen, g.background, 0, 0, 1)

	g.drawPanel(screen)
	for _, child := range g.arena.Children() {
		render.Blit(screen, child, float64(g.layout.arena.Min.X), float64(g.layout.arena.Min.Y), g.scale)
	}
	g.drawPopups(screen)
	for i, b := range g.buttons {
		b.draw(screen, g.layout.buttons[i], g.scale)
	}
	g.drawStatus(screen)

	if g.verbose {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  particles %d", ebiten.ActualTPS(), ebiten.ActualFPS(), len(g.field.Particles())), 4, 4)
	}
}

// drawPanel frames the arena with a slowly shifting cyan-to-blue glow.
func (g *Game) drawPanel(screen *ebiten.Image) {
	r := g.layout.arena
	pad := float32(16 * g.scale)
	x, y := float32(r.Min.X)-pad, float32(r.Min.Y)-pad
	w, h := float32(r.Dx())+2*pad, float32(r.Dy())+2*pad

	glow := tint(205+20*math.Sin(g.elapsed*0.8), 0.85, 0.95)
	vector.DrawFilledRect(screen, x-4, y-4, w+8, h+8, fade(glow, 0.3), false)
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, fade(accentColor, 0.3), false)
}

func (g *Game) drawPopups(screen *ebiten.Image) {
	size := 16 * g.scale
	for _, p := range g.popups {
		render.DrawLabel(screen, p.text, p.x, p.y+p.offset-size, size, render.AlignCenter, fade(p.col, p.alpha))
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	r := g.layout.status
	size := 14 * g.scale
	left, right := statusLine(g.arcade.State(), g.arcade.PlayTime(), g.arcade.HighScore())
	render.DrawLabel(screen, left, float64(r.Min.X), float64(r.Min.Y), size, render.AlignLeft, statusColor)
	render.DrawLabel(screen, right, float64(r.Max.X), float64(r.Min.Y), size, render.AlignRight, accentColor)
}

// statusLine returns the left and right halves of the line under the buttons.
func statusLine(state arcade.State, played time.Duration, highScore int) (string, string) {
	left := "Use arrow keys to move"
	switch state {
	case arcade.Running:
		left += "  |  " + formatDuration(played)
	case arcade.Paused:
		left += "  |  paused at " + formatDuration(played)
	}
	return left, fmt.Sprintf("High Score: %d", highScore)
}

// Layout reports the screen in device pixels. Size changes are applied on
// the next Update so surfaces are never reallocated mid-draw.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := deviceScale()
	v := host.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight), PixelRatio: scale}
	w, h := v.Pixels()
	if w != g.width || h != g.height || scale != g.scale {
		g.pending = &v
	}
	return w, h
}

func (g *Game) applyResize(v host.Viewport) {
	g.width, g.height = v.Pixels()
	g.scale = v.PixelRatio
	g.layout = computeLayout(g.width, g.height, g.scale)
	g.arena.SetBounds(logical(g.layout.arena, g.scale))
	g.events.EmitResize(v)
	if g.verbose {
		log.Printf("[game] resize to %dx%d (scale %.2f)", g.width, g.height, g.scale)
	}
}

// Close destroys both simulations and releases audio. It is idempotent.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.arcade.Destroy()
	g.field.Destroy()
	g.sound.Close()
	g.background.Dispose()
}
