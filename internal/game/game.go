// Package game runs the card demo on ebiten: pointer input drives the
// interaction controller, and the card and particle layers are drawn
// through the same tilt every frame.
package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/credit-card/internal/card"
	"github.com/iburimskiy/credit-card/internal/config"
	"github.com/iburimskiy/credit-card/internal/interaction"
	"github.com/iburimskiy/credit-card/internal/palette"
	"github.com/iburimskiy/credit-card/internal/particle"
	"github.com/iburimskiy/credit-card/internal/scene"
)

// Layer indices in the hit stack, bottom to top.
const (
	layerCard = iota
	layerParticles
)

type Game struct {
	cfg *config.Config

	// layers
	content    card.Content
	style      card.Style
	labels     *labels
	face       *ebiten.Image
	sprite     *ebiten.Image
	emitter    *particle.Emitter
	origin     scene.Vec2
	background color.NRGBA
	hits       scene.HitStack

	// interaction
	ctrl     *interaction.Controller
	touch    ebiten.TouchID
	touching bool // the gesture comes from a touch, not the mouse

	// side effects
	player *player
	shot   snapshot

	lastErr error
}

// New builds the game from cfg. Audio failures only disable the tone.
func New(cfg *config.Config) (*Game, error) {
	style := card.DefaultStyle()
	style.Width = cfg.Card.Width
	style.Height = cfg.Card.Height
	style.CornerRadius = cfg.Card.CornerRadius
	style.StrokeWidth = cfg.Card.StrokeWidth
	style.Fill = card.Evenly(palette.Hex(cfg.Card.FillStart), palette.Hex(cfg.Card.FillEnd))

	lbl, err := newLabels()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	order := particle.OldestLast
	if cfg.Particle.OldestFirst {
		order = particle.OldestFirst
	}
	emitter := particle.NewEmitter(particle.Options{
		Width:        cfg.Card.Width,
		Height:       cfg.Card.Height,
		Cells:        particle.RingCells(cfg.Particle.Cells, particle.BaseCell()),
		Order:        order,
		MaxParticles: cfg.Particle.MaxParticles,
		Seed:         cfg.Particle.Seed,
	})

	opts := interaction.DefaultOptions()
	opts.FPS = cfg.Window.TPS
	opts.Response = cfg.Motion.SpringResponse
	opts.Damping = cfg.Motion.SpringDamping
	opts.TiltDegrees = cfg.Motion.TiltDegrees
	opts.MinDistance = cfg.Motion.MinDistance

	g := &Game{
		cfg: cfg,
		content: card.Content{
			Title:  cfg.Card.Title,
			Number: cfg.Card.Number,
			Expiry: cfg.Card.Expiry,
		},
		style:      style,
		labels:     lbl,
		emitter:    emitter,
		origin:     centered(cfg.Window.Width, cfg.Window.Height, cfg.Card.Width, cfg.Card.Height),
		background: palette.Hex(cfg.Card.Background),
		ctrl:       interaction.New(opts),
	}
	// The particle layer sits above the card but never takes input.
	g.hits = scene.HitStack{layerCard: cardHit{g}, layerParticles: emitterHit{g}}

	if cfg.Sound.Enabled {
		p, err := newPlayer(cfg.Sound.Volume)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			g.player = p
		}
	}

	log.Printf("card %vx%v, %d emitter cells, tilt %v°", cfg.Card.Width, cfg.Card.Height, cfg.Particle.Cells, cfg.Motion.TiltDegrees)
	return g, nil
}

// cardHit tests against the card's current, untilted footprint.
type cardHit struct{ g *Game }

func (h cardHit) HitTest(x, y float64) bool {
	o := h.g.ctrl.Offset()
	r := scene.HitRect{
		X: h.g.origin.X + o.DX,
		Y: h.g.origin.Y + o.DY,
		W: h.g.style.Width,
		H: h.g.style.Height,
	}
	return r.HitTest(x, y)
}

// emitterHit maps screen points into the particle layer.
type emitterHit struct{ g *Game }

func (h emitterHit) HitTest(x, y float64) bool {
	o := h.g.ctrl.Offset()
	return h.g.emitter.HitTest(x-h.g.origin.X-o.DX, y-h.g.origin.Y-o.DY)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.shot.request()
	}
	if g.shot.ready() {
		if err := g.shot.save(); err != nil {
			g.lastErr = err
			log.Printf("snapshot: %v", err)
		}
	}

	g.handlePointer()

	g.ctrl.Step()
	g.emitter.Update(1 / float64(g.cfg.Window.TPS))
	return nil
}

func (g *Game) handlePointer() {
	// Touch first: a new touch takes over only when no gesture is running.
	if !g.touching {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			if g.press(float64(x), float64(y)) {
				g.touch = id
				g.touching = true
				return
			}
		}
	}
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touch) {
			g.touching = false
			g.release()
			return
		}
		x, y := ebiten.TouchPosition(g.touch)
		g.ctrl.Move(float64(x), float64(y))
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.press(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.Move(x, y)
	}
}

// press starts a gesture if the card is the topmost layer accepting (x, y).
func (g *Game) press(x, y float64) bool {
	if g.hits.Resolve(x, y) != layerCard {
		return false
	}
	g.ctrl.Press(x, y)
	return true
}

func (g *Game) release() {
	if g.ctrl.Release() && g.ctrl.State() == interaction.Returning {
		g.player.playSettle()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	if g.face == nil {
		g.face = g.renderFace()
		g.sprite = ebiten.NewImageFromImage(particle.Disc(particle.SpriteSize))
	}

	p := g.projector()
	g.drawCard(screen, p)
	g.drawParticles(screen, p)

	g.shot.capture(screen)

	status := fmt.Sprintf("Drag the card | S: snapshot | Esc/Q: quit | %s", g.ctrl.State())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) projector() scene.Projector {
	o := g.ctrl.Offset()
	return scene.Projector{
		Width:    g.style.Width,
		Height:   g.style.Height,
		Rotation: g.ctrl.Tilt(),
		Origin:   g.origin,
		Offset:   scene.Vec2{X: o.DX, Y: o.DY},
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
