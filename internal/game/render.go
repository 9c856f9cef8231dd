package game

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/credit-card/internal/card"
	"github.com/iburimskiy/credit-card/internal/particle"
	"github.com/iburimskiy/credit-card/internal/scene"
)

// labels holds the faces for the card's text hierarchy.
type labels struct {
	headline *text.GoTextFace
	body     *text.GoTextFace
	caption  *text.GoTextFace
}

func newLabels() (*labels, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &labels{
		headline: &text.GoTextFace{Source: bold, Size: 17},
		body:     &text.GoTextFace{Source: regular, Size: 17},
		caption:  &text.GoTextFace{Source: regular, Size: 12},
	}, nil
}

// renderFace composes the rasterized background and the labels into one
// texture that the tilted mesh samples from.
func (g *Game) renderFace() *ebiten.Image {
	face := ebiten.NewImageFromImage(card.RenderFace(g.style))

	m := card.Metrics{LogoSize: card.LogoSize}
	m.TitleW, m.TitleH = text.Measure(g.content.Title, g.labels.headline, 0)
	m.NumberW, m.NumberH = text.Measure(g.content.Number, g.labels.body, 0)
	m.ExpiryW, m.ExpiryH = text.Measure(g.content.Expiry, g.labels.caption, 0)
	pl := card.Layout(g.style.Width, g.style.Height, g.cfg.Card.Padding, m)

	drawLabel(face, g.content.Title, g.labels.headline, pl.Title)
	drawLabel(face, g.content.Number, g.labels.body, pl.Number)
	drawLabel(face, g.content.Expiry, g.labels.caption, pl.Expiry)
	drawLogo(face, pl.Logo)
	return face
}

func drawLabel(dst *ebiten.Image, s string, f text.Face, r card.Rect) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, s, f, op)
}

// drawLogo draws two overlapping rings filling the logo box.
func drawLogo(dst *ebiten.Image, r card.Rect) {
	radius := float32(r.H * 0.3)
	cy := float32(r.Y + r.H/2)
	left := float32(r.X+r.W/2) - radius*0.6
	right := float32(r.X+r.W/2) + radius*0.6
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	translucent := color.NRGBA{R: 255, G: 255, B: 255, A: 140}
	vector.DrawFilledCircle(dst, left, cy, radius, translucent, true)
	vector.DrawFilledCircle(dst, right, cy, radius, translucent, true)
	vector.StrokeCircle(dst, left, cy, radius, 1.5, white, true)
	vector.StrokeCircle(dst, right, cy, radius, 1.5, white, true)
}

// drawCard maps the face texture through the projected mesh.
func (g *Game) drawCard(screen *ebiten.Image, p scene.Projector) {
	segments := g.cfg.Motion.MeshSegments
	if p.Rotation.IsIdentity() {
		segments = 1
	}
	mesh, indices := p.Mesh(segments)

	vs := make([]ebiten.Vertex, len(mesh))
	for i, v := range mesh {
		vs[i] = ebiten.Vertex{
			DstX:   float32(v.Dst.X),
			DstY:   float32(v.Dst.Y),
			SrcX:   float32(v.Src.X),
			SrcY:   float32(v.Src.Y),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	op := &ebiten.DrawTrianglesOptions{
		Filter:    ebiten.FilterLinear,
		AntiAlias: true,
	}
	screen.DrawTriangles(vs, indices, g.face, op)
}

// drawParticles draws the live sprites through the same tilt as the card.
func (g *Game) drawParticles(screen *ebiten.Image, p scene.Projector) {
	half := float64(particle.SpriteSize) / 2
	for _, pt := range g.emitter.Particles() {
		pos := p.Project(pt.X, pt.Y)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(pt.Scale, pt.Scale)
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleAlpha(float32(clamp01(pt.Alpha)))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.sprite, op)
	}
}
