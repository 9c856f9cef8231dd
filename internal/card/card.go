// Package card describes the card face: its content, gradients, layout and
// a CPU raster of the rounded, stroked background.
package card

import (
	"image"
	"image/color"
	"math"

	"github.com/iburimskiy/credit-card/internal/palette"
)

// Content holds the strings printed on the card.
type Content struct {
	Title  string
	Number string
	Expiry string
}

// DefaultContent is the face shown by the demo.
var DefaultContent = Content{
	Title:  "Debit Card",
	Number: "**** 3557",
	Expiry: "Valid Thru 11/25",
}

// Stop is one color position in a gradient.
type Stop struct {
	Color    color.NRGBA
	Location float64
}

// Gradient is an ordered list of stops with ascending locations.
type Gradient []Stop

// Evenly spreads colors over [0,1].
func Evenly(colors ...color.NRGBA) Gradient {
	g := make(Gradient, len(colors))
	for i, c := range colors {
		loc := 0.0
		if len(colors) > 1 {
			loc = float64(i) / float64(len(colors)-1)
		}
		g[i] = Stop{Color: c, Location: loc}
	}
	return g
}

// At samples the gradient at t, clamping outside the first and last stop.
func (g Gradient) At(t float64) color.NRGBA {
	switch {
	case len(g) == 0:
		return color.NRGBA{}
	case t <= g[0].Location:
		return g[0].Color
	case t >= g[len(g)-1].Location:
		return g[len(g)-1].Color
	}
	for i := 1; i < len(g); i++ {
		a, b := g[i-1], g[i]
		if t > b.Location {
			continue
		}
		span := b.Location - a.Location
		if span <= 0 {
			return b.Color
		}
		return palette.Lerp(a.Color, b.Color, (t-a.Location)/span)
	}
	return g[len(g)-1].Color
}

// Diagonal maps (x, y) within a w×h box to the parameter of a gradient
// running from the top-leading to the bottom-trailing corner.
func Diagonal(x, y, w, h float64) float64 {
	return (x/w + y/h) / 2
}

// Style is the visual description of the face.
type Style struct {
	Width, Height float64
	CornerRadius  float64
	StrokeWidth   float64
	Fill          Gradient
	Outline       Gradient
}

// DefaultStyle returns the purple card with a white sheen outline.
func DefaultStyle() Style {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	return Style{
		Width:        360,
		Height:       240,
		CornerRadius: 30,
		StrokeWidth:  2,
		Fill:         Evenly(palette.Hex("#8E5AF7"), palette.Hex("#5D11F7")),
		Outline: Gradient{
			{Color: palette.WithAlpha(white, 0.5), Location: 0},
			{Color: color.NRGBA{}, Location: 0.5},
			{Color: palette.WithAlpha(white, 0.5), Location: 1},
		},
	}
}

// RoundedRectDistance returns the signed distance from (x, y) to the edge of
// a w×h rectangle at the origin with corner radius r. Negative is inside.
func RoundedRectDistance(x, y, w, h, r float64) float64 {
	r = math.Min(r, math.Min(w, h)/2)
	// Fold into the first quadrant around the center.
	px := math.Abs(x-w/2) - (w/2 - r)
	py := math.Abs(y-h/2) - (h/2 - r)
	outside := math.Hypot(math.Max(px, 0), math.Max(py, 0))
	inside := math.Min(math.Max(px, py), 0)
	return outside + inside - r
}

// RenderFace rasterizes the filled, stroked background of the card.
func RenderFace(s Style) *image.NRGBA {
	w, h := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Sample pixel centers.
			fx, fy := float64(x)+0.5, float64(y)+0.5
			d := RoundedRectDistance(fx, fy, s.Width, s.Height, s.CornerRadius)
			cover := clamp01(0.5 - d)
			if cover == 0 {
				continue
			}
			t := Diagonal(fx, fy, s.Width, s.Height)
			c := s.Fill.At(t)
			// Border sits inside the shape: -stroke <= d <= 0.
			if strokeCover := clamp01(0.5-d) * clamp01(s.StrokeWidth+d+0.5); strokeCover > 0 && len(s.Outline) > 0 {
				c = over(s.Outline.At(t), c, strokeCover)
			}
			c.A = uint8(float64(c.A)*cover + 0.5)
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// over composites src (scaled by coverage k) onto dst, non-premultiplied.
func over(src, dst color.NRGBA, k float64) color.NRGBA {
	sa := float64(src.A) / 255 * k
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return color.NRGBA{}
	}
	mix := func(s, d uint8) uint8 {
		return uint8((float64(s)*sa+float64(d)*da*(1-sa))/oa + 0.5)
	}
	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(oa*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
