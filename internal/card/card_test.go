package card

import (
	"image/color"
	"math"
	"testing"
)

func TestGradientAt(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	g := Evenly(black, white)

	tests := []struct {
		t    float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{3, 255},
	}
	for _, tt := range tests {
		if got := g.At(tt.t).R; got != tt.want {
			t.Errorf("At(%v).R = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestOutlineIsClearInTheMiddle(t *testing.T) {
	s := DefaultStyle()
	if a := s.Outline.At(0.5).A; a != 0 {
		t.Errorf("outline alpha at 0.5 = %d, want 0", a)
	}
	for _, loc := range []float64{0, 1} {
		c := s.Outline.At(loc)
		if c.R != 255 || c.A != 128 {
			t.Errorf("outline at %v = %+v, want half-opaque white", loc, c)
		}
	}
}

func TestDiagonal(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{360, 240, 1},
		{180, 120, 0.5},
		{360, 0, 0.5},
	}
	for _, tt := range tests {
		if got := Diagonal(tt.x, tt.y, 360, 240); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Diagonal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRoundedRectDistance(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"center", 180, 120, -120},
		{"top edge", 180, 0, 0},
		{"left edge", 0, 120, 0},
		{"above top", 180, -10, 10},
		{"corner arc", 30 - 30/math.Sqrt2, 30 - 30/math.Sqrt2, 0},
	}
	for _, tt := range tests {
		got := RoundedRectDistance(tt.x, tt.y, 360, 240, 30)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: distance = %v, want %v", tt.name, got, tt.want)
		}
	}

	// The square corner lies outside the rounded shape.
	if d := RoundedRectDistance(0, 0, 360, 240, 30); d <= 0 {
		t.Errorf("corner distance = %v, want > 0", d)
	}
}

func TestRenderFace(t *testing.T) {
	s := DefaultStyle()
	img := RenderFace(s)

	if b := img.Bounds(); b.Dx() != 360 || b.Dy() != 240 {
		t.Fatalf("bounds = %v, want 360x240", b)
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("rounded corner alpha = %d, want 0", a)
	}

	center := img.NRGBAAt(180, 120)
	if center.A != 255 {
		t.Errorf("center alpha = %d, want 255", center.A)
	}
	if center.B < center.R || center.B < center.G {
		t.Errorf("center = %+v, want a blue-violet fill", center)
	}

	// Fill runs from the lighter violet to the deeper one.
	start := img.NRGBAAt(40, 40)
	end := img.NRGBAAt(320, 200)
	if start.R <= end.R {
		t.Errorf("fill start R = %d, end R = %d, want start lighter", start.R, end.R)
	}

	// The sheen brightens the top-leading edge compared to just inside it.
	edge := img.NRGBAAt(180, 0)
	inner := img.NRGBAAt(180, 10)
	if edge.G <= inner.G {
		t.Errorf("edge G = %d, inner G = %d, want brighter edge", edge.G, inner.G)
	}
}

func TestLayout(t *testing.T) {
	m := Metrics{
		TitleW: 100, TitleH: 20,
		NumberW: 90, NumberH: 18,
		ExpiryW: 110, ExpiryH: 14,
		LogoSize: LogoSize,
	}
	p := Layout(360, 240, DefaultPadding, m)

	if p.Title.X != 30 || p.Title.Y != 30 {
		t.Errorf("title at (%v, %v), want (30, 30)", p.Title.X, p.Title.Y)
	}
	if p.Number.X != 30 || p.Number.Y != 30+20+LineSpacing {
		t.Errorf("number at (%v, %v)", p.Number.X, p.Number.Y)
	}
	if want := 240.0 - 30 - 40; p.Logo.Y != want {
		t.Errorf("logo Y = %v, want %v", p.Logo.Y, want)
	}
	if want := 360.0 - 30 - 40; p.Logo.X != want {
		t.Errorf("logo X = %v, want %v", p.Logo.X, want)
	}
	// Expiry is centered in the bottom row next to the logo.
	if got, want := p.Expiry.Y+p.Expiry.H/2, p.Logo.Y+p.Logo.H/2; got != want {
		t.Errorf("expiry center Y = %v, want %v", got, want)
	}
	if p.Expiry.X != 30 {
		t.Errorf("expiry X = %v, want 30", p.Expiry.X)
	}
}
