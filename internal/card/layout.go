package card

// Rect is an axis-aligned box in card-local coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Metrics are the measured sizes of the labels for a given font choice.
type Metrics struct {
	TitleW, TitleH   float64
	NumberW, NumberH float64
	ExpiryW, ExpiryH float64
	LogoSize         float64
}

// Placement is where each label goes on the face.
type Placement struct {
	Title, Number, Expiry, Logo Rect
}

const (
	// DefaultPadding is the inset from every edge of the face.
	DefaultPadding = 30
	// LineSpacing separates stacked labels.
	LineSpacing = 8
	// LogoSize is the side of the logo glyph box.
	LogoSize = 40
)

// Layout stacks the title and number at the top-leading corner and puts a
// bottom row with the expiry on the leading side and the logo trailing.
func Layout(width, height, padding float64, m Metrics) Placement {
	var p Placement
	p.Title = Rect{X: padding, Y: padding, W: m.TitleW, H: m.TitleH}
	p.Number = Rect{X: padding, Y: p.Title.Y + m.TitleH + LineSpacing, W: m.NumberW, H: m.NumberH}

	row := max(m.ExpiryH, m.LogoSize)
	rowY := height - padding - row
	p.Expiry = Rect{X: padding, Y: rowY + (row-m.ExpiryH)/2, W: m.ExpiryW, H: m.ExpiryH}
	p.Logo = Rect{X: width - padding - m.LogoSize, Y: rowY + (row-m.LogoSize)/2, W: m.LogoSize, H: m.LogoSize}
	return p
}
