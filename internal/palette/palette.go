// Package palette converts hex color strings into colors.
package palette

import (
	"image/color"
	"strconv"
	"strings"
	"unicode"
)

// Fallback is returned for hex strings whose digit count is not 3, 6 or 8.
var Fallback = color.NRGBA{R: 1, G: 1, B: 0, A: 1}

// Hex parses "#RGB", "#RRGGBB" or "#AARRGGBB" (leading '#' optional).
// Non-alphanumeric characters around the digits are trimmed. Parsing stops
// at the first non-hex character; the length check uses the trimmed string.
func Hex(s string) color.NRGBA {
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	v := scanHex(s)

	switch len(s) {
	case 3:
		return color.NRGBA{
			R: uint8((v >> 8 & 0xF) * 17),
			G: uint8((v >> 4 & 0xF) * 17),
			B: uint8((v & 0xF) * 17),
			A: 255,
		}
	case 6:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	case 8:
		// ARGB: the top byte is alpha.
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
	default:
		return Fallback
	}
}

func scanHex(s string) uint64 {
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseUint(s[:end], 16, 64)
	if err != nil {
		return 0
	}
	return v
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// WithAlpha returns c with its alpha replaced by a (0-1).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

// Lerp interpolates between two colors in premultiplied space, so fading
// into a clear color keeps the hue of the opaque end.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	aa, ba := float64(a.A)/255*(1-t), float64(b.A)/255*t
	oa := aa + ba
	if oa == 0 {
		return color.NRGBA{}
	}
	mix := func(x, y uint8) uint8 {
		return uint8((float64(x)*aa+float64(y)*ba)/oa + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: uint8(oa*255 + 0.5)}
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
