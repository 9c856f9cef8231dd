// Package particle implements the sparkle field drawn with the card: a set of
// emitter cells fanned around a full circle and a per-frame simulation.
package particle

import (
	"image"
	"image/color"
	"math"
)

// Cell describes one stream of identical particles.
type Cell struct {
	Angle         float64 // emission direction, radians, 0 points along +x
	BirthRate     float64 // particles per second
	Velocity      float64 // initial speed, units per second
	VelocityRange float64 // +/- spread applied to Velocity
	Lifetime      float64 // seconds
	Scale         float64
	ScaleRange    float64
	ScaleSpeed    float64 // scale change per second
	Alpha         float64
	AlphaRange    float64
	AlphaSpeed    float64 // alpha change per second
	YAcceleration float64
}

// DefaultCells is the number of cells spread around the ring.
const DefaultCells = 40

// SpriteSize is the side of the disc sprite in pixels.
const SpriteSize = 20

// BaseCell is the template every ring cell starts from.
func BaseCell() Cell {
	return Cell{
		BirthRate:     5,
		Velocity:      50,
		VelocityRange: 10,
		Lifetime:      1.5,
		Scale:         0.1,
		ScaleRange:    0.02,
		ScaleSpeed:    -0.05,
		Alpha:         1,
		AlphaRange:    0.5,
		AlphaSpeed:    -0.5,
	}
}

// RingCells returns n copies of base with angles i*2π/n.
func RingCells(n int, base Cell) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		c := base
		c.Angle = float64(i) * (2 * math.Pi / float64(n))
		cells[i] = c
	}
	return cells
}

// Disc rasterizes a white filled circle into a size×size image.
func Disc(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) - r
			a := 0.5 - d
			if a <= 0 {
				continue
			}
			if a > 1 {
				a = 1
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)})
		}
	}
	return img
}
