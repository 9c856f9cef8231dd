package game

import "github.com/iburimskiy/credit-card/internal/scene"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// centered returns the top-left corner that centers a w×h box in the window.
func centered(winW, winH int, w, h float64) scene.Vec2 {
	return scene.Vec2{X: (float64(winW) - w) / 2, Y: (float64(winH) - h) / 2}
}
