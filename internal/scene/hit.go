package scene

// HitTester is a layer that may accept pointer input.
type HitTester interface {
	HitTest(x, y float64) bool
}

// HitRect accepts points inside an axis-aligned box.
type HitRect struct {
	X, Y, W, H float64
}

func (r HitRect) HitTest(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// HitStack orders layers bottom to top, like the draw order.
type HitStack []HitTester

// Resolve returns the index of the topmost layer accepting (x, y), or -1.
func (s HitStack) Resolve(x, y float64) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != nil && s[i].HitTest(x, y) {
			return i
		}
	}
	return -1
}
