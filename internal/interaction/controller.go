// Package interaction turns pointer drags on the card into an offset and a
// tilt, and springs the offset back to rest when the drag ends.
package interaction

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/credit-card/internal/scene"
)

// State is the controller's phase.
type State int

const (
	Resting State = iota
	Dragging
	Returning
)

func (s State) String() string {
	switch s {
	case Resting:
		return "resting"
	case Dragging:
		return "dragging"
	case Returning:
		return "returning"
	default:
		return "unknown"
	}
}

// Offset is the displacement of the card from its rest position.
type Offset struct {
	DX, DY float64
}

// IsZero reports whether the card is at rest position.
func (o Offset) IsZero() bool {
	return o.DX == 0 && o.DY == 0
}

// Options tunes a Controller.
type Options struct {
	FPS         int     // animation steps per second
	Response    float64 // spring period in seconds
	Damping     float64 // damping ratio, 1 is critical
	TiltDegrees float64 // tilt applied while displaced
	MinDistance float64 // pointer travel before a press becomes a drag
	Tolerance   float64 // distance and speed below which the spring snaps to rest
}

// DefaultOptions matches the platform's default interactive spring.
func DefaultOptions() Options {
	return Options{
		FPS:         60,
		Response:    0.55,
		Damping:     0.825,
		TiltDegrees: 15,
		MinDistance: 10,
		Tolerance:   0.01,
	}
}

// Controller owns the drag offset. It has a single writer, the game loop.
type Controller struct {
	opts   Options
	spring harmonica.Spring

	state      State
	armed      bool
	recognized bool
	startX     float64
	startY     float64
	offset     Offset
	velocity   Offset
}

// New creates a resting controller.
func New(opts Options) *Controller {
	return &Controller{
		opts:   opts,
		spring: harmonica.NewSpring(harmonica.FPS(opts.FPS), 2*math.Pi/opts.Response, opts.Damping),
	}
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Offset returns the current displacement.
func (c *Controller) Offset() Offset { return c.offset }

// Press arms a gesture at (x, y). A running return animation stops here and
// the card holds its position until the first recognized move.
func (c *Controller) Press(x, y float64) {
	c.armed = true
	c.recognized = false
	c.startX, c.startY = x, y
	if c.state == Returning {
		c.velocity = Offset{}
		c.state = Dragging
	}
}

// Move reports the pointer position. Once the pointer has travelled
// MinDistance from the press point the offset follows it exactly.
func (c *Controller) Move(x, y float64) {
	if !c.armed {
		return
	}
	dx, dy := x-c.startX, y-c.startY
	if !c.recognized {
		if math.Hypot(dx, dy) < c.opts.MinDistance {
			return
		}
		c.recognized = true
		c.state = Dragging
	}
	c.offset = Offset{DX: dx, DY: dy}
}

// Release ends the gesture and hands any displacement to the spring. It
// reports whether the card was being dragged or held.
func (c *Controller) Release() bool {
	wasArmed := c.armed
	c.armed = false
	c.recognized = false
	if !wasArmed || c.state != Dragging {
		return false
	}
	if c.offset.IsZero() {
		c.state = Resting
	} else {
		c.state = Returning
	}
	return true
}

// Step advances the return animation by one frame.
func (c *Controller) Step() {
	if c.state != Returning {
		return
	}
	c.offset.DX, c.velocity.DX = c.spring.Update(c.offset.DX, c.velocity.DX, 0)
	c.offset.DY, c.velocity.DY = c.spring.Update(c.offset.DY, c.velocity.DY, 0)

	tol := c.opts.Tolerance
	if math.Hypot(c.offset.DX, c.offset.DY) < tol && math.Hypot(c.velocity.DX, c.velocity.DY) < tol {
		c.offset = Offset{}
		c.velocity = Offset{}
		c.state = Resting
	}
}

// Tilt derives the rotation from the offset: a fixed angle while displaced,
// about an axis perpendicular to the drag direction.
func (c *Controller) Tilt() scene.Rotation {
	return TiltFor(c.offset, c.opts.TiltDegrees)
}

// TiltFor is the tilt for offset o with the given displaced angle in degrees.
func TiltFor(o Offset, degrees float64) scene.Rotation {
	r := scene.Rotation{Axis: scene.Vec3{X: -o.DY, Y: o.DX}}
	if !o.IsZero() {
		r.Degrees = degrees
	}
	return r
}
