package particle

import (
	"math"
	"math/rand/v2"
	"slices"
)

// RenderOrder decides the draw order of live particles.
type RenderOrder int

const (
	// OldestFirst draws particles in birth order.
	OldestFirst RenderOrder = iota
	// OldestLast draws the newest particles first.
	OldestLast
)

// Particle is one live sprite in emitter-local coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
	Scale  float64
	Alpha  float64
	ay     float64
	ds, da float64
}

// Options configures an Emitter.
type Options struct {
	Width, Height float64 // emission rectangle, centered in the layer
	Cells         []Cell
	Order         RenderOrder
	MaxParticles  int // 0 means no cap
	Seed          uint64
}

// Emitter owns the simulation of every particle spawned by its cells.
// It is not safe for concurrent use; the game loop drives it from one goroutine.
type Emitter struct {
	width, height float64
	cells         []Cell
	credit        []float64
	order         RenderOrder
	max           int
	rng           *rand.Rand

	particles []Particle
	view      []Particle
}

// NewEmitter builds an emitter over a copy of opts.Cells.
func NewEmitter(opts Options) *Emitter {
	return &Emitter{
		width:  opts.Width,
		height: opts.Height,
		cells:  slices.Clone(opts.Cells),
		credit: make([]float64, len(opts.Cells)),
		order:  opts.Order,
		max:    opts.MaxParticles,
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9E3779B97F4A7C15)),
	}
}

// Cells returns a copy of the emitter's cell configuration.
func (e *Emitter) Cells() []Cell {
	return slices.Clone(e.cells)
}

// Size is the layer footprint.
func (e *Emitter) Size() (float64, float64) {
	return e.width, e.height
}

// HitTest reports whether the layer accepts a pointer at (x, y). It never does.
func (e *Emitter) HitTest(x, y float64) bool {
	return false
}

// Len is the number of live particles.
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Update advances the simulation by dt seconds: ages and integrates live
// particles, retires expired ones, then spawns the births owed by each cell.
func (e *Emitter) Update(dt float64) {
	if dt <= 0 {
		return
	}

	live := e.particles[:0]
	for _, p := range e.particles {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.VY += p.ay * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Scale = math.Max(0, p.Scale+p.ds*dt)
		p.Alpha = math.Max(0, p.Alpha+p.da*dt)
		if p.Alpha == 0 || p.Scale == 0 {
			continue
		}
		live = append(live, p)
	}
	e.particles = live

	for i, c := range e.cells {
		e.credit[i] += c.BirthRate * dt
		for e.credit[i] >= 1 {
			e.credit[i]--
			if e.max > 0 && len(e.particles) >= e.max {
				continue
			}
			e.particles = append(e.particles, e.spawn(c))
		}
	}
}

func (e *Emitter) spawn(c Cell) Particle {
	speed := c.Velocity + c.VelocityRange*e.spread()
	return Particle{
		X:     e.rng.Float64() * e.width,
		Y:     e.rng.Float64() * e.height,
		VX:    math.Cos(c.Angle) * speed,
		VY:    math.Sin(c.Angle) * speed,
		Life:  c.Lifetime,
		Scale: math.Max(0, c.Scale+c.ScaleRange*e.spread()),
		Alpha: clamp01(c.Alpha + c.AlphaRange*e.spread()),
		ay:    c.YAcceleration,
		ds:    c.ScaleSpeed,
		da:    c.AlphaSpeed,
	}
}

// spread returns a uniform value in [-1, 1).
func (e *Emitter) spread() float64 {
	return e.rng.Float64()*2 - 1
}

// Particles returns the live particles in render order. The slice is reused
// by the next call.
func (e *Emitter) Particles() []Particle {
	e.view = append(e.view[:0], e.particles...)
	if e.order == OldestLast {
		slices.Reverse(e.view)
	}
	return e.view
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
