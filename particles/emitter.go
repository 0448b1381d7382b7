// Package particles is a small CPU particle emitter: continuous rate based
// emission plus one-shot bursts, with particles fading out over their lifetime.
// Emitter parameters are in world units; PixelsPerUnit converts them to the
// pixel space particles live in.
package particles

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Color is a straight (non-premultiplied) RGBA colour with channels in [0,1].
type Color struct {
	R, G, B, A float64
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Params configures an Emitter.
type Params struct {
	LifetimeMin, LifetimeMax float64 // seconds
	SizeMin, SizeMax         float64
	StartSpeedMin            float64
	StartSpeedMax            float64
	StartColorMin            Color
	StartColorMax            Color
	Gravity                  float64 // world units/s^2 before the modifier
	GravityModifier          float64
	ShapeRadius              float64 // particles spawn on a circle of this radius
	MaxParticles             int
	PixelsPerUnit            float64
}

// Particle is a live particle in pixel space, y pointing down.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Size      float64
	Color     Color
	startSize float64
	startA    float64
	fade      *gween.Tween
}

type Emitter struct {
	params      Params
	x, y        float64
	rate        float64
	accumulator float64
	speedMin    float64
	speedMax    float64
	particles   []Particle
	rng         *rand.Rand
}

// NewEmitter creates an emitter with its own random source seeded by seed.
func NewEmitter(p Params, seed uint64) *Emitter {
	if p.PixelsPerUnit <= 0 {
		p.PixelsPerUnit = 1
	}
	return &Emitter{
		params:    p,
		speedMin:  p.StartSpeedMin,
		speedMax:  p.StartSpeedMax,
		particles: make([]Particle, 0, p.MaxParticles),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// SetPosition moves the spawn point. Live particles are simulated in world
// space and do not follow.
func (e *Emitter) SetPosition(x, y float64) {
	e.x, e.y = x, y
}

func (e *Emitter) SetContinuousRate(rate float64) {
	if rate <= 0 {
		rate = 0
		e.accumulator = 0
	}
	e.rate = rate
}

func (e *Emitter) SetBurstSpeedRange(min, max float64) {
	e.speedMin, e.speedMax = min, max
}

func (e *Emitter) SetStartColorAlphaRange(min, max float64) {
	e.params.StartColorMin.A = min
	e.params.StartColorMax.A = max
}

// EmitBurst spawns count particles immediately, up to MaxParticles alive.
func (e *Emitter) EmitBurst(count int) {
	for i := 0; i < count; i++ {
		if !e.spawn() {
			return
		}
	}
}

// Update advances every particle by dt seconds and runs continuous emission.
func (e *Emitter) Update(dt float64) {
	gravity := e.params.Gravity * e.params.GravityModifier * e.params.PixelsPerUnit

	alive := e.particles[:0]
	for _, p := range e.particles {
		f, done := p.fade.Update(float32(dt))
		if done {
			continue
		}
		p.VY += gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Color.A = p.startA * float64(f)
		p.Size = p.startSize * float64(f)
		alive = append(alive, p)
	}
	e.particles = alive

	if e.rate <= 0 {
		return
	}
	e.accumulator += e.rate * dt
	for e.accumulator >= 1 {
		e.accumulator--
		if !e.spawn() {
			e.accumulator = 0
			break
		}
	}
}

func (e *Emitter) spawn() bool {
	if len(e.particles) >= e.params.MaxParticles {
		return false
	}
	p := e.params
	ppu := p.PixelsPerUnit

	angle := e.rng.Float64() * 2 * math.Pi
	dirX, dirY := math.Cos(angle), math.Sin(angle)
	speed := e.between(e.speedMin, e.speedMax) * ppu
	lifetime := e.between(p.LifetimeMin, p.LifetimeMax)
	if lifetime <= 0 {
		return true
	}
	size := e.between(p.SizeMin, p.SizeMax) * ppu
	color := lerpColor(p.StartColorMin, p.StartColorMax, e.rng.Float64())

	e.particles = append(e.particles, Particle{
		X:         e.x + dirX*p.ShapeRadius*ppu,
		Y:         e.y + dirY*p.ShapeRadius*ppu,
		VX:        dirX * speed,
		VY:        dirY * speed,
		Size:      size,
		Color:     color,
		startSize: size,
		startA:    color.A,
		fade:      gween.New(1, 0, float32(lifetime), ease.Linear),
	})
	return true
}

func (e *Emitter) between(lo, hi float64) float64 {
	return lo + (hi-lo)*e.rng.Float64()
}

// Particles returns the live particles. The slice is reused on the next Update.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

func (e *Emitter) Alive() int {
	return len(e.particles)
}

func (e *Emitter) Rate() float64 {
	return e.rate
}

// SpeedRange is the start speed range new particles draw from.
func (e *Emitter) SpeedRange() (min, max float64) {
	return e.speedMin, e.speedMax
}

// AlphaRange is the start alpha range new particles draw from.
func (e *Emitter) AlphaRange() (min, max float64) {
	return e.params.StartColorMin.A, e.params.StartColorMax.A
}

// Idle reports whether the emitter has nothing alive and nothing to emit.
func (e *Emitter) Idle() bool {
	return e.rate == 0 && len(e.particles) == 0
}
