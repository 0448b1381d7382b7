package components

import (
	"github.com/automoto/dirtrace/dirt"
	"github.com/automoto/dirtrace/particles"
	"github.com/yohamta/donburi"
)

// DirtEmitterData attaches a dirt controller and its particles to a racer.
type DirtEmitterData struct {
	Controller *dirt.Controller
	Particles  *particles.Emitter
	Target     *donburi.Entry
	Disabled   bool // Set once when the emitter is misconfigured
	LastCmd    dirt.Command
}

var DirtEmitter = donburi.NewComponentType[DirtEmitterData]()

// ParticleSystemData is a free-standing emitter at a fixed position.
type ParticleSystemData struct {
	Emitter *particles.Emitter
	X, Y    float64
}

var ParticleSystem = donburi.NewComponentType[ParticleSystemData]()

// AutoDestroyData marks entities that should be destroyed after a duration
// or once their particles have died out
type AutoDestroyData struct {
	FramesRemaining int  // frames until destruction (-1 = wait for idle)
	DestroyOnIdle   bool // destroy when the particle system has no live particles
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
