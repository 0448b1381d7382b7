package config

import (
	"github.com/automoto/dirtrace/dirt"
	"github.com/automoto/dirtrace/particles"
)

// gravity in world units per second squared, before a particle's modifier
const gravity = 9.81

// DirtSettings is the controller calibration for the live config.
func DirtSettings() dirt.Settings {
	return Dirt.Settings()
}

// Settings maps the dirt config onto controller calibration.
func (d DirtConfig) Settings() dirt.Settings {
	return dirt.Settings{
		ExcludedTags:   dirt.Mask(append([]string(nil), d.ExcludedTags...)),
		CollisionCheck: d.CollisionCheckSize,

		BaseEmissionRate:          d.BaseEmissionRate,
		WalkingEmissionMultiplier: d.WalkingEmissionMultiplier,

		EnableJumpParticles: d.EnableJumpParticles,
		JumpBurstCountMin:   d.JumpBurstCountMin,
		JumpBurstCountMax:   d.JumpBurstCountMax,
		JumpBurstSpeedMin:   d.JumpBurstSpeedMin,
		JumpBurstSpeedMax:   d.JumpBurstSpeedMax,

		EnableLandingParticles: d.EnableLandingParticles,
		LandingBurstCountMin:   d.LandingBurstCountMin,
		LandingBurstCountMax:   d.LandingBurstCountMax,
		LandingBurstSpeedMin:   d.LandingBurstSpeedMin,
		LandingBurstSpeedMax:   d.LandingBurstSpeedMax,
		MinimumLandingForce:    d.MinimumLandingForce,
		MaximumLandingForce:    d.MaximumLandingForce,

		StartAlphaMin:                 d.DirtColorMin.A,
		StartAlphaMax:                 d.DirtColorMax.A,
		RemotePlayerOpacityMultiplier: d.RemotePlayerOpacityMultiplier,
	}
}

// DirtParticleParams returns the emitter setup for dirt particles.
func DirtParticleParams() particles.Params {
	d := Dirt
	return particles.Params{
		LifetimeMin:     d.ParticleLifetimeMin,
		LifetimeMax:     d.ParticleLifetimeMax,
		SizeMin:         d.ParticleSizeMin,
		SizeMax:         d.ParticleSizeMax,
		StartSpeedMin:   0.2,
		StartSpeedMax:   1.0,
		StartColorMin:   particles.Color(d.DirtColorMin),
		StartColorMax:   particles.Color(d.DirtColorMax),
		Gravity:         gravity,
		GravityModifier: d.GravityModifier,
		ShapeRadius:     d.ShapeRadius,
		MaxParticles:    d.MaxParticles,
		PixelsPerUnit:   World.PixelsPerUnit,
	}
}

// FireworksParams returns the emitter setup for one finish line firework.
func FireworksParams() particles.Params {
	r := Race
	return particles.Params{
		LifetimeMin:     0.6,
		LifetimeMax:     1.4,
		SizeMin:         0.1,
		SizeMax:         0.25,
		StartSpeedMin:   r.FireworksSpeedMin,
		StartSpeedMax:   r.FireworksSpeedMax,
		StartColorMin:   particles.Color{R: 1, G: 0.8, B: 0.2, A: 1},
		StartColorMax:   particles.Color{R: 1, G: 0.3, B: 0.6, A: 1},
		Gravity:         gravity,
		GravityModifier: 0.3,
		MaxParticles:    r.FireworksBurstSize,
		PixelsPerUnit:   World.PixelsPerUnit,
	}
}
