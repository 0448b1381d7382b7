package dirt

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoMovementProvider = errors.New("dirt: movement provider is missing")
	ErrNoEmitter          = errors.New("dirt: particle emitter is missing")
	ErrInvalidSettings    = errors.New("dirt: invalid settings")
)

// Settings holds the calibration constants of a controller.
// Forces and speeds are in world units per second.
type Settings struct {
	// Interaction filters
	ExcludedTags   Mask
	CollisionCheck float64 // probe radius

	// Continuous emission
	BaseEmissionRate          float64
	WalkingEmissionMultiplier float64

	// Jump bursts
	EnableJumpParticles bool
	JumpBurstCountMin   float64
	JumpBurstCountMax   float64
	JumpBurstSpeedMin   float64
	JumpBurstSpeedMax   float64

	// Landing bursts
	EnableLandingParticles bool
	LandingBurstCountMin   float64
	LandingBurstCountMax   float64
	LandingBurstSpeedMin   float64
	LandingBurstSpeedMax   float64
	MinimumLandingForce    float64
	MaximumLandingForce    float64

	// Start colour alpha, dimmed for remote players
	StartAlphaMin                 float64
	StartAlphaMax                 float64
	RemotePlayerOpacityMultiplier float64
}

// DefaultSettings returns the tuning used by the game.
func DefaultSettings() Settings {
	return Settings{
		CollisionCheck: 0.2,

		BaseEmissionRate:          5,
		WalkingEmissionMultiplier: 2,

		EnableJumpParticles: true,
		JumpBurstCountMin:   5,
		JumpBurstCountMax:   20,
		JumpBurstSpeedMin:   1,
		JumpBurstSpeedMax:   3,

		EnableLandingParticles: true,
		LandingBurstCountMin:   3,
		LandingBurstCountMax:   15,
		LandingBurstSpeedMin:   0.7,
		LandingBurstSpeedMax:   2.1,
		MinimumLandingForce:    0.5,
		MaximumLandingForce:    10,

		StartAlphaMin:                 0.7,
		StartAlphaMax:                 0.5,
		RemotePlayerOpacityMultiplier: 0.7,
	}
}

// Validate rejects settings that cannot produce sensible emission.
// Zero-width ranges are allowed; they saturate to the maximum.
func (s Settings) Validate() error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"collision check radius", s.CollisionCheck},
		{"base emission rate", s.BaseEmissionRate},
		{"walking emission multiplier", s.WalkingEmissionMultiplier},
		{"jump burst count min", s.JumpBurstCountMin},
		{"jump burst count max", s.JumpBurstCountMax},
		{"jump burst speed min", s.JumpBurstSpeedMin},
		{"jump burst speed max", s.JumpBurstSpeedMax},
		{"landing burst count min", s.LandingBurstCountMin},
		{"landing burst count max", s.LandingBurstCountMax},
		{"landing burst speed min", s.LandingBurstSpeedMin},
		{"landing burst speed max", s.LandingBurstSpeedMax},
		{"minimum landing force", s.MinimumLandingForce},
		{"start alpha min", s.StartAlphaMin},
		{"start alpha max", s.StartAlphaMax},
	}
	for _, v := range nonNegative {
		if !finite(v.value) {
			return fmt.Errorf("%w: %s is not a finite number (%v)", ErrInvalidSettings, v.name, v.value)
		}
		if v.value < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidSettings, v.name, v.value)
		}
	}
	if !finite(s.MaximumLandingForce) {
		return fmt.Errorf("%w: maximum landing force is not a finite number (%v)", ErrInvalidSettings, s.MaximumLandingForce)
	}
	if !finite(s.RemotePlayerOpacityMultiplier) || s.RemotePlayerOpacityMultiplier < 0 || s.RemotePlayerOpacityMultiplier > 1 {
		return fmt.Errorf("%w: remote opacity multiplier %v outside [0,1]", ErrInvalidSettings, s.RemotePlayerOpacityMultiplier)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
