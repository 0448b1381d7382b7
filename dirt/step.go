package dirt

import "math"

// walkingThreshold is the horizontal speed below which a grounded player
// counts as standing still.
const walkingThreshold = 0.1

const (
	jumpSpeedSpread    = 0.5
	landingSpeedSpread = 0.3
)

// forceRange maps a value onto [0,1] across [min, max].
// A zero or negative width range always yields 1.
type forceRange struct {
	min        float64
	inverse    float64
	degenerate bool
}

func newForceRange(min, max float64) forceRange {
	if max-min <= 0 {
		return forceRange{min: min, degenerate: true}
	}
	return forceRange{min: min, inverse: 1 / (max - min)}
}

func (r forceRange) factor(v float64) float64 {
	if r.degenerate {
		return 1
	}
	return clamp01((v - r.min) * r.inverse)
}

// Calibration is Settings with the inverse ranges precomputed.
type Calibration struct {
	Settings Settings

	jump    forceRange
	landing forceRange
	walking forceRange
}

// NewCalibration precomputes the normalisation ranges for s against the
// static movement limits of p.
func NewCalibration(s Settings, p MovementProvider) *Calibration {
	minJump, maxJump := p.JumpForceRange()
	return &Calibration{
		Settings: s,
		jump:     newForceRange(minJump, maxJump),
		landing:  newForceRange(s.MinimumLandingForce, s.MaximumLandingForce),
		walking:  newForceRange(0, p.MaxSpeed()),
	}
}

// Step advances the controller by one tick. It is pure: the returned State
// replaces st and the returned Command says what the emitter should do.
func Step(cal *Calibration, st State, in Input) (State, Command) {
	var cmd Command
	m := in.Motion
	s := cal.Settings

	if m.Dead || in.Excluded {
		cmd.Suppressed = true
		st.setRate(&cmd, 0)
		return st, cmd
	}

	if !m.Grounded && m.VerticalSpeed < 0 {
		st.LastFallingSpeed = math.Abs(m.VerticalSpeed)
	}

	switch {
	case st.WasGrounded && !m.Grounded && m.VerticalSpeed > 0:
		if s.EnableJumpParticles {
			cmd.Burst = jumpBurst(cal, m.VerticalSpeed)
		}
	case !st.WasGrounded && m.Grounded:
		if s.EnableLandingParticles && st.LastFallingSpeed >= s.MinimumLandingForce {
			cmd.Burst = landingBurst(cal, st.LastFallingSpeed)
		}
		st.LastFallingSpeed = 0
	}

	rate := 0.0
	if m.Grounded {
		speed := math.Abs(m.HorizontalSpeed)
		if speed > walkingThreshold {
			rate = s.BaseEmissionRate * cal.walking.factor(speed) * s.WalkingEmissionMultiplier
		}
	}
	st.setRate(&cmd, rate)

	st.WasGrounded = m.Grounded
	return st, cmd
}

func (st *State) setRate(cmd *Command, rate float64) {
	cmd.Rate = rate
	if st.Rate != rate {
		cmd.SetRate = true
		st.Rate = rate
	}
}

func jumpBurst(cal *Calibration, jumpForce float64) Burst {
	s := cal.Settings
	f := cal.jump.factor(jumpForce)
	speed := lerp(s.JumpBurstSpeedMin, s.JumpBurstSpeedMax, f)
	return Burst{
		Kind:     BurstJump,
		Count:    roundToInt(lerp(s.JumpBurstCountMin, s.JumpBurstCountMax, f)),
		SpeedMin: speed * jumpSpeedSpread,
		SpeedMax: speed,
	}
}

func landingBurst(cal *Calibration, landingForce float64) Burst {
	s := cal.Settings
	f := cal.landing.factor(landingForce)
	speed := lerp(s.LandingBurstSpeedMin, s.LandingBurstSpeedMax, f)
	return Burst{
		Kind:     BurstLanding,
		Count:    roundToInt(lerp(s.LandingBurstCountMin, s.LandingBurstCountMax, f)),
		SpeedMin: speed * landingSpeedSpread,
		SpeedMax: speed,
	}
}

// Apply pushes cmd to e.
func Apply(e Emitter, cmd Command) {
	if cmd.SetRate {
		e.SetContinuousRate(cmd.Rate)
	}
	if cmd.Burst.Kind == BurstNone || cmd.Burst.Count <= 0 {
		return
	}
	e.SetBurstSpeedRange(cmd.Burst.SpeedMin, cmd.Burst.SpeedMax)
	e.EmitBurst(cmd.Burst.Count)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// roundToInt rounds halves to even.
func roundToInt(v float64) int {
	return int(math.RoundToEven(v))
}
