// Package dirt turns per-tick player movement into dirt particle emission:
// a continuous stream while walking, a burst on jump and a burst on landing.
// It has no dependency on ebiten, donburi or resolv so the same controller
// drives local players, replicated remote players and unit tests.
package dirt

// MotionSample is the movement state read once per tick.
// VerticalSpeed is in world units per second with downward motion negative.
type MotionSample struct {
	Grounded        bool
	VerticalSpeed   float64
	HorizontalSpeed float64
	Dead            bool
}

// Mask is a set of collision tags. Overlapping anything carrying one of
// these tags suppresses emission. An empty mask disables the probe entirely.
type Mask []string

func (m Mask) Empty() bool {
	return len(m) == 0
}

// MovementProvider exposes the state of the entity the controller follows.
type MovementProvider interface {
	Motion() MotionSample
	// JumpForceRange is the slowest and fastest take-off speed in world units per second.
	JumpForceRange() (min, max float64)
	MaxSpeed() float64
}

// CollisionProbe reports whether a circle at (x, y) overlaps any collider
// tagged by mask, other than the followed entity itself.
type CollisionProbe interface {
	OverlapsExcluded(x, y, radius float64, mask Mask) bool
}

// Emitter receives emission commands.
type Emitter interface {
	SetContinuousRate(rate float64)
	SetBurstSpeedRange(min, max float64)
	EmitBurst(count int)
	SetStartColorAlphaRange(min, max float64)
}

type BurstKind int

const (
	BurstNone BurstKind = iota
	BurstJump
	BurstLanding
)

func (k BurstKind) String() string {
	switch k {
	case BurstJump:
		return "jump"
	case BurstLanding:
		return "landing"
	default:
		return "none"
	}
}

// Burst is a one-shot emission request.
type Burst struct {
	Kind     BurstKind
	Count    int
	SpeedMin float64
	SpeedMax float64
}

// Command is the emission output of one tick. SetRate is false when the
// continuous rate is unchanged and no write is needed.
type Command struct {
	Rate       float64
	SetRate    bool
	Burst      Burst
	Suppressed bool
}

// State is everything the controller carries between ticks.
type State struct {
	WasGrounded      bool
	LastFallingSpeed float64
	Rate             float64
}

// Input is what Step needs from the outside world for one tick.
type Input struct {
	Motion   MotionSample
	Excluded bool
}
