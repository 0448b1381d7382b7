package dirt

// Controller owns the per-entity emission state and drives an Emitter from
// a MovementProvider once per tick. It is not safe for concurrent use; it is
// ticked from the game's update loop after movement has been resolved.
type Controller struct {
	cal           *Calibration
	state         State
	provider      MovementProvider
	probe         CollisionProbe
	emitter       Emitter
	authoritative bool
	muted         bool
}

// NewController validates s, seeds the grounded state from the first motion
// sample and configures the emitter. A nil probe never suppresses.
// Non-authoritative controllers get their start alpha dimmed once, here.
func NewController(s Settings, provider MovementProvider, probe CollisionProbe, emitter Emitter, authoritative bool) (*Controller, error) {
	if provider == nil {
		return nil, ErrNoMovementProvider
	}
	if emitter == nil {
		return nil, ErrNoEmitter
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cal:           NewCalibration(s, provider),
		provider:      provider,
		probe:         probe,
		emitter:       emitter,
		authoritative: authoritative,
	}
	c.state.WasGrounded = provider.Motion().Grounded

	emitter.SetContinuousRate(0)
	c.applyStartAlpha()
	return c, nil
}

// Reconfigure swaps in new calibration while keeping the transition state.
func (c *Controller) Reconfigure(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.cal = NewCalibration(s, c.provider)
	c.applyStartAlpha()
	return nil
}

// Update runs one tick with the probe centred at (x, y).
func (c *Controller) Update(x, y float64) Command {
	motion := c.provider.Motion()
	in := Input{Motion: motion}
	if !motion.Dead {
		in.Excluded = c.overlapsExcluded(x, y)
	}

	var cmd Command
	if c.muted {
		cmd = c.stepMuted(in)
	} else {
		c.state, cmd = Step(c.cal, c.state, in)
	}
	Apply(c.emitter, cmd)
	return cmd
}

// SetMuted silences the emitter while still following grounded and falling
// transitions, so unmuting neither fires a stale burst nor misses a rate write.
func (c *Controller) SetMuted(muted bool) {
	c.muted = muted
}

func (c *Controller) Muted() bool {
	return c.muted
}

// stepMuted advances the transition state and holds the rate at 0.
func (c *Controller) stepMuted(in Input) Command {
	rate := c.state.Rate
	c.state, _ = Step(c.cal, c.state, in)
	c.state.Rate = rate

	cmd := Command{Suppressed: true}
	c.state.setRate(&cmd, 0)
	return cmd
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Settings() Settings {
	return c.cal.Settings
}

func (c *Controller) Authoritative() bool {
	return c.authoritative
}

func (c *Controller) overlapsExcluded(x, y float64) bool {
	s := c.cal.Settings
	if c.probe == nil || s.ExcludedTags.Empty() {
		return false
	}
	return c.probe.OverlapsExcluded(x, y, s.CollisionCheck, s.ExcludedTags)
}

func (c *Controller) applyStartAlpha() {
	s := c.cal.Settings
	lo, hi := s.StartAlphaMin, s.StartAlphaMax
	if !c.authoritative {
		lo *= s.RemotePlayerOpacityMultiplier
		hi *= s.RemotePlayerOpacityMultiplier
	}
	c.emitter.SetStartColorAlphaRange(lo, hi)
}
