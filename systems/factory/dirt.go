package factory

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/dirtrace/archetypes"
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/dirt"
	"github.com/automoto/dirtrace/particles"
	"github.com/automoto/dirtrace/shared/gamemath"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var _ dirt.Emitter = (*particles.Emitter)(nil)

// ErrNoTarget is returned when a dirt emitter is asked to follow nothing.
var ErrNoTarget = errors.New("dirt emitter has no player target")

// CreateDirtEmitter attaches a dirt controller to target. Bodies with
// physics are read directly and are authoritative; replicas are read through
// their replicated state and dimmed.
func CreateDirtEmitter(ecs *ecs.ECS, target *donburi.Entry) (*donburi.Entry, error) {
	if target == nil || !target.Valid() || !target.HasComponent(components.Object) {
		return nil, ErrNoTarget
	}

	provider, authoritative := MovementFor(target)
	if provider == nil {
		return nil, fmt.Errorf("%w: target has neither physics nor replicated state", dirt.ErrNoMovementProvider)
	}

	emitter := particles.NewEmitter(cfg.DirtParticleParams(), rand.Uint64())
	x, y := Feet(components.Object.Get(target).Object)
	emitter.SetPosition(x, y)

	var probe dirt.CollisionProbe
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		probe = NewSpaceProbe(components.Space.Get(spaceEntry), components.Object.Get(target).Object)
	}

	ctrl, err := dirt.NewController(cfg.DirtSettings(), provider, probe, emitter, authoritative)
	if err != nil {
		return nil, fmt.Errorf("creating dirt controller: %w", err)
	}

	entry := archetypes.DirtEmitter.Spawn(ecs)
	components.DirtEmitter.SetValue(entry, components.DirtEmitterData{
		Controller: ctrl,
		Particles:  emitter,
		Target:     target,
	})
	return entry, nil
}

// MovementFor picks the movement provider for target and whether this
// process is authoritative for it.
func MovementFor(target *donburi.Entry) (dirt.MovementProvider, bool) {
	authoritative := true
	if target.HasComponent(netcomponents.NetPlayerState) {
		authoritative = netcomponents.NetPlayerState.Get(target).IsLocal
	}

	switch {
	case target.HasComponent(components.Physics):
		return PhysicsMovement{Entry: target}, authoritative
	case target.HasComponent(netcomponents.NetVelocity) && target.HasComponent(netcomponents.NetPlayerState):
		return NetMovement{Entry: target}, false
	}
	return nil, false
}

// Feet returns the bottom centre of obj, where dirt is kicked up.
func Feet(obj *resolv.Object) (x, y float64) {
	return obj.X + obj.W/2, obj.Y + obj.H
}

func worldSpeed(pixelsPerFrame float64) float64 {
	return gamemath.PixelsToWorld(pixelsPerFrame, cfg.World.TPS, cfg.World.PixelsPerUnit)
}

// PhysicsMovement reads a simulated body. Physics speeds are pixels per
// frame with y down; samples are world units per second with y up.
type PhysicsMovement struct {
	Entry *donburi.Entry
}

func (m PhysicsMovement) Motion() dirt.MotionSample {
	phys := components.Physics.Get(m.Entry)
	return dirt.MotionSample{
		Grounded:        phys.OnGround != nil,
		VerticalSpeed:   -worldSpeed(phys.SpeedY),
		HorizontalSpeed: worldSpeed(phys.SpeedX),
		Dead:            m.Entry.HasComponent(components.Death),
	}
}

// JumpForceRange spans a cut jump to a full one. Liftoff is seen on the
// press frame, before a release can cut the rise, so a locally simulated
// body always takes off near the top of the range and its jump bursts are
// effectively fixed-size. Replicas sample takeoff from snapshots that may
// arrive after the cut, which is where the lower end of the range shows up.
func (m PhysicsMovement) JumpForceRange() (min, max float64) {
	return worldSpeed(cfg.Player.MinJumpSpeed), worldSpeed(cfg.Player.JumpSpeed)
}

func (m PhysicsMovement) MaxSpeed() float64 {
	return worldSpeed(components.Physics.Get(m.Entry).MaxSpeed)
}

// NetMovement reads a replica through its replicated velocity and state.
type NetMovement struct {
	Entry *donburi.Entry
}

func (m NetMovement) Motion() dirt.MotionSample {
	state := netcomponents.NetPlayerState.Get(m.Entry)
	vel := netcomponents.NetVelocity.Get(m.Entry)
	return dirt.MotionSample{
		Grounded:        state.StateID.Grounded(),
		VerticalSpeed:   -worldSpeed(vel.SpeedY),
		HorizontalSpeed: worldSpeed(vel.SpeedX),
		Dead:            state.StateID == cfg.Die,
	}
}

// JumpForceRange matches PhysicsMovement so both sides scale bursts alike.
func (m NetMovement) JumpForceRange() (min, max float64) {
	return worldSpeed(cfg.Player.MinJumpSpeed), worldSpeed(cfg.Player.JumpSpeed)
}

func (m NetMovement) MaxSpeed() float64 {
	return worldSpeed(cfg.Player.MaxSpeed)
}

// SpaceProbe tests a circle against the collision space, ignoring the
// followed body.
type SpaceProbe struct {
	space *resolv.Space
	self  *resolv.Object
	probe *resolv.Object
}

func NewSpaceProbe(space *resolv.Space, self *resolv.Object) *SpaceProbe {
	return &SpaceProbe{
		space: space,
		self:  self,
		probe: resolv.NewObject(0, 0, 1, 1),
	}
}

// OverlapsExcluded takes the centre in pixels and the radius in world units.
func (p *SpaceProbe) OverlapsExcluded(x, y, radius float64, mask dirt.Mask) bool {
	r := radius * cfg.World.PixelsPerUnit
	p.probe.X, p.probe.Y = x-r, y-r
	p.probe.W, p.probe.H = 2*r+1, 2*r+1

	p.space.Add(p.probe)
	defer p.space.Remove(p.probe)

	check := p.probe.Check(0, 0, mask...)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if o == p.self || o == p.probe || !o.HasTags(mask...) {
			continue
		}
		if gamemath.CircleOverlapsRect(x, y, r, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}
