package systems

import (
	"math"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/gamemath"
	"github.com/automoto/dirtrace/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerPhysics moves every racer one frame: input, friction,
// variable-height jump, gravity and collision against solids.
func UpdatePlayerPhysics(e *ecs.ECS) {
	canMove := raceAllowsMovement(e)

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Player) || !entry.HasComponent(components.Object) {
			return
		}
		// Freeze in place during the death delay
		if entry.HasComponent(components.Death) {
			return
		}

		var input components.PlayerInputData
		if canMove && entry.HasComponent(components.PlayerInput) {
			input = *components.PlayerInput.Get(entry)
		}
		player := components.Player.Get(entry)
		if player.Spectating {
			input = components.PlayerInputData{}
		}

		stepPlayerPhysics(player, components.Physics.Get(entry), components.Object.Get(entry).Object, input)
		updateState(entry)
	})
}

func raceAllowsMovement(e *ecs.ECS) bool {
	raceEntry, ok := components.Race.First(e.World)
	if !ok {
		return true
	}
	state := components.Race.Get(raceEntry).State
	return state == cfg.RaceStateRacing || state == cfg.RaceStateFinished
}

func stepPlayerPhysics(player *components.PlayerData, phys *components.PhysicsData, obj *resolv.Object, input components.PlayerInputData) {
	// --- Horizontal input ---
	dir := 0
	if input.Left {
		dir--
	}
	if input.Right {
		dir++
	}
	if dir != 0 {
		phys.SpeedX += float64(dir) * cfg.Player.Acceleration
		player.Direction = dir
	}

	// --- Jump (edge-triggered) ---
	if input.Jump && !player.JumpWasPressed && phys.OnGround != nil {
		phys.SpeedY = -cfg.Player.JumpSpeed
		phys.OnGround = nil
	}
	// Releasing early cuts the rise short
	if !input.Jump && phys.SpeedY < -cfg.Player.MinJumpSpeed {
		phys.SpeedY = -cfg.Player.MinJumpSpeed
	}
	player.JumpWasPressed = input.Jump

	// --- Friction (ground only) ---
	if phys.OnGround != nil {
		phys.SpeedX = gamemath.ApplyFriction(phys.SpeedX, phys.Friction)
	}
	phys.SpeedX = gamemath.ClampSpeed(phys.SpeedX, phys.MaxSpeed)

	// --- Gravity ---
	phys.SpeedY += phys.Gravity
	if phys.SpeedY > cfg.Physics.MaxFallSpeed {
		phys.SpeedY = cfg.Physics.MaxFallSpeed
	}

	// --- Resolve horizontal collision ---
	if dx := phys.SpeedX; dx != 0 {
		if solid := solidHit(obj, dx, 0); solid != nil {
			if dx > 0 {
				obj.X = solid.X - obj.W
			} else {
				obj.X = solid.X + solid.W
			}
			phys.SpeedX = 0
		} else {
			obj.X += dx
		}
	}

	// --- Resolve vertical collision ---
	dy := gamemath.ClampSpeed(phys.SpeedY, cfg.Physics.VerticalSpeedClamp)
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	if solid := solidHit(obj, 0, checkDist); solid != nil {
		if dy >= 0 {
			// Landing
			obj.Y = solid.Y - obj.H
			phys.OnGround = solid
		} else {
			// Hitting ceiling
			obj.Y = solid.Y + solid.H
		}
		phys.SpeedY = 0
	} else {
		phys.OnGround = nil
		obj.Y += dy
	}

	obj.Update()
}

// solidHit returns the nearest solid the object would overlap after moving
// by (dx, dy). Only one of dx and dy is expected to be non-zero.
func solidHit(obj *resolv.Object, dx, dy float64) *resolv.Object {
	if obj.Space == nil {
		return nil
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var nearest *resolv.Object
	best := math.MaxFloat64
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if !gamemath.RectsOverlap(obj.X+dx, obj.Y+dy, obj.W, obj.H, s.X, s.Y, s.W, s.H) {
			continue
		}
		var gap float64
		switch {
		case dx > 0:
			gap = s.X - (obj.X + obj.W)
		case dx < 0:
			gap = obj.X - (s.X + s.W)
		case dy >= 0:
			gap = s.Y - (obj.Y + obj.H)
		default:
			gap = obj.Y - (s.Y + s.H)
		}
		if gap < best {
			best = gap
			nearest = s
		}
	}
	return nearest
}

// updateState derives the racer's state from its physics.
func updateState(entry *donburi.Entry) {
	if !entry.HasComponent(components.State) {
		return
	}
	state := components.State.Get(entry)
	next := deriveState(entry)
	if next != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
		return
	}
	state.StateTimer++
}

func deriveState(entry *donburi.Entry) cfg.StateID {
	if entry.HasComponent(components.Death) {
		return cfg.Die
	}
	if entry.HasComponent(components.Player) && components.Player.Get(entry).Spectating {
		return cfg.Spectate
	}
	phys := components.Physics.Get(entry)
	if phys.OnGround == nil {
		if phys.SpeedY < 0 {
			return cfg.Jump
		}
		return cfg.Fall
	}
	if math.Abs(phys.SpeedX) >= 0.1 {
		return cfg.Running
	}
	return cfg.Idle
}
