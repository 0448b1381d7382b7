package systems

import (
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/gamemath"
	"github.com/automoto/dirtrace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeath kills racers touching a death zone or falling out of the
// level, and respawns them at their start once the delay runs out.
func UpdateDeath(e *ecs.ECS) {
	var dying, respawning []*donburi.Entry

	levelBottom := 0.0
	if levelEntry, ok := components.Level.First(e.World); ok {
		if lvl := components.Level.Get(levelEntry).CurrentLevel; lvl != nil {
			levelBottom = float64(lvl.MapHeight)
		}
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			death := components.Death.Get(entry)
			death.Timer--
			if death.Timer <= 0 {
				respawning = append(respawning, entry)
			}
			return
		}

		obj := components.Object.Get(entry)
		if levelBottom > 0 && obj.Y > levelBottom {
			dying = append(dying, entry)
			return
		}
		if touchingDeadZone(obj) {
			dying = append(dying, entry)
		}
	})

	// Archetype changes happen outside the query
	for _, entry := range dying {
		kill(entry)
	}
	for _, entry := range respawning {
		respawn(entry)
	}
}

func touchingDeadZone(obj *components.ObjectData) bool {
	if obj.Space == nil {
		return false
	}
	check := obj.Check(0, 0, tags.ResolvDeadZone)
	if check == nil {
		return false
	}
	for _, z := range check.ObjectsByTags(tags.ResolvDeadZone) {
		if gamemath.RectsOverlap(obj.X, obj.Y, obj.W, obj.H, z.X, z.Y, z.W, z.H) {
			return true
		}
	}
	return false
}

func kill(entry *donburi.Entry) {
	entry.AddComponent(components.Death)
	components.Death.SetValue(entry, components.DeathData{
		Timer: cfg.DeathZone.RespawnDelayFrames,
	})

	phys := components.Physics.Get(entry)
	phys.SpeedX = 0
	phys.SpeedY = 0
	updateState(entry)
}

func respawn(entry *donburi.Entry) {
	entry.RemoveComponent(components.Death)

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	obj.X = player.SpawnX
	obj.Y = player.SpawnY
	obj.Update()

	phys := components.Physics.Get(entry)
	phys.SpeedX = 0
	phys.SpeedY = 0
	phys.OnGround = nil
	player.JumpWasPressed = false

	updateState(entry)
}
