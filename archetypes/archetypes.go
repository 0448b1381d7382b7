package archetypes

import (
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/automoto/dirtrace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	NoDirtZone = newArchetype(
		tags.NoDirtZone,
		components.Object,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Physics,
		components.State,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetPlayerState,
	)
	// Rival is a bot-driven body simulated locally and seen only
	// through its replica.
	Rival = newArchetype(
		tags.Rival,
		components.Player,
		components.PlayerInput,
		components.Bot,
		components.Object,
		components.Physics,
		components.State,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetPlayerState,
	)
	RemotePlayer = newArchetype(
		tags.RemotePlayer,
		components.Object,
		components.NetInterp,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetPlayerState,
	)
	DirtEmitter = newArchetype(
		components.DirtEmitter,
	)
	Fireworks = newArchetype(
		tags.Fireworks,
		components.ParticleSystem,
		components.AutoDestroy,
	)
	SpawnPoint = newArchetype(
		components.SpawnPoint,
	)
	Level = newArchetype(
		components.Level,
	)
	Race = newArchetype(
		components.Race,
		components.Notification,
		netcomponents.NetRaceState,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
