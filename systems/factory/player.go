package factory

import (
	"log"

	"github.com/automoto/dirtrace/archetypes"
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/automoto/dirtrace/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the locally controlled racer with its feet at (x, y)
// and attaches an authoritative dirt emitter.
func CreatePlayer(ecs *ecs.ECS, index int, name string, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	initRacer(ecs, player, index, name, x, y, tags.ResolvPlayer)

	setNetState(player, name, true)

	if _, err := CreateDirtEmitter(ecs, player); err != nil {
		log.Printf("Warning: no dirt for %s: %v", name, err)
	}
	return player
}

// CreateRival creates a bot-driven racer body. It is simulated like the
// player but never drawn; CreateRemotePlayer builds what is seen of it.
func CreateRival(ecs *ecs.ECS, index int, name string, x, y float64) *donburi.Entry {
	rival := archetypes.Rival.Spawn(ecs)
	initRacer(ecs, rival, index, name, x, y, tags.ResolvRival)

	setNetState(rival, name, false)
	components.Bot.SetValue(rival, components.BotData{})
	return rival
}

func initRacer(ecs *ecs.ECS, e *donburi.Entry, index int, name string, x, y float64, tag string) {
	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)

	obj := resolv.NewObject(x-w/2, y-h, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(e, components.PlayerData{
		Index:     index,
		Name:      name,
		Direction: 1,
		SpawnX:    obj.X,
		SpawnY:    obj.Y,
	})
	components.State.SetValue(e, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	netcomponents.NetPosition.SetValue(e, netcomponents.NetPositionData{X: obj.X, Y: obj.Y})
}

func setNetState(e *donburi.Entry, name string, local bool) {
	netcomponents.NetPlayerState.SetValue(e, netcomponents.NetPlayerStateData{
		StateID:   cfg.Idle,
		Direction: 1,
		Name:      name,
		IsLocal:   local,
	})
}
