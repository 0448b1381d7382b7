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

// CreateRemotePlayer creates a replica of a racer owned elsewhere. It moves
// only through its replicated components and carries a non-authoritative
// dirt emitter.
func CreateRemotePlayer(ecs *ecs.ECS, state netcomponents.NetPlayerStateData, pos netcomponents.NetPositionData) *donburi.Entry {
	remote := archetypes.RemotePlayer.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(pos.X, pos.Y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = remote
	components.Object.SetValue(remote, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	state.IsLocal = false
	netcomponents.NetPlayerState.SetValue(remote, state)
	netcomponents.NetPosition.SetValue(remote, pos)
	components.NetInterp.SetValue(remote, components.NetInterpData{
		PrevX:       pos.X,
		PrevY:       pos.Y,
		TargetX:     pos.X,
		TargetY:     pos.Y,
		T:           1,
		Initialized: true,
	})

	if _, err := CreateDirtEmitter(ecs, remote); err != nil {
		log.Printf("Warning: no dirt for %s: %v", state.Name, err)
	}
	return remote
}

// CreateReplicaOf creates a remote player mirroring a locally simulated body.
func CreateReplicaOf(ecs *ecs.ECS, source *donburi.Entry) *donburi.Entry {
	state := *netcomponents.NetPlayerState.Get(source)
	pos := *netcomponents.NetPosition.Get(source)

	replica := CreateRemotePlayer(ecs, state, pos)
	replica.AddComponent(components.Replica)
	components.Replica.SetValue(replica, components.ReplicaData{Source: source})
	return replica
}
