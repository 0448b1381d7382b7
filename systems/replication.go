package systems

import (
	"math"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/automoto/dirtrace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Replicas further than this from their next snapshot snap instead of sliding.
const snapDistance = 64.0

// PublishNetState writes every simulated racer and the race itself into
// their replicated components, the way a server fills snapshots after its
// physics step.
func PublishNetState(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetPosition) {
			return
		}
		obj := components.Object.Get(entry)
		phys := components.Physics.Get(entry)
		player := components.Player.Get(entry)

		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: obj.X, Y: obj.Y})
		netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{SpeedX: phys.SpeedX, SpeedY: phys.SpeedY})

		state := netcomponents.NetPlayerState.Get(entry)
		state.StateID = components.State.Get(entry).CurrentState
		state.Direction = player.Direction
		state.Finished = player.Finished
	})

	raceEntry, ok := components.Race.First(e.World)
	if !ok || !raceEntry.HasComponent(netcomponents.NetRaceState) {
		return
	}
	race := components.Race.Get(raceEntry)
	net := netcomponents.NetRaceState.Get(raceEntry)
	net.State = race.State
	net.Clock = race.Clock()
	net.Results = net.Results[:0]
	for _, r := range race.Results {
		net.Results = append(net.Results, netcomponents.NetFinish{Name: r.Name, Time: r.Time})
	}
}

// UpdateReplicas delivers snapshots from in-process sources every
// SnapshotInterval frames.
func UpdateReplicas(e *ecs.ECS) {
	components.Replica.Each(e.World, func(entry *donburi.Entry) {
		replica := components.Replica.Get(entry)
		if replica.Source == nil || !replica.Source.Valid() {
			return
		}
		replica.Frames++
		if replica.Frames < cfg.Net.SnapshotInterval {
			return
		}
		replica.Frames = 0

		source := replica.Source
		ApplySnapshot(entry,
			*netcomponents.NetPosition.Get(source),
			*netcomponents.NetVelocity.Get(source),
			*netcomponents.NetPlayerState.Get(source),
		)
	})
}

// ApplySnapshot feeds one replicated snapshot to a remote player. The
// replica slides from where it is drawn now toward the snapshot position.
func ApplySnapshot(entry *donburi.Entry, pos netcomponents.NetPositionData, vel netcomponents.NetVelocityData, state netcomponents.NetPlayerStateData) {
	current := netcomponents.NetPosition.Get(entry)
	interp := components.NetInterp.Get(entry)
	interp.PrevX, interp.PrevY = current.X, current.Y
	interp.TargetX, interp.TargetY = pos.X, pos.Y
	interp.T = 0
	if math.Hypot(interp.TargetX-interp.PrevX, interp.TargetY-interp.PrevY) > snapDistance {
		interp.PrevX, interp.PrevY = interp.TargetX, interp.TargetY
	}

	netcomponents.NetVelocity.SetValue(entry, vel)
	state.IsLocal = false
	netcomponents.NetPlayerState.SetValue(entry, state)
}

// UpdateRemotePlayers moves each replica's collider along its snapshot path.
func UpdateRemotePlayers(e *ecs.ECS) {
	step := 1 / float64(cfg.Net.SnapshotInterval)

	tags.RemotePlayer.Each(e.World, func(entry *donburi.Entry) {
		interp := components.NetInterp.Get(entry)
		interp.T = math.Min(interp.T+step, 1)

		pos := netcomponents.LerpNetPosition(
			netcomponents.NetPositionData{X: interp.PrevX, Y: interp.PrevY},
			netcomponents.NetPositionData{X: interp.TargetX, Y: interp.TargetY},
			interp.T,
		)
		netcomponents.NetPosition.SetValue(entry, *pos)

		obj := components.Object.Get(entry)
		obj.X, obj.Y = pos.X, pos.Y
		obj.Update()
	})
}
