package systems

import (
	"math"
	"testing"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/dirt"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/automoto/dirtrace/systems/factory"
)

func TestReplicaFollowsSnapshots(t *testing.T) {
	e := newTestECS(t)
	rival := factory.CreateRival(e, 1, "Mudskipper", 100, groundY)
	replica := factory.CreateReplicaOf(e, rival)

	rivalObj := components.Object.Get(rival)
	startX := rivalObj.X
	rivalObj.X += 30
	rivalObj.Update()
	components.Physics.Get(rival).SpeedX = 3
	components.State.Get(rival).CurrentState = cfg.Running
	PublishNetState(e)

	// Nothing arrives until a full snapshot interval has passed
	for i := 0; i < cfg.Net.SnapshotInterval-1; i++ {
		UpdateReplicas(e)
	}
	if components.NetInterp.Get(replica).TargetX != startX {
		t.Fatal("snapshot delivered early")
	}
	UpdateReplicas(e)

	interp := components.NetInterp.Get(replica)
	if interp.TargetX != startX+30 || interp.T != 0 {
		t.Fatalf("expected fresh snapshot toward %v, got %+v", startX+30, interp)
	}
	state := netcomponents.NetPlayerState.Get(replica)
	if state.StateID != cfg.Running || state.IsLocal {
		t.Errorf("unexpected replicated state %+v", state)
	}
	if netcomponents.NetVelocity.Get(replica).SpeedX != 3 {
		t.Error("velocity not replicated")
	}

	UpdateRemotePlayers(e)
	obj := components.Object.Get(replica)
	if math.Abs(obj.X-(startX+10)) > 1e-9 {
		t.Errorf("expected replica a third of the way at %v, got %v", startX+10, obj.X)
	}

	for i := 0; i < cfg.Net.SnapshotInterval; i++ {
		UpdateRemotePlayers(e)
	}
	if obj.X != startX+30 {
		t.Errorf("expected replica at the snapshot %v, got %v", startX+30, obj.X)
	}
}

func TestReplicaSnapsOverLongDistances(t *testing.T) {
	e := newTestECS(t)
	rival := factory.CreateRival(e, 1, "Mudskipper", 100, groundY)
	replica := factory.CreateReplicaOf(e, rival)

	components.Object.Get(rival).X = 400
	PublishNetState(e)
	for i := 0; i < cfg.Net.SnapshotInterval; i++ {
		UpdateReplicas(e)
	}
	UpdateRemotePlayers(e)

	if x := components.Object.Get(replica).X; x != 400 {
		t.Errorf("expected replica to snap to 400, got %v", x)
	}
}

func TestReplicaOfRemovedSourceHolds(t *testing.T) {
	e := newTestECS(t)
	rival := factory.CreateRival(e, 1, "Mudskipper", 100, groundY)
	replica := factory.CreateReplicaOf(e, rival)
	before := *netcomponents.NetPosition.Get(replica)

	e.World.Remove(rival.Entity())
	for i := 0; i < 2*cfg.Net.SnapshotInterval; i++ {
		UpdateReplicas(e)
		UpdateRemotePlayers(e)
	}

	if got := *netcomponents.NetPosition.Get(replica); got != before {
		t.Errorf("replica moved without a source: %+v -> %+v", before, got)
	}
}

func TestReplicaDirtIsNotAuthoritative(t *testing.T) {
	e := newTestECS(t)
	startRace(e, 0)
	rival := factory.CreateRival(e, 1, "Mudskipper", 100, groundY)
	replica := factory.CreateReplicaOf(e, rival)
	de := dirtOf(t, e, replica)

	if de.Controller.Authoritative() {
		t.Fatal("replica dirt must not be authoritative")
	}

	// Let the rival run long enough for snapshots to carry its speed
	for i := 0; i < 30; i++ {
		tick(e)
	}
	if de.Particles.Rate() <= 0 {
		t.Error("expected the replica to kick up dirt from replicated movement")
	}
}

func TestPublishRaceState(t *testing.T) {
	e := newTestECS(t)
	race := startRace(e, 120)
	race.Results = append(race.Results, components.RaceResult{Name: "Dusty", Time: 1.5})

	PublishNetState(e)

	raceEntry, _ := components.Race.First(e.World)
	net := netcomponents.NetRaceState.Get(raceEntry)
	if net.State != cfg.RaceStateRacing || net.Clock != 2 {
		t.Errorf("unexpected replicated race %+v", net)
	}
	if len(net.Results) != 1 || net.Results[0] != (netcomponents.NetFinish{Name: "Dusty", Time: 1.5}) {
		t.Errorf("unexpected replicated results %+v", net.Results)
	}
}

// replicaJumpBurst jumps the rival right after a snapshot, releasing after
// holdFrames, and returns the burst its replica kicks up at the next snapshot.
func replicaJumpBurst(t *testing.T, holdFrames int) dirt.Burst {
	t.Helper()
	e := newTestECS(t)
	rival := factory.CreateRival(e, 1, "Mudskipper", 100, groundY)
	replica := factory.CreateReplicaOf(e, rival)
	de := dirtOf(t, e, replica)
	input := components.PlayerInput.Get(rival)

	step := func() {
		UpdatePlayerPhysics(e)
		PublishNetState(e)
		UpdateReplicas(e)
		UpdateRemotePlayers(e)
		UpdateDirtEmitters(e)
	}

	// Settle on the ground and line up with a snapshot
	for i := 0; i < 30 || components.Replica.Get(replica).Frames != 0; i++ {
		step()
	}

	for i := 0; i < cfg.Net.SnapshotInterval; i++ {
		input.Jump = i < holdFrames
		step()
	}
	return de.LastCmd.Burst
}

func TestReplicaJumpBurstFollowsJumpHeight(t *testing.T) {
	tapped := replicaJumpBurst(t, 1)
	held := replicaJumpBurst(t, cfg.Net.SnapshotInterval)

	if tapped.Kind != dirt.BurstJump || held.Kind != dirt.BurstJump {
		t.Fatalf("expected jump bursts from both replicas, got %+v and %+v", tapped, held)
	}
	if tapped.Count >= held.Count {
		t.Errorf("expected a tapped jump to kick up less dirt than a held one, got %d and %d", tapped.Count, held.Count)
	}
	if tapped.Count != int(cfg.Dirt.JumpBurstCountMin) {
		t.Errorf("expected the cut jump at the bottom of the range (%v), got %d", cfg.Dirt.JumpBurstCountMin, tapped.Count)
	}
}
