package factory

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/dirt"
	"github.com/automoto/dirtrace/shared/leveldata"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const groundY = 200.0

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	level := &leveldata.LevelData{
		Name:        "test",
		MapWidth:    1000,
		MapHeight:   400,
		SolidRects:  []leveldata.Rect{{X: 0, Y: groundY, W: 1000, H: 40}},
		NoDirtZones: []leveldata.Zone{{Rect: leveldata.Rect{X: 300, Y: 190, W: 100, H: 20}, Tag: leveldata.DefaultNoDirtTag}},
		SpawnPoints: []leveldata.SpawnPoint{{Index: 0, X: 50, Y: groundY}},
	}
	if _, err := CreateLevel(e, level); err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	return e
}

func TestCreateLevelNeedsData(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	if _, err := CreateLevel(e, nil); err == nil {
		t.Error("expected error for nil level")
	}
}

func TestCreatePlayerStandsOnFeet(t *testing.T) {
	e := newTestECS(t)
	player := CreatePlayer(e, 0, "Dusty", 100, groundY)

	x, y := Feet(components.Object.Get(player).Object)
	if x != 100 || y != groundY {
		t.Errorf("expected feet at (100, %v), got (%v, %v)", groundY, x, y)
	}
	if !netcomponents.NetPlayerState.Get(player).IsLocal {
		t.Error("local player must be marked local")
	}

	emitters := 0
	components.DirtEmitter.Each(e.World, func(entry *donburi.Entry) {
		emitters++
		de := components.DirtEmitter.Get(entry)
		if de.Target != player {
			t.Error("dirt emitter follows the wrong entry")
		}
		if !de.Controller.Authoritative() {
			t.Error("local player's dirt must be authoritative")
		}
	})
	if emitters != 1 {
		t.Errorf("expected one dirt emitter, got %d", emitters)
	}
}

func TestCreateDirtEmitterWithoutTarget(t *testing.T) {
	e := newTestECS(t)
	if _, err := CreateDirtEmitter(e, nil); !errors.Is(err, ErrNoTarget) {
		t.Errorf("expected ErrNoTarget, got %v", err)
	}
}

func TestCreateDirtEmitterWithoutMovement(t *testing.T) {
	e := newTestECS(t)
	zone := CreateSolid(e, 0, 0, 10, 10)
	if _, err := CreateDirtEmitter(e, zone); !errors.Is(err, dirt.ErrNoMovementProvider) {
		t.Errorf("expected ErrNoMovementProvider, got %v", err)
	}
}

func TestMovementFor(t *testing.T) {
	e := newTestECS(t)
	player := CreatePlayer(e, 0, "Dusty", 100, groundY)
	rival := CreateRival(e, 1, "Mudskipper", 140, groundY)
	replica := CreateReplicaOf(e, rival)

	if p, auth := MovementFor(player); !auth {
		t.Error("player should be authoritative")
	} else if _, ok := p.(PhysicsMovement); !ok {
		t.Errorf("player should use physics movement, got %T", p)
	}
	if p, auth := MovementFor(rival); auth {
		t.Error("rival body is not owned by this player")
	} else if _, ok := p.(PhysicsMovement); !ok {
		t.Errorf("rival should use physics movement, got %T", p)
	}
	if p, auth := MovementFor(replica); auth {
		t.Error("replica must not be authoritative")
	} else if _, ok := p.(NetMovement); !ok {
		t.Errorf("replica should use replicated movement, got %T", p)
	}
}

func TestReplicaDirtIsDimmed(t *testing.T) {
	e := newTestECS(t)
	rival := CreateRival(e, 1, "Mudskipper", 140, groundY)
	replica := CreateReplicaOf(e, rival)

	var found bool
	components.DirtEmitter.Each(e.World, func(entry *donburi.Entry) {
		de := components.DirtEmitter.Get(entry)
		if de.Target != replica {
			return
		}
		found = true
		lo, hi := de.Particles.AlphaRange()
		m := cfg.Dirt.RemotePlayerOpacityMultiplier
		if math.Abs(lo-cfg.Dirt.DirtColorMin.A*m) > 1e-9 || math.Abs(hi-cfg.Dirt.DirtColorMax.A*m) > 1e-9 {
			t.Errorf("expected dimmed alpha range, got [%v, %v]", lo, hi)
		}
	})
	if !found {
		t.Fatal("replica has no dirt emitter")
	}
}

func TestPhysicsMovementConvertsUnits(t *testing.T) {
	e := newTestECS(t)
	player := CreatePlayer(e, 0, "Dusty", 100, groundY)
	phys := components.Physics.Get(player)
	phys.SpeedX = 4
	phys.SpeedY = -8

	m := PhysicsMovement{Entry: player}.Motion()
	// 4 px/frame at 60 TPS and 16 px/unit
	if m.HorizontalSpeed != 15 {
		t.Errorf("expected horizontal speed 15, got %v", m.HorizontalSpeed)
	}
	if m.VerticalSpeed != 30 {
		t.Errorf("expected rising speed 30, got %v", m.VerticalSpeed)
	}
	if m.Grounded || m.Dead {
		t.Errorf("unexpected flags: %+v", m)
	}
}

func TestNetMovementReadsReplicatedState(t *testing.T) {
	e := newTestECS(t)
	remote := CreateRemotePlayer(e,
		netcomponents.NetPlayerStateData{StateID: cfg.Running, Name: "Clodhopper", IsLocal: true},
		netcomponents.NetPositionData{X: 200, Y: groundY - 24},
	)
	if netcomponents.NetPlayerState.Get(remote).IsLocal {
		t.Error("remote players are never local")
	}
	netcomponents.NetVelocity.SetValue(remote, netcomponents.NetVelocityData{SpeedX: -2})

	m := NetMovement{Entry: remote}.Motion()
	if !m.Grounded {
		t.Error("running state should be grounded")
	}
	if m.HorizontalSpeed != -7.5 {
		t.Errorf("expected horizontal speed -7.5, got %v", m.HorizontalSpeed)
	}

	netcomponents.NetPlayerState.Get(remote).StateID = cfg.Die
	if !(NetMovement{Entry: remote}).Motion().Dead {
		t.Error("die state should read as dead")
	}
}

func TestSpaceProbe(t *testing.T) {
	e := newTestECS(t)
	player := CreatePlayer(e, 0, "Dusty", 350, groundY)
	spaceEntry, _ := components.Space.First(e.World)
	probe := NewSpaceProbe(components.Space.Get(spaceEntry), components.Object.Get(player).Object)
	mask := dirt.Mask{leveldata.DefaultNoDirtTag}

	if !probe.OverlapsExcluded(350, groundY, 0.2, mask) {
		t.Error("expected probe inside the no-dirt zone to hit")
	}
	if probe.OverlapsExcluded(100, groundY, 0.2, mask) {
		t.Error("expected probe outside the zone to miss")
	}
	if probe.OverlapsExcluded(350, groundY, 0.2, dirt.Mask{"water"}) {
		t.Error("expected probe to ignore tags outside the mask")
	}
	// The player's own collider never counts
	if probe.OverlapsExcluded(350, groundY-10, 0.2, dirt.Mask{"Player"}) {
		t.Error("probe must skip the followed body")
	}
	if components.Object.Get(player).Space == nil {
		t.Fatal("probing removed the player from the space")
	}
}

func TestSpawnFireworks(t *testing.T) {
	e := newTestECS(t)
	SpawnFireworks(e, 100, 100)

	bursts := 0
	components.ParticleSystem.Each(e.World, func(entry *donburi.Entry) {
		bursts++
		if components.ParticleSystem.Get(entry).Emitter.Alive() != cfg.Race.FireworksBurstSize {
			t.Errorf("expected %d particles per burst", cfg.Race.FireworksBurstSize)
		}
		if !components.AutoDestroy.Get(entry).DestroyOnIdle {
			t.Error("fireworks should clean up once idle")
		}
	})
	if bursts != cfg.Race.FireworksBursts {
		t.Errorf("expected %d bursts, got %d", cfg.Race.FireworksBursts, bursts)
	}
}
