package systems

import (
	"testing"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/leveldata"
	"github.com/automoto/dirtrace/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const groundY = 200.0

// newTestECS builds a flat track: ground along the bottom, a no-dirt patch,
// a pit of death and a finish line near the end.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	t.Cleanup(func() { dirtEnabled = true })

	e := ecs.NewECS(donburi.NewWorld())
	level := &leveldata.LevelData{
		Name:      "test",
		MapWidth:  1000,
		MapHeight: 400,
		SolidRects: []leveldata.Rect{
			{X: 0, Y: groundY, W: 500, H: 40},
			{X: 600, Y: groundY, W: 400, H: 40},
		},
		DeadZones:   []leveldata.Rect{{X: 500, Y: groundY + 20, W: 100, H: 20}},
		NoDirtZones: []leveldata.Zone{{Rect: leveldata.Rect{X: 300, Y: 190, W: 100, H: 20}, Tag: leveldata.DefaultNoDirtTag}},
		FinishLines: []leveldata.Rect{{X: 900, Y: 100, W: 8, H: 100}},
		SpawnPoints: []leveldata.SpawnPoint{{Index: 0, X: 50, Y: groundY}},
	}
	if _, err := factory.CreateLevel(e, level); err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	return e
}

// startRace creates a race that is already running.
func startRace(e *ecs.ECS, tick int) *components.RaceData {
	entry := factory.CreateRace(e)
	race := components.Race.Get(entry)
	race.State = cfg.RaceStateRacing
	race.Tick = tick
	return race
}

func dirtOf(t *testing.T, e *ecs.ECS, target *donburi.Entry) *components.DirtEmitterData {
	t.Helper()
	var found *components.DirtEmitterData
	components.DirtEmitter.Each(e.World, func(entry *donburi.Entry) {
		if de := components.DirtEmitter.Get(entry); de.Target == target {
			found = de
		}
	})
	if found == nil {
		t.Fatal("no dirt emitter for target")
	}
	return found
}

func notices(e *ecs.ECS) []components.Notice {
	entry, ok := components.Race.First(e.World)
	if !ok {
		return nil
	}
	return components.Notification.Get(entry).Messages
}

func countFireworks(e *ecs.ECS) int {
	n := 0
	components.ParticleSystem.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// tick runs the simulation systems in scene order.
func tick(e *ecs.ECS) {
	UpdateBots(e)
	UpdatePlayerPhysics(e)
	UpdateDeath(e)
	PublishNetState(e)
	UpdateReplicas(e)
	UpdateRemotePlayers(e)
	UpdateDirtEmitters(e)
	UpdateParticles(e)
	UpdateRace(e)
	UpdateFinishLine(e)
	UpdateCamera(e)
}
