package systems

import (
	"testing"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/automoto/dirtrace/systems/factory"
)

func TestCameraStaysInsideLevel(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, "Dusty", 20, groundY)
	camera := components.Camera.Get(factory.CreateCamera(e, player))

	for i := 0; i < 200; i++ {
		UpdateCamera(e)
	}
	if minX := float64(cfg.C.Width) / 2; camera.Position.X < minX-0.01 {
		t.Errorf("camera left the level: x=%v, min %v", camera.Position.X, minX)
	}
}

func TestSpectatorWatchesLeader(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, "Dusty", 900, groundY)
	components.Player.Get(player).Spectating = true

	factory.CreateRemotePlayer(e,
		netcomponents.NetPlayerStateData{Name: "Slow"},
		netcomponents.NetPositionData{X: 400, Y: groundY - 24})
	ahead := factory.CreateRemotePlayer(e,
		netcomponents.NetPlayerStateData{Name: "Fast"},
		netcomponents.NetPositionData{X: 600, Y: groundY - 24})
	factory.CreateRemotePlayer(e,
		netcomponents.NetPlayerStateData{Name: "Done", Finished: true},
		netcomponents.NetPositionData{X: 950, Y: groundY - 24})

	if leader := leadingRacer(e); leader != ahead {
		t.Errorf("expected the furthest unfinished racer, got %v", leader)
	}

	camera := components.Camera.Get(factory.CreateCamera(e, player))
	before := camera.Position.X
	UpdateCamera(e)
	if camera.Position.X >= before {
		t.Error("spectator camera should pan back toward the leader")
	}
}
