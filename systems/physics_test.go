package systems

import (
	"testing"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/dirt"
	"github.com/automoto/dirtrace/systems/factory"
)

func TestPlayerFallsAndLands(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, "Dusty", 100, groundY-80)

	for i := 0; i < 60; i++ {
		UpdatePlayerPhysics(e)
	}

	phys := components.Physics.Get(player)
	obj := components.Object.Get(player)
	if phys.OnGround == nil {
		t.Fatal("expected player to be on the ground")
	}
	if obj.Y+obj.H != groundY {
		t.Errorf("expected feet on the ground at %v, got %v", groundY, obj.Y+obj.H)
	}
	if got := components.State.Get(player).CurrentState; got != cfg.Idle {
		t.Errorf("expected idle, got %v", got)
	}
}

func TestPlayerRunsIntoWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateSolid(e, 160, groundY-40, 20, 40)
	player := factory.CreatePlayer(e, 0, "Dusty", 100, groundY)
	components.PlayerInput.Get(player).Right = true

	for i := 0; i < 60; i++ {
		UpdatePlayerPhysics(e)
	}

	obj := components.Object.Get(player)
	if obj.X+obj.W != 160 {
		t.Errorf("expected player flush against the wall at 160, got %v", obj.X+obj.W)
	}
	if components.Physics.Get(player).SpeedX != 0 {
		t.Error("expected horizontal speed to stop at the wall")
	}
}

func TestCountdownFreezesInput(t *testing.T) {
	e := newTestECS(t)
	factory.CreateRace(e)
	player := factory.CreatePlayer(e, 0, "Dusty", 100, groundY)
	components.PlayerInput.Get(player).Right = true

	startX := components.Object.Get(player).X
	for i := 0; i < 10; i++ {
		UpdatePlayerPhysics(e)
	}
	if components.Object.Get(player).X != startX {
		t.Error("player moved during the countdown")
	}
}

func TestReleasedJumpIsCut(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, "Dusty", 100, groundY)
	UpdatePlayerPhysics(e)

	input := components.PlayerInput.Get(player)
	input.Jump = true
	UpdatePlayerPhysics(e)
	if components.State.Get(player).CurrentState != cfg.Jump {
		t.Fatalf("expected jump state, got %v", components.State.Get(player).CurrentState)
	}

	input.Jump = false
	UpdatePlayerPhysics(e)
	if sy := components.Physics.Get(player).SpeedY; sy < -cfg.Player.MinJumpSpeed {
		t.Errorf("expected rise cut to %v, got %v", -cfg.Player.MinJumpSpeed, sy)
	}
}

func TestJumpAndLandingKickUpDirt(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, "Dusty", 100, groundY-100)
	de := dirtOf(t, e, player)

	step := func() {
		UpdatePlayerPhysics(e)
		UpdateDirtEmitters(e)
	}

	var landed dirt.Burst
	for i := 0; i < 60 && landed.Kind == dirt.BurstNone; i++ {
		step()
		if de.LastCmd.Burst.Kind == dirt.BurstLanding {
			landed = de.LastCmd.Burst
		}
	}
	if landed.Kind != dirt.BurstLanding || landed.Count <= 0 {
		t.Fatalf("expected a landing burst, got %+v", landed)
	}
	if de.Particles.Alive() != landed.Count {
		t.Errorf("expected %d particles after landing, got %d", landed.Count, de.Particles.Alive())
	}

	components.PlayerInput.Get(player).Jump = true
	step()
	if de.LastCmd.Burst.Kind != dirt.BurstJump || de.LastCmd.Burst.Count <= 0 {
		t.Errorf("expected a jump burst on takeoff, got %+v", de.LastCmd.Burst)
	}
}

func TestRunningEmitsOutsideNoDirtZones(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, "Dusty", 100, groundY)
	de := dirtOf(t, e, player)
	components.PlayerInput.Get(player).Right = true

	for i := 0; i < 10; i++ {
		UpdatePlayerPhysics(e)
		UpdateDirtEmitters(e)
	}
	if de.Particles.Rate() <= 0 {
		t.Fatal("expected dirt while running on open ground")
	}

	obj := components.Object.Get(player)
	obj.X = 350 - obj.W/2
	obj.Update()
	UpdatePlayerPhysics(e)
	UpdateDirtEmitters(e)

	if !de.LastCmd.Suppressed {
		t.Error("expected emission suppressed inside the no-dirt zone")
	}
	if de.Particles.Rate() != 0 {
		t.Errorf("expected zero rate inside the zone, got %v", de.Particles.Rate())
	}
}
