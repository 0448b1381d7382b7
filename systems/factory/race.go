package factory

import (
	"github.com/automoto/dirtrace/archetypes"
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRace creates the race singleton in its countdown.
func CreateRace(ecs *ecs.ECS) *donburi.Entry {
	race := archetypes.Race.Spawn(ecs)
	components.Race.SetValue(race, components.RaceData{
		State:          cfg.RaceStateCountdown,
		CountdownTimer: cfg.Race.CountdownFrames,
	})
	return race
}
