package components

import "github.com/yohamta/donburi"

// DeathData marks a player that touched a death zone. Timer counts down each
// frame; at 0 the player respawns at its spawn point.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
