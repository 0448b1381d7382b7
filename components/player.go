package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index          int
	Name           string
	Direction      int // -1 left, 1 right
	SpawnX, SpawnY float64
	JumpWasPressed bool

	Finished   bool
	FinishTime float64 // seconds since the race started
	Spectating bool
}

var Player = donburi.NewComponentType[PlayerData]()
