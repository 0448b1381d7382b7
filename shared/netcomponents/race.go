package netcomponents

import (
	"github.com/automoto/dirtrace/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetFinish is one entry of the replicated results table.
type NetFinish struct {
	Name string
	Time float64 // seconds since the race started
}

type NetRaceStateData struct {
	State   netconfig.RaceStateID
	Clock   float64 // seconds since the race started
	Results []NetFinish
}

var NetRaceState = donburi.NewComponentType[NetRaceStateData]()
