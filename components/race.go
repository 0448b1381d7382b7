package components

import (
	"github.com/automoto/dirtrace/config"
	"github.com/yohamta/donburi"
)

type RaceResult struct {
	Name string
	Time float64
}

// RaceData is the singleton race state.
type RaceData struct {
	State          config.RaceStateID
	CountdownTimer int // Frames left in the countdown
	Tick           int // Frames since the race started
	Results        []RaceResult
}

// Clock returns the seconds elapsed since the race started.
func (r *RaceData) Clock() float64 {
	return float64(r.Tick) / float64(config.World.TPS)
}

var Race = donburi.NewComponentType[RaceData]()
