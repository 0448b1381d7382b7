package netcomponents

import (
	"github.com/automoto/dirtrace/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetPlayerStateData is the replicated part of a racer.
type NetPlayerStateData struct {
	StateID   netconfig.StateID
	Direction int // -1 left, 1 right
	Name      string
	Finished  bool
	IsLocal   bool // Client-side only, not synced
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()

// NetPositionData is a replicated top-left position in pixels.
type NetPositionData struct {
	X, Y float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// NetVelocityData is a replicated velocity in pixels per frame, y down.
type NetVelocityData struct {
	SpeedX, SpeedY float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

// LerpNetPosition interpolates between two positions
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
	}
}

// LerpNetVelocity interpolates between two velocities
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		SpeedX: from.SpeedX + (to.SpeedX-from.SpeedX)*t,
		SpeedY: from.SpeedY + (to.SpeedY-from.SpeedY)*t,
	}
}
