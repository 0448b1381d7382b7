package config

import "github.com/automoto/dirtrace/shared/netconfig"

// Type aliases so client code can keep using config.StateID.
type StateID = netconfig.StateID
type RaceStateID = netconfig.RaceStateID

const (
	RaceStateWaiting   = netconfig.RaceStateWaiting
	RaceStateCountdown = netconfig.RaceStateCountdown
	RaceStateRacing    = netconfig.RaceStateRacing
	RaceStateFinished  = netconfig.RaceStateFinished
)

const (
	StateNone = netconfig.StateNone

	Idle     = netconfig.Idle
	Running  = netconfig.Running
	Jump     = netconfig.Jump
	Fall     = netconfig.Fall
	Die      = netconfig.Die
	Spectate = netconfig.Spectate
)
