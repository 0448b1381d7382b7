// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so a dedicated server binary stays headless.
package netconfig

// StateID identifies a player state for animation and replication.
type StateID int

// RaceStateID represents the current state of a race.
type RaceStateID int

const (
	RaceStateWaiting   RaceStateID = iota // Waiting for players
	RaceStateCountdown                    // Pre-race countdown (3, 2, 1)
	RaceStateRacing                       // Race clock running
	RaceStateFinished                     // Everyone crossed the line
)

const (
	StateNone StateID = -1

	Idle StateID = iota
	Running
	Jump // airborne and rising
	Fall // airborne and falling
	Die
	Spectate
)

var stateNames = map[StateID]string{
	Idle:     "idle",
	Running:  "running",
	Jump:     "jump",
	Fall:     "fall",
	Die:      "die",
	Spectate: "spectate",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Grounded reports whether a player in this state stands on the ground.
func (s StateID) Grounded() bool {
	return s == Idle || s == Running
}

// Airborne reports whether a player in this state is in the air.
func (s StateID) Airborne() bool {
	return s == Jump || s == Fall
}
