package components

import "github.com/yohamta/donburi"

// NetInterpData smooths a replica's rendered position between snapshots.
type NetInterpData struct {
	PrevX, PrevY     float64
	TargetX, TargetY float64
	T                float64
	Initialized      bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()

// ReplicaData links a replica to the simulated body it mirrors when both
// live in the same process.
type ReplicaData struct {
	Source *donburi.Entry
	Frames int // Frames since the last snapshot
}

var Replica = donburi.NewComponentType[ReplicaData]()
