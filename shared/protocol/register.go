package protocol

import (
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition    uint = 10
	SyncIDNetVelocity    uint = 11
	SyncIDNetPlayerState uint = 12
	SyncIDNetRaceState   uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetVelocity uint8 = 11
)

// RegisterComponents registers all replicated components with necs.
// Both ends must call it before any network operations, and only once.
func RegisterComponents() error {
	// Position and velocity interpolate so remote racers move smoothly and
	// their dirt emission sees continuous speeds.
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// Discrete state, no interpolation
	if err := esync.RegisterComponent(
		SyncIDNetPlayerState,
		netcomponents.NetPlayerStateData{},
		netcomponents.NetPlayerState,
	); err != nil {
		return err
	}

	return esync.RegisterComponent(
		SyncIDNetRaceState,
		netcomponents.NetRaceStateData{},
		netcomponents.NetRaceState,
	)
}
