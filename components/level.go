package components

import (
	"github.com/automoto/dirtrace/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.LevelData
	Path         string
}

var Level = donburi.NewComponentType[LevelData]()

// SpawnPointData is one start position on the grid.
type SpawnPointData struct {
	Index int
	X, Y  float64
}

var SpawnPoint = donburi.NewComponentType[SpawnPointData]()
