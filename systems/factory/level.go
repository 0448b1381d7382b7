package factory

import (
	"fmt"

	"github.com/automoto/dirtrace/archetypes"
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space and every collider of a track.
func CreateLevel(ecs *ecs.ECS, level *leveldata.LevelData) (*donburi.Entry, error) {
	if level == nil {
		return nil, fmt.Errorf("no level data")
	}

	cell := cfg.Physics.SpaceCellSize
	CreateSpace(ecs, level.MapWidth, level.MapHeight, cell, cell)

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
	})

	for _, r := range level.SolidRects {
		CreateSolid(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, z := range level.NoDirtZones {
		CreateNoDirtZone(ecs, z.X, z.Y, z.W, z.H, z.Tag)
	}
	for _, r := range level.FinishLines {
		CreateFinishLine(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, s := range level.SpawnPoints {
		sp := archetypes.SpawnPoint.Spawn(ecs)
		components.SpawnPoint.SetValue(sp, components.SpawnPointData{
			Index: s.Index,
			X:     s.X,
			Y:     s.Y,
		})
	}

	return entry, nil
}
