package factory

import (
	"github.com/automoto/dirtrace/archetypes"
	"github.com/automoto/dirtrace/components"
	"github.com/automoto/dirtrace/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid creates a static collider that players stand on.
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createCollider(ecs, archetypes.Solid, x, y, w, h, tags.ResolvSolid)
}

// CreateDeadZone creates an invisible collision zone that kills on touch
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createCollider(ecs, archetypes.DeadZone, x, y, w, h, tags.ResolvDeadZone)
}

// CreateNoDirtZone creates an area where dirt is not kicked up. The collider
// carries tag, which is matched against the dirt exclusion mask.
func CreateNoDirtZone(ecs *ecs.ECS, x, y, w, h float64, tag string) *donburi.Entry {
	return createCollider(ecs, archetypes.NoDirtZone, x, y, w, h, tag)
}

// CreateFinishLine creates a finish line entity with collision detection
func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finishLine := createCollider(ecs, archetypes.FinishLine, x, y, w, h, tags.ResolvFinishLine)
	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Inside: map[donburi.Entity]bool{},
	})
	return finishLine
}

type spawner interface {
	Spawn(*ecs.ECS, ...donburi.IComponentType) *donburi.Entry
}

func createCollider(ecs *ecs.ECS, a spawner, x, y, w, h float64, tag string) *donburi.Entry {
	entry := a.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return entry
}
