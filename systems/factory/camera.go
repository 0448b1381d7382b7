package factory

import (
	"github.com/automoto/dirtrace/archetypes"
	"github.com/automoto/dirtrace/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera centred on target's feet.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{Target: target}
	if target != nil && target.HasComponent(components.Object) {
		x, y := Feet(components.Object.Get(target).Object)
		data.Position.X, data.Position.Y = x, y
	}
	components.Camera.Set(camera, data)
	return camera
}
