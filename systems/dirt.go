package systems

import (
	"log"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dirtEnabled is toggled by the player's particle preference.
var dirtEnabled = true

// UpdateDirtEmitters ticks every dirt controller at its target's feet.
// It runs after physics so controllers see this frame's movement.
func UpdateDirtEmitters(e *ecs.ECS) {
	components.DirtEmitter.Each(e.World, func(entry *donburi.Entry) {
		de := components.DirtEmitter.Get(entry)
		if de.Disabled {
			return
		}
		if de.Target == nil || !de.Target.Valid() {
			disableDirtEmitter(de, "player target is gone")
			return
		}
		de.Controller.SetMuted(!dirtEnabled)

		x, y := factory.Feet(components.Object.Get(de.Target).Object)
		de.Particles.SetPosition(x, y)
		de.LastCmd = de.Controller.Update(x, y)
	})
}

func disableDirtEmitter(de *components.DirtEmitterData, reason string) {
	log.Printf("Warning: dirt emitter disabled: %s", reason)
	de.Disabled = true
	de.Particles.SetContinuousRate(0)
}

// ReconfigureDirtEmitters pushes the live dirt config to every controller.
func ReconfigureDirtEmitters(e *ecs.ECS) {
	settings := cfg.DirtSettings()
	components.DirtEmitter.Each(e.World, func(entry *donburi.Entry) {
		de := components.DirtEmitter.Get(entry)
		if de.Controller == nil {
			return
		}
		if err := de.Controller.Reconfigure(settings); err != nil {
			log.Printf("Warning: could not reconfigure dirt emitter: %v", err)
		}
	})
}
