package systems

import (
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles steps every emitter and removes finished effects.
func UpdateParticles(e *ecs.ECS) {
	dt := 1 / float64(cfg.World.TPS)

	components.DirtEmitter.Each(e.World, func(entry *donburi.Entry) {
		components.DirtEmitter.Get(entry).Particles.Update(dt)
	})

	var expired []donburi.Entity
	components.ParticleSystem.Each(e.World, func(entry *donburi.Entry) {
		ps := components.ParticleSystem.Get(entry)
		ps.Emitter.Update(dt)

		if !entry.HasComponent(components.AutoDestroy) {
			return
		}
		ad := components.AutoDestroy.Get(entry)
		if ad.DestroyOnIdle && ps.Emitter.Idle() {
			expired = append(expired, entry.Entity())
			return
		}
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining == 0 {
				expired = append(expired, entry.Entity())
			}
		}
	})

	for _, entity := range expired {
		e.World.Remove(entity)
	}
}
