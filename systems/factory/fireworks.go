package factory

import (
	"math/rand/v2"

	"github.com/automoto/dirtrace/archetypes"
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/particles"
	"github.com/yohamta/donburi/ecs"
)

// SpawnFireworks launches the finish celebration around (x, y). Each burst
// is its own emitter and destroys itself once its particles are gone.
func SpawnFireworks(ecs *ecs.ECS, x, y float64) {
	r := cfg.Race
	for i := 0; i < r.FireworksBursts; i++ {
		bx := x + (rand.Float64()*2-1)*r.FireworksSpread
		by := y - rand.Float64()*r.FireworksSpread

		emitter := particles.NewEmitter(cfg.FireworksParams(), rand.Uint64())
		emitter.SetPosition(bx, by)
		emitter.EmitBurst(r.FireworksBurstSize)

		e := archetypes.Fireworks.Spawn(ecs)
		components.ParticleSystem.SetValue(e, components.ParticleSystemData{
			Emitter: emitter,
			X:       bx,
			Y:       by,
		})
		components.AutoDestroy.SetValue(e, components.AutoDestroyData{
			FramesRemaining: -1,
			DestroyOnIdle:   true,
		})
	}
}
