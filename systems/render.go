package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/fonts"
	"github.com/automoto/dirtrace/particles"
	"github.com/automoto/dirtrace/systems/factory"
	"github.com/automoto/dirtrace/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewOffset is the world position drawn at the screen's top-left corner.
func viewOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return camera.Position.X - float64(w)/2, camera.Position.Y - float64(h)/2
}

func fillRect(screen *ebiten.Image, ox, oy, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen, float32(x-ox), float32(y-oy), float32(w), float32(h), clr, false)
}

// DrawLevel draws colliders: ground, no-dirt zones, death zones and finish lines.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
	ox, oy := viewOffset(e, screen)

	draw := func(tag *donburi.ComponentType[donburi.Tag], clr color.Color) {
		tag.Each(e.World, func(entry *donburi.Entry) {
			o := components.Object.Get(entry)
			fillRect(screen, ox, oy, o.X, o.Y, o.W, o.H, clr)
		})
	}
	draw(tags.Solid, cfg.Brown)
	draw(tags.NoDirtZone, cfg.WaterBlue)
	draw(tags.DeadZone, cfg.LightRed)
	draw(tags.FinishLine, cfg.BrightGreen)
}

// DrawPlayers draws the local player and every replica.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := viewOffset(e, screen)

	tags.RemotePlayer.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		fillRect(screen, ox, oy, o.X, o.Y, o.W, o.H, cfg.Orange)
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Death) {
			return
		}
		o := components.Object.Get(entry)
		fillRect(screen, ox, oy, o.X, o.Y, o.W, o.H, cfg.Blue)
	})
}

// DrawParticles draws dirt and fireworks.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := viewOffset(e, screen)

	components.DirtEmitter.Each(e.World, func(entry *donburi.Entry) {
		de := components.DirtEmitter.Get(entry)
		drawEmitter(screen, ox, oy, de.Particles)

		if cfg.Debug.DrawProbes && de.Target != nil && de.Target.Valid() {
			x, y := factory.Feet(components.Object.Get(de.Target).Object)
			r := de.Controller.Settings().CollisionCheck * cfg.World.PixelsPerUnit
			clr := cfg.White
			if de.LastCmd.Suppressed {
				clr = cfg.LightRed
			}
			vector.StrokeCircle(screen, float32(x-ox), float32(y-oy), float32(r), 1, clr, false)
		}
	})
	components.ParticleSystem.Each(e.World, func(entry *donburi.Entry) {
		drawEmitter(screen, ox, oy, components.ParticleSystem.Get(entry).Emitter)
	})
}

func drawEmitter(screen *ebiten.Image, ox, oy float64, em *particles.Emitter) {
	for _, p := range em.Particles() {
		clr := color.NRGBA{
			R: channel(p.Color.R),
			G: channel(p.Color.G),
			B: channel(p.Color.B),
			A: channel(p.Color.A),
		}
		fillRect(screen, ox, oy, p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size, clr)
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// DrawHUD draws the countdown, race clock, notifications and results.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	raceEntry, ok := components.Race.First(e.World)
	if !ok || !fonts.Loaded(fonts.Regular) {
		return
	}
	race := components.Race.Get(raceEntry)

	switch race.State {
	case cfg.RaceStateCountdown:
		seconds := race.CountdownTimer/cfg.World.TPS + 1
		drawCentered(screen, fmt.Sprintf("%d", seconds), fonts.Title, float64(cfg.C.Height)/3, cfg.White)
	default:
		drawText(screen, fmt.Sprintf("%.2fs", race.Clock()), fonts.Bold, 8, 8, cfg.White)
	}

	for i, n := range components.Notification.Get(raceEntry).Messages {
		drawText(screen, n.Text, fonts.Regular, 8, float64(30+i*16), cfg.BrightYellow)
	}

	if race.State == cfg.RaceStateFinished {
		y := float64(cfg.C.Height) / 2
		drawCentered(screen, "Results", fonts.Bold, y, cfg.White)
		for i, r := range race.Results {
			line := fmt.Sprintf("%d. %s  %.2fs", i+1, r.Name, r.Time)
			drawCentered(screen, line, fonts.Regular, y+float64(18*(i+1)), cfg.White)
		}
	}

	prefs := CurrentParticlePrefs()
	status := fmt.Sprintf("[P] dirt %s  [J] jump %s  [L] landing %s",
		onOff(prefs.Enabled), onOff(prefs.JumpParticles), onOff(prefs.LandingParticles))
	drawText(screen, status, fonts.Small, 8, float64(cfg.C.Height-16), cfg.White)
}

func drawText(screen *ebiten.Image, str string, name fonts.FontName, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, name.Face(), op)
}

func drawCentered(screen *ebiten.Image, str string, name fonts.FontName, y float64, clr color.Color) {
	w, _ := text.Measure(str, name.Face(), 0)
	drawText(screen, str, name, (float64(cfg.C.Width)-w)/2, y, clr)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
