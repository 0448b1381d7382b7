package systems

import (
	"math"

	"github.com/automoto/dirtrace/components"
	"github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/automoto/dirtrace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	target := camera.Target
	if target == nil || !target.Valid() {
		return
	}
	smoothing := config.Camera.FollowSmoothing

	// Spectators watch whoever is leading among the racers still going
	if target.HasComponent(components.Player) && components.Player.Get(target).Spectating {
		if leader := leadingRacer(e); leader != nil {
			target = leader
		}
		smoothing = config.Race.SpectatorCameraLerp
	}

	obj := components.Object.Get(target)

	direction, speedX := 1.0, 0.0
	if target.HasComponent(components.Physics) {
		speedX = components.Physics.Get(target).SpeedX
		direction = float64(components.Player.Get(target).Direction)
	}
	// Only update look-ahead when moving - freeze offset when idle
	if math.Abs(speedX) > 0.1 {
		targetLookAhead := direction * config.Camera.LookAheadX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.FollowSmoothing
	}

	targetX := obj.X + obj.W/2 + camera.LookAheadX
	targetY := obj.Y + obj.H/2

	levelEntry, ok := components.Level.First(e.World)
	if ok && components.Level.Get(levelEntry).CurrentLevel != nil {
		level := components.Level.Get(levelEntry).CurrentLevel
		screenWidth := float64(config.C.Width)
		screenHeight := float64(config.C.Height)

		// Camera bounds: ensure the level always fills the screen
		minCameraX := screenWidth / 2
		maxCameraX := math.Max(minCameraX, float64(level.MapWidth)-screenWidth/2)
		minCameraY := screenHeight / 2
		maxCameraY := math.Max(minCameraY, float64(level.MapHeight)-screenHeight/2)

		targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
		targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))
	}

	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing
}

// leadingRacer is the unfinished remote racer furthest along the track.
func leadingRacer(e *ecs.ECS) *donburi.Entry {
	var leader *donburi.Entry
	best := math.Inf(-1)
	tags.RemotePlayer.Each(e.World, func(entry *donburi.Entry) {
		if isFinished(entry) {
			return
		}
		if x := components.Object.Get(entry).X; x > best {
			best = x
			leader = entry
		}
	})
	return leader
}

func isFinished(entry *donburi.Entry) bool {
	if entry.HasComponent(netcomponents.NetPlayerState) {
		return netcomponents.NetPlayerState.Get(entry).Finished
	}
	if entry.HasComponent(components.Player) {
		return components.Player.Get(entry).Finished
	}
	return false
}
