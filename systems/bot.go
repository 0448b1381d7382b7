package systems

import (
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/gamemath"
	"github.com/automoto/dirtrace/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots fills rival input: run right, jump at walls and gaps after a
// reaction delay, and hold the jump while rising.
func UpdateBots(e *ecs.ECS) {
	tuning := cfg.Bot.Tuning()

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		bot := components.Bot.Get(entry)
		input := components.PlayerInput.Get(entry)
		player := components.Player.Get(entry)
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object

		phys.MaxSpeed = cfg.Player.MaxSpeed * tuning.SpeedScale

		if player.Finished || entry.HasComponent(components.Death) {
			*input = components.PlayerInputData{}
			bot.Pending = false
			return
		}
		input.Right = true

		grounded := phys.OnGround != nil
		if grounded && !bot.Pending && (wallAhead(obj, tuning.WallLookahead) || gapAhead(obj, tuning.GapLookahead)) {
			bot.Pending = true
			bot.ReactionTimer = tuning.ReactionDelay
		}

		switch {
		case bot.Pending && grounded:
			if bot.ReactionTimer > 0 {
				bot.ReactionTimer--
				input.Jump = false
				return
			}
			input.Jump = true
		case !grounded && phys.SpeedY < 0 && input.Jump:
			// Keep holding for a full-height jump
		default:
			input.Jump = false
			bot.Pending = false
		}
	})
}

func wallAhead(obj *resolv.Object, lookahead float64) bool {
	return solidHit(obj, lookahead, 0) != nil
}

func gapAhead(obj *resolv.Object, lookahead float64) bool {
	if obj.Space == nil {
		return false
	}
	// Probe a sliver below the leading edge
	dx := obj.W + lookahead
	check := obj.Check(dx, 2, tags.ResolvSolid)
	if check == nil {
		return true
	}
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if gamemath.RectsOverlap(obj.X+dx, obj.Y+obj.H, 1, 2, s.X, s.Y, s.W, s.H) {
			return false
		}
	}
	return true
}
