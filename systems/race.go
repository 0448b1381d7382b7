package systems

import (
	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRace runs the countdown, the race clock and notification timers.
func UpdateRace(e *ecs.ECS) {
	raceEntry, ok := components.Race.First(e.World)
	if !ok {
		return
	}
	race := components.Race.Get(raceEntry)

	switch race.State {
	case cfg.RaceStateCountdown:
		race.CountdownTimer--
		if race.CountdownTimer <= 0 {
			race.State = cfg.RaceStateRacing
			race.Tick = 0
			Notify(e, "Go!")
		}
	case cfg.RaceStateRacing:
		race.Tick++
		if allLocalPlayersFinished(e) {
			race.State = cfg.RaceStateFinished
		}
	}

	notes := components.Notification.Get(raceEntry)
	live := notes.Messages[:0]
	for _, n := range notes.Messages {
		n.FramesRemaining--
		if n.FramesRemaining > 0 {
			live = append(live, n)
		}
	}
	notes.Messages = live
}

func allLocalPlayersFinished(e *ecs.ECS) bool {
	found, all := false, true
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		found = true
		if !components.Player.Get(entry).Finished {
			all = false
		}
	})
	return found && all
}

// Notify queues an on-screen announcement.
func Notify(e *ecs.ECS, text string) {
	raceEntry, ok := components.Race.First(e.World)
	if !ok {
		return
	}
	notes := components.Notification.Get(raceEntry)
	notes.Messages = append(notes.Messages, components.Notice{
		Text:            text,
		FramesRemaining: cfg.Race.NotificationFrames,
	})
}

// RaceStarted reports whether the starting countdown is over.
func RaceStarted(e *ecs.ECS) bool {
	raceEntry, ok := components.Race.First(e.World)
	if !ok {
		return false
	}
	state := components.Race.Get(raceEntry).State
	return state == cfg.RaceStateRacing || state == cfg.RaceStateFinished
}
