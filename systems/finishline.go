package systems

import (
	"fmt"

	"github.com/automoto/dirtrace/components"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/gamemath"
	"github.com/automoto/dirtrace/shared/netcomponents"
	"github.com/automoto/dirtrace/systems/factory"
	"github.com/automoto/dirtrace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinishLine celebrates every racer entering a finish line once the
// race has started. Only racers owned by this process record a time and
// switch to spectating.
func UpdateFinishLine(e *ecs.ECS) {
	if !RaceStarted(e) {
		return
	}

	var crossed []*donburi.Entry
	components.FinishLine.Each(e.World, func(entry *donburi.Entry) {
		finishLine := components.FinishLine.Get(entry)
		lineObj := components.Object.Get(entry)

		inside := map[donburi.Entity]bool{}
		if check := lineObj.Check(0, 0, tags.ResolvPlayer); check != nil {
			for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
				if !gamemath.RectsOverlap(lineObj.X, lineObj.Y, lineObj.W, lineObj.H, o.X, o.Y, o.W, o.H) {
					continue
				}
				playerEntry, ok := o.Data.(*donburi.Entry)
				if !ok || playerEntry == nil || !playerEntry.Valid() {
					continue
				}
				inside[playerEntry.Entity()] = true
				if !finishLine.Inside[playerEntry.Entity()] {
					crossed = append(crossed, playerEntry)
					finishLine.Activated = true
				}
			}
		}
		finishLine.Inside = inside
	})

	for _, playerEntry := range crossed {
		finish(e, playerEntry)
	}
}

func finish(e *ecs.ECS, playerEntry *donburi.Entry) {
	x, y := factory.Feet(components.Object.Get(playerEntry).Object)
	factory.SpawnFireworks(e, x, y)
	Notify(e, fmt.Sprintf(cfg.Race.FinishNotification, racerName(playerEntry)))

	if !isLocal(playerEntry) || !playerEntry.HasComponent(components.Player) {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Finished {
		return
	}

	raceEntry, ok := components.Race.First(e.World)
	if !ok {
		return
	}
	race := components.Race.Get(raceEntry)

	player.Finished = true
	player.FinishTime = race.Clock()
	player.Spectating = true
	race.Results = append(race.Results, components.RaceResult{
		Name: player.Name,
		Time: player.FinishTime,
	})
}

func racerName(entry *donburi.Entry) string {
	if entry.HasComponent(netcomponents.NetPlayerState) {
		if name := netcomponents.NetPlayerState.Get(entry).Name; name != "" {
			return name
		}
	}
	if entry.HasComponent(components.Player) {
		return components.Player.Get(entry).Name
	}
	return "Someone"
}

func isLocal(entry *donburi.Entry) bool {
	if entry.HasComponent(netcomponents.NetPlayerState) {
		return netcomponents.NetPlayerState.Get(entry).IsLocal
	}
	return entry.HasComponent(tags.Player)
}
