package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	RemotePlayer = donburi.NewTag().SetName("RemotePlayer")
	Rival        = donburi.NewTag().SetName("Rival")
	Solid        = donburi.NewTag().SetName("Solid")
	DeadZone     = donburi.NewTag().SetName("DeadZone")
	NoDirtZone   = donburi.NewTag().SetName("NoDirtZone")
	FinishLine   = donburi.NewTag().SetName("FinishLine")
	Fireworks    = donburi.NewTag().SetName("Fireworks")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvRival      = "rival"
	ResolvDeadZone   = "deadzone"
	ResolvNoDirt     = "nodirt"
	ResolvFinishLine = "finishline"
)
