package components

import "github.com/yohamta/donburi"

// PlayerInputData is the per-frame intent of one racer, filled by the
// keyboard for the local player and by the bot system for rivals.
type PlayerInputData struct {
	Left  bool
	Right bool
	Jump  bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// BotData drives a rival racer.
type BotData struct {
	ReactionTimer int // Frames left before a pending jump fires
	Pending       bool
}

var Bot = donburi.NewComponentType[BotData]()
