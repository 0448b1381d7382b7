package components

import "github.com/yohamta/donburi"

type FinishLineData struct {
	Activated bool
	Inside    map[donburi.Entity]bool // Players overlapping last frame
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
