// Package leveldata provides TMX track parsing.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// LevelData holds everything the race needs from a TMX track.
type LevelData struct {
	Name        string
	SolidRects  []Rect
	DeadZones   []Rect
	NoDirtZones []Zone
	FinishLines []Rect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is an axis-aligned area in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Zone is an area whose collider carries Tag.
type Zone struct {
	Rect
	Tag string
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn for player index i, wrapping around when the
// track has fewer spawns than players.
func (l *LevelData) Spawn(i int) (SpawnPoint, bool) {
	if len(l.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	if i < 0 {
		i = -i
	}
	return l.SpawnPoints[i%len(l.SpawnPoints)], true
}
