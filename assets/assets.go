package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/dirtrace/shared/leveldata"
)

const levelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// DefaultTrack is loaded when no track is named on the command line.
const DefaultTrack = "dustbowl"

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

// LoadTrack loads an embedded track by stem name.
func LoadTrack(name string) (*leveldata.LevelData, error) {
	tracks, _, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	if err != nil {
		return nil, err
	}
	track, ok := tracks[name]
	if !ok {
		return nil, fmt.Errorf("unknown track %q", name)
	}
	return track, nil
}

// TrackNames lists the embedded tracks in sorted order.
func TrackNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	return names, err
}
