package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and layer names read from a track.
const (
	GroundLayer      = "ground"
	SolidGroup       = "Solid"
	DeadZoneGroup    = "DeadZone"
	NoDirtGroup      = "NoDirt"
	FinishLineGroup  = "FinishLine"
	PlayerSpawnGroup = "PlayerSpawn"

	// DefaultNoDirtTag is used for NoDirt objects without a "tag" property.
	DefaultNoDirtTag = "nodirt"
)

var ErrNoSpawns = errors.New("track has no player spawns")

// LoadLevel parses a TMX track. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles from the ground layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != GroundLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := y*levelMap.Width + x
				if idx >= len(layer.Tiles) || layer.Tiles[idx].IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case SolidGroup:
				data.SolidRects = append(data.SolidRects, r)
			case DeadZoneGroup:
				data.DeadZones = append(data.DeadZones, r)
			case NoDirtGroup:
				tag := o.Properties.GetString("tag")
				if tag == "" {
					tag = DefaultNoDirtTag
				}
				data.NoDirtZones = append(data.NoDirtZones, Zone{Rect: r, Tag: tag})
			case FinishLineGroup:
				data.FinishLines = append(data.FinishLines, r)
			case PlayerSpawnGroup:
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawns)
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
