package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const trackTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="12" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="10">
 <objectgroup id="1" name="Solid">
  <object id="1" x="0" y="160" width="640" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="DeadZone">
  <object id="2" x="320" y="176" width="32" height="16"/>
 </objectgroup>
 <objectgroup id="3" name="NoDirt">
  <object id="3" x="96" y="144" width="48" height="16"/>
  <object id="4" x="200" y="144" width="48" height="16">
   <properties>
    <property name="tag" value="water"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="FinishLine">
  <object id="5" x="600" y="96" width="16" height="64"/>
 </objectgroup>
 <objectgroup id="5" name="PlayerSpawn">
  <object id="6" x="48" y="128">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="7" x="16" y="128">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solid">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/track.tmx": {Data: []byte(trackTMX)},
		"levels/empty.tmx": {Data: []byte(noSpawnTMX)},
		"other/track2.tmx": {Data: []byte(trackTMX)},
		"other/readme.txt": {Data: []byte("not a level")},
	}
}

func TestLoadLevel(t *testing.T) {
	l, err := LoadLevel(testFS(), "levels/track.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if l.Name != "track" {
		t.Errorf("expected name track, got %q", l.Name)
	}
	if l.MapWidth != 640 || l.MapHeight != 192 {
		t.Errorf("expected 640x192, got %dx%d", l.MapWidth, l.MapHeight)
	}
	if len(l.SolidRects) != 1 || l.SolidRects[0] != (Rect{X: 0, Y: 160, W: 640, H: 32}) {
		t.Errorf("unexpected solids: %+v", l.SolidRects)
	}
	if len(l.DeadZones) != 1 {
		t.Errorf("expected 1 dead zone, got %d", len(l.DeadZones))
	}
	if len(l.FinishLines) != 1 || l.FinishLines[0].X != 600 {
		t.Errorf("unexpected finish lines: %+v", l.FinishLines)
	}

	if len(l.NoDirtZones) != 2 {
		t.Fatalf("expected 2 no-dirt zones, got %d", len(l.NoDirtZones))
	}
	if l.NoDirtZones[0].Tag != DefaultNoDirtTag {
		t.Errorf("expected default tag, got %q", l.NoDirtZones[0].Tag)
	}
	if l.NoDirtZones[1].Tag != "water" {
		t.Errorf("expected water tag, got %q", l.NoDirtZones[1].Tag)
	}
}

func TestLoadLevelSortsSpawnsLeftToRight(t *testing.T) {
	l, err := LoadLevel(testFS(), "levels/track.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if len(l.SpawnPoints) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(l.SpawnPoints))
	}
	if l.SpawnPoints[0].X != 16 || l.SpawnPoints[0].Index != 0 {
		t.Errorf("unexpected first spawn: %+v", l.SpawnPoints[0])
	}
	if l.SpawnPoints[1].X != 48 || l.SpawnPoints[1].Index != 1 {
		t.Errorf("unexpected second spawn: %+v", l.SpawnPoints[1])
	}

	s, ok := l.Spawn(3)
	if !ok || s.X != 48 {
		t.Errorf("expected spawn 3 to wrap to x=48, got %+v", s)
	}
}

func TestLoadLevelWithoutSpawns(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/empty.tmx")
	if !errors.Is(err, ErrNoSpawns) {
		t.Errorf("expected ErrNoSpawns, got %v", err)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(testFS(), "levels/missing.tmx"); err == nil {
		t.Error("expected error for missing track")
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(testFS(), "other")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 1 || names[0] != "track2" {
		t.Errorf("unexpected names: %v", names)
	}
	if levels["track2"] == nil {
		t.Error("expected track2 to be loaded")
	}

	if _, _, err := LoadAllLevels(testFS(), "nothing"); err == nil {
		t.Error("expected error for directory without tracks")
	}
}
