package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseOverlaysOnlyGivenFields(t *testing.T) {
	defer Reset()

	f, err := Parse([]byte(`
dirt:
  base_emission_rate: 8
  excluded_tags: [water, ladder]
player:
  max_speed: 5
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Dirt.BaseEmissionRate != 8 {
		t.Errorf("expected base rate 8, got %v", f.Dirt.BaseEmissionRate)
	}
	if len(f.Dirt.ExcludedTags) != 2 || f.Dirt.ExcludedTags[1] != "ladder" {
		t.Errorf("expected excluded tags [water ladder], got %v", f.Dirt.ExcludedTags)
	}
	if f.Dirt.JumpBurstCountMax != Dirt.JumpBurstCountMax {
		t.Errorf("expected untouched jump burst max %v, got %v", Dirt.JumpBurstCountMax, f.Dirt.JumpBurstCountMax)
	}
	if f.Player.MaxSpeed != 5 || f.Player.JumpSpeed != Player.JumpSpeed {
		t.Errorf("unexpected player overlay: %+v", f.Player)
	}
	if Dirt.BaseEmissionRate == 8 {
		t.Error("Parse must not apply the config")
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	defer Reset()

	cases := []string{
		"world:\n  tps: 0\n",
		"dirt:\n  collision_check_size: -1\n",
		"dirt:\n  remote_player_opacity_multiplier: 2\n",
		"dirt: [not, a, map]\n",
		"dirt:\n  base_emission_rate: .nan\n",
		"dirt:\n  landing_burst_speed_max: .inf\n",
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c)); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}

func TestLoadAppliesFile(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "dirtrace.yaml")
	if err := os.WriteFile(path, []byte("dirt:\n  walking_emission_multiplier: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Dirt.WalkingEmissionMultiplier != 3 {
		t.Errorf("expected multiplier 3, got %v", Dirt.WalkingEmissionMultiplier)
	}
	if DirtSettings().WalkingEmissionMultiplier != 3 {
		t.Error("expected DirtSettings to follow the live config")
	}
}

func TestLoadMissingFileKeepsConfig(t *testing.T) {
	defer Reset()

	before := Dirt.BaseEmissionRate
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if Dirt.BaseEmissionRate != before {
		t.Error("config changed after failed load")
	}
}

func TestDirtSettingsCarryStartAlpha(t *testing.T) {
	s := DirtSettings()
	if s.StartAlphaMin != 0.7 || s.StartAlphaMax != 0.5 {
		t.Errorf("expected alpha range [0.7, 0.5], got [%v, %v]", s.StartAlphaMin, s.StartAlphaMax)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default dirt settings invalid: %v", err)
	}
}

func TestParseLeavesBotTableAlone(t *testing.T) {
	defer Reset()

	before := Bot.Difficulties[BotDifficultyHard].ReactionDelay
	f, err := Parse([]byte("bot:\n  difficulties:\n    2:\n      reaction_delay: 99\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Bot.Difficulties[BotDifficultyHard].ReactionDelay != 99 {
		t.Errorf("expected parsed reaction delay 99, got %d", f.Bot.Difficulties[BotDifficultyHard].ReactionDelay)
	}
	if Bot.Difficulties[BotDifficultyHard].ReactionDelay != before {
		t.Error("Parse mutated the live bot table")
	}
}

func TestParseRejectsUnknownBotDifficulty(t *testing.T) {
	defer Reset()

	if _, err := Parse([]byte("bot:\n  difficulty: 7\n")); err == nil {
		t.Error("expected error for difficulty without tuning")
	}
}
