package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for rival racers at one difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     `yaml:"reaction_delay"` // Frames between seeing an obstacle and jumping
	WallLookahead float64 `yaml:"wall_lookahead"` // Pixels ahead checked for walls
	GapLookahead  float64 `yaml:"gap_lookahead"`  // Pixels ahead checked for missing ground
	SpeedScale    float64 `yaml:"speed_scale"`    // Fraction of the player's max speed
}

// BotConfigData holds all rival racer configuration
type BotConfigData struct {
	Count        int                                   `yaml:"count"`
	Difficulty   BotDifficulty                         `yaml:"difficulty"`
	Names        []string                              `yaml:"names"`
	Difficulties map[BotDifficulty]BotDifficultyConfig `yaml:"difficulties"`
}

// Tuning returns the difficulty config currently selected.
func (b BotConfigData) Tuning() BotDifficultyConfig {
	return b.Difficulties[b.Difficulty]
}

// clone copies the difficulty table so decoding into the copy leaves b alone.
func (b BotConfigData) clone() BotConfigData {
	c := b
	c.Names = append([]string(nil), b.Names...)
	c.Difficulties = make(map[BotDifficulty]BotDifficultyConfig, len(b.Difficulties))
	for k, v := range b.Difficulties {
		c.Difficulties[k] = v
	}
	return c
}

// Bot holds rival racer configuration
var Bot BotConfigData

func defaultBot() BotConfigData {
	return BotConfigData{
		Count:      2,
		Difficulty: BotDifficultyNormal,
		Names:      []string{"Mudskipper", "Clodhopper", "Gravelgertie"},
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 20,
				WallLookahead: 12,
				GapLookahead:  8,
				SpeedScale:    0.75,
			},
			BotDifficultyNormal: {
				ReactionDelay: 8,
				WallLookahead: 16,
				GapLookahead:  12,
				SpeedScale:    0.9,
			},
			BotDifficultyHard: {
				ReactionDelay: 2,
				WallLookahead: 24,
				GapLookahead:  16,
				SpeedScale:    1,
			},
		},
	}
}
