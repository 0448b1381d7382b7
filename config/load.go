package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a config override. Groups missing from the
// file keep their current values.
type File struct {
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	World     WorldConfig     `yaml:"world"`
	Dirt      DirtConfig      `yaml:"dirt"`
	Race      RaceConfig      `yaml:"race"`
	DeathZone DeathZoneConfig `yaml:"death_zone"`
	Camera    CameraConfig    `yaml:"camera"`
	Bot       BotConfigData   `yaml:"bot"`
	Net       NetConfig       `yaml:"net"`
}

// Current snapshots the live config groups.
func Current() File {
	return File{
		Player:    Player,
		Physics:   Physics,
		World:     World,
		Dirt:      Dirt,
		Race:      Race,
		DeathZone: DeathZone,
		Camera:    Camera,
		Bot:       Bot.clone(),
		Net:       Net,
	}
}

// Parse overlays YAML data on top of the current config and validates the
// result without applying it.
func Parse(data []byte) (File, error) {
	f := Current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks values that would break the simulation.
func (f File) Validate() error {
	if f.World.TPS <= 0 {
		return fmt.Errorf("world.tps must be positive, got %d", f.World.TPS)
	}
	if f.World.PixelsPerUnit <= 0 {
		return fmt.Errorf("world.pixels_per_unit must be positive, got %v", f.World.PixelsPerUnit)
	}
	if f.Physics.SpaceCellSize <= 0 {
		return fmt.Errorf("physics.space_cell_size must be positive, got %d", f.Physics.SpaceCellSize)
	}
	if f.Net.SnapshotInterval <= 0 {
		return fmt.Errorf("net.snapshot_interval must be positive, got %d", f.Net.SnapshotInterval)
	}
	if f.Dirt.MaxParticles < 0 {
		return fmt.Errorf("dirt.max_particles is negative (%d)", f.Dirt.MaxParticles)
	}

	if _, ok := f.Bot.Difficulties[f.Bot.Difficulty]; !ok {
		return fmt.Errorf("bot.difficulty %d has no tuning", f.Bot.Difficulty)
	}

	if err := f.Dirt.Settings().Validate(); err != nil {
		return fmt.Errorf("dirt: %w", err)
	}
	return nil
}

// Apply makes f the live config.
func (f File) Apply() {
	Player = f.Player
	Physics = f.Physics
	World = f.World
	Dirt = f.Dirt
	Race = f.Race
	DeathZone = f.DeathZone
	Camera = f.Camera
	Bot = f.Bot
	Net = f.Net
}

// Load reads a YAML override from path and applies it. On error the live
// config is left untouched.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f.Apply()
	return nil
}
