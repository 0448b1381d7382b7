package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per frame)
	JumpSpeed    float64 `yaml:"jump_speed"`
	MinJumpSpeed float64 `yaml:"min_jump_speed"` // Rise speed a released jump is cut to
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`

	// Physics
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`
	VerticalSpeedClamp float64 `yaml:"vertical_speed_clamp"` // Maximum vertical speed magnitude
	SpaceCellSize      int     `yaml:"space_cell_size"`
}

// WorldConfig relates simulation pixels and frames to world units and seconds.
type WorldConfig struct {
	TPS           int     `yaml:"tps"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// DirtConfig contains the dirt particle tuning. Forces and speeds are in
// world units per second.
type DirtConfig struct {
	// Interaction filters
	ExcludedTags       []string `yaml:"excluded_tags"`        // Particles won't spawn while touching these
	CollisionCheckSize float64  `yaml:"collision_check_size"` // Probe radius

	// Base particle settings
	BaseEmissionRate          float64 `yaml:"base_emission_rate"`
	WalkingEmissionMultiplier float64 `yaml:"walking_emission_multiplier"`
	ParticleLifetimeMin       float64 `yaml:"particle_lifetime_min"`
	ParticleLifetimeMax       float64 `yaml:"particle_lifetime_max"`
	ParticleSizeMin           float64 `yaml:"particle_size_min"`
	ParticleSizeMax           float64 `yaml:"particle_size_max"`
	GravityModifier           float64 `yaml:"gravity_modifier"`
	DirtColorMin              Color   `yaml:"dirt_color_min"`
	DirtColorMax              Color   `yaml:"dirt_color_max"`
	ShapeRadius               float64 `yaml:"shape_radius"`
	MaxParticles              int     `yaml:"max_particles"`

	// Jump particles
	EnableJumpParticles bool    `yaml:"enable_jump_particles"`
	JumpBurstCountMin   float64 `yaml:"jump_burst_count_min"`
	JumpBurstCountMax   float64 `yaml:"jump_burst_count_max"`
	JumpBurstSpeedMin   float64 `yaml:"jump_burst_speed_min"`
	JumpBurstSpeedMax   float64 `yaml:"jump_burst_speed_max"`

	// Landing particles
	EnableLandingParticles bool    `yaml:"enable_landing_particles"`
	LandingBurstCountMin   float64 `yaml:"landing_burst_count_min"`
	LandingBurstCountMax   float64 `yaml:"landing_burst_count_max"`
	LandingBurstSpeedMin   float64 `yaml:"landing_burst_speed_min"`
	LandingBurstSpeedMax   float64 `yaml:"landing_burst_speed_max"`
	MinimumLandingForce    float64 `yaml:"minimum_landing_force"`
	MaximumLandingForce    float64 `yaml:"maximum_landing_force"`

	// Remote players
	RemotePlayerOpacityMultiplier float64 `yaml:"remote_player_opacity_multiplier"`
}

// Color is an RGBA colour with channels in [0,1], as written in config files.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// RaceConfig contains race flow configuration
type RaceConfig struct {
	CountdownFrames     int     `yaml:"countdown_frames"`
	NotificationFrames  int     `yaml:"notification_frames"`
	FireworksBursts     int     `yaml:"fireworks_bursts"`
	FireworksBurstSize  int     `yaml:"fireworks_burst_size"`
	FireworksSpread     float64 `yaml:"fireworks_spread"` // pixels
	FireworksSpeedMin   float64 `yaml:"fireworks_speed_min"`
	FireworksSpeedMax   float64 `yaml:"fireworks_speed_max"`
	FinishNotification  string  `yaml:"finish_notification"` // fmt verb receives the player name
	SpectatorCameraLerp float64 `yaml:"spectator_camera_lerp"`
}

// DeathZoneConfig contains death zone configuration
type DeathZoneConfig struct {
	RespawnDelayFrames int `yaml:"respawn_delay_frames"`
}

// NetConfig contains replication configuration
type NetConfig struct {
	SnapshotInterval int `yaml:"snapshot_interval"` // Frames between replica snapshots
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"`
	LookAheadX      float64 `yaml:"look_ahead_x"` // pixels ahead of a moving target
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawProbes bool // Draw the dirt collision probe circles
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var World WorldConfig
var Dirt DirtConfig
var Race RaceConfig
var DeathZone DeathZoneConfig
var Camera CameraConfig
var Net NetConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Brown        = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	WaterBlue    = color.RGBA{R: 40, G: 110, B: 200, A: 160}
	Sky          = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Reset()
}

// Reset restores every tunable config group to its defaults.
func Reset() {
	World = WorldConfig{
		TPS:           60,
		PixelsPerUnit: 16, // one tile is one world unit
	}

	Physics = PhysicsConfig{
		MaxFallSpeed:       10.0,
		VerticalSpeedClamp: 16.0,
		SpaceCellSize:      16,
	}

	Player = PlayerConfig{
		JumpSpeed:    9.0,
		MinJumpSpeed: 4.0,
		Acceleration: 0.75,
		MaxSpeed:     4.0,

		Gravity:  0.5,
		Friction: 0.5,

		CollisionWidth:  16,
		CollisionHeight: 24,
	}

	Dirt = DirtConfig{
		ExcludedTags:       []string{"nodirt"},
		CollisionCheckSize: 0.2,

		BaseEmissionRate:          5,
		WalkingEmissionMultiplier: 2,
		ParticleLifetimeMin:       0.5,
		ParticleLifetimeMax:       1.0,
		ParticleSizeMin:           0.05,
		ParticleSizeMax:           0.15,
		GravityModifier:           0.5,
		DirtColorMin:              Color{R: 0.6, G: 0.4, B: 0.2, A: 0.7},
		DirtColorMax:              Color{R: 0.7, G: 0.5, B: 0.3, A: 0.5},
		ShapeRadius:               0.1,
		MaxParticles:              100,

		EnableJumpParticles: true,
		JumpBurstCountMin:   5,
		JumpBurstCountMax:   20,
		JumpBurstSpeedMin:   1,
		JumpBurstSpeedMax:   3,

		// Falls top out at MaxFallSpeed (10 px/frame = 37.5 units/s)
		EnableLandingParticles: true,
		LandingBurstCountMin:   3,
		LandingBurstCountMax:   15,
		LandingBurstSpeedMin:   0.7,
		LandingBurstSpeedMax:   2.1,
		MinimumLandingForce:    8,
		MaximumLandingForce:    37.5,

		RemotePlayerOpacityMultiplier: 0.7,
	}

	Race = RaceConfig{
		CountdownFrames:     180, // 3 seconds at 60fps
		NotificationFrames:  240,
		FireworksBursts:     3,
		FireworksBurstSize:  30,
		FireworksSpread:     48,
		FireworksSpeedMin:   2,
		FireworksSpeedMax:   6,
		FinishNotification:  "%s crossed the finish line!",
		SpectatorCameraLerp: 0.05,
	}

	DeathZone = DeathZoneConfig{
		RespawnDelayFrames: 45,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		LookAheadX:      48,
	}

	Net = NetConfig{
		SnapshotInterval: 3, // 20 Hz at 60 TPS
	}

	Bot = defaultBot()

	Debug = DebugConfig{
		DrawProbes: false,
	}
}
