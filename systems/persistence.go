package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/dirtrace/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const particlePrefsKey = "particles"

// ParticlePrefs are the player's particle options stored on disk
type ParticlePrefs struct {
	Enabled          bool `json:"enabled"`
	JumpParticles    bool `json:"jumpParticles"`
	LandingParticles bool `json:"landingParticles"`
}

// DefaultParticlePrefs turns everything on.
func DefaultParticlePrefs() ParticlePrefs {
	return ParticlePrefs{
		Enabled:          true,
		JumpParticles:    true,
		LandingParticles: true,
	}
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dirtrace",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadParticlePrefs loads preferences from disk, or nil when none are saved
func LoadParticlePrefs() (*ParticlePrefs, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(particlePrefsKey)
	if err != nil {
		log.Printf("Warning: Could not load particle preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// Nothing saved yet, use defaults
		return nil, nil
	}

	var prefs ParticlePrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse particle preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SaveParticlePrefs saves preferences to disk
func SaveParticlePrefs(p ParticlePrefs) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize particle preferences: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(particlePrefsKey, data); err != nil {
		log.Printf("Warning: Could not save particle preferences: %v", err)
		return err
	}
	return nil
}

// ApplyParticlePrefs folds preferences into the dirt config and pushes it
// to live controllers. e may be nil during startup.
func ApplyParticlePrefs(e *ecs.ECS, p *ParticlePrefs) {
	if p == nil {
		return
	}
	dirtEnabled = p.Enabled
	cfg.Dirt.EnableJumpParticles = p.JumpParticles
	cfg.Dirt.EnableLandingParticles = p.LandingParticles

	if e != nil {
		ReconfigureDirtEmitters(e)
	}
}

// CurrentParticlePrefs reads preferences back from the live config.
func CurrentParticlePrefs() ParticlePrefs {
	return ParticlePrefs{
		Enabled:          dirtEnabled,
		JumpParticles:    cfg.Dirt.EnableJumpParticles,
		LandingParticles: cfg.Dirt.EnableLandingParticles,
	}
}
