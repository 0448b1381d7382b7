package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dirtrace/assets"
	cfg "github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/shared/leveldata"
	"github.com/automoto/dirtrace/systems"
	"github.com/automoto/dirtrace/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RaceOptions selects what a race scene loads.
type RaceOptions struct {
	Track      string
	PlayerName string
	ConfigPath string // Watched for live changes when set
}

type RaceScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         RaceOptions
	watcher      *cfg.Watcher
	once         sync.Once
	err          error
}

func NewRaceScene(sc SceneChanger, opts RaceOptions) *RaceScene {
	return &RaceScene{sceneChanger: sc, opts: opts}
}

func (rs *RaceScene) Update() {
	rs.once.Do(rs.configure)
	if rs.err != nil {
		return
	}

	rs.pollConfig()
	rs.handlePrefKeys()

	if systems.IsActionJustPressed(cfg.ActionRestart) {
		rs.close()
		rs.sceneChanger.ChangeScene(NewRaceScene(rs.sceneChanger, rs.opts))
		return
	}

	rs.ecs.Update()
}

func (rs *RaceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.err != nil {
		ebitenutil.DebugPrintAt(screen, rs.err.Error(), 8, 8)
		return
	}
	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RaceScene) configure() {
	level, err := assets.LoadTrack(rs.opts.Track)
	if err != nil {
		rs.err = fmt.Errorf("loading track: %w", err)
		log.Printf("Warning: %v", rs.err)
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Replication runs between physics and dirt so replicas kick up dirt from fresh snapshots
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateBots)
	ecs.AddSystem(systems.UpdatePlayerPhysics)
	ecs.AddSystem(systems.UpdateDeath)
	ecs.AddSystem(systems.PublishNetState)
	ecs.AddSystem(systems.UpdateReplicas)
	ecs.AddSystem(systems.UpdateRemotePlayers)
	ecs.AddSystem(systems.UpdateDirtEmitters)
	ecs.AddSystem(systems.UpdateParticles)
	ecs.AddSystem(systems.UpdateRace)
	ecs.AddSystem(systems.UpdateFinishLine)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	if err := BuildRace(ecs, level, rs.opts.PlayerName); err != nil {
		rs.err = err
		log.Printf("Warning: %v", err)
		return
	}
	rs.ecs = ecs

	if rs.opts.ConfigPath != "" {
		w, err := cfg.NewWatcher(rs.opts.ConfigPath)
		if err != nil {
			log.Printf("Warning: config hot reload disabled: %v", err)
		} else {
			rs.watcher = w
		}
	}
}

// BuildRace populates a world with a track, the local player, rivals with
// their replicas, the race and the camera.
func BuildRace(e *ecs.ECS, level *leveldata.LevelData, playerName string) error {
	if _, err := factory.CreateLevel(e, level); err != nil {
		return err
	}

	spawn, ok := level.Spawn(0)
	if !ok {
		return leveldata.ErrNoSpawns
	}
	player := factory.CreatePlayer(e, 0, playerName, spawn.X, spawn.Y)

	for i := 0; i < cfg.Bot.Count; i++ {
		s, _ := level.Spawn(i + 1)
		name := fmt.Sprintf("Rival %d", i+1)
		if i < len(cfg.Bot.Names) {
			name = cfg.Bot.Names[i]
		}
		rival := factory.CreateRival(e, i+1, name, s.X, s.Y)
		factory.CreateReplicaOf(e, rival)
	}

	factory.CreateRace(e)
	factory.CreateCamera(e, player)
	return nil
}

func (rs *RaceScene) pollConfig() {
	if rs.watcher == nil {
		return
	}
	select {
	case err := <-rs.watcher.Errors:
		log.Printf("Warning: config watcher: %v", err)
	default:
	}
	if !rs.watcher.Changed() {
		return
	}

	prefs := systems.CurrentParticlePrefs()
	if err := cfg.Load(rs.watcher.Path()); err != nil {
		log.Printf("Warning: config not reloaded: %v", err)
		return
	}
	// Player preferences win over the file
	systems.ApplyParticlePrefs(rs.ecs, &prefs)
	log.Printf("Reloaded config from %s", rs.watcher.Path())
}

func (rs *RaceScene) handlePrefKeys() {
	prefs := systems.CurrentParticlePrefs()
	changed := false
	if systems.IsActionJustPressed(cfg.ActionToggleDirt) {
		prefs.Enabled = !prefs.Enabled
		changed = true
	}
	if systems.IsActionJustPressed(cfg.ActionToggleJumpDust) {
		prefs.JumpParticles = !prefs.JumpParticles
		changed = true
	}
	if systems.IsActionJustPressed(cfg.ActionToggleLandingDust) {
		prefs.LandingParticles = !prefs.LandingParticles
		changed = true
	}
	if !changed {
		return
	}
	systems.ApplyParticlePrefs(rs.ecs, &prefs)
	_ = systems.SaveParticlePrefs(prefs)
}

func (rs *RaceScene) close() {
	if rs.watcher != nil {
		_ = rs.watcher.Close()
		rs.watcher = nil
	}
}
