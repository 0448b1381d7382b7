package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dirtrace/assets"
	"github.com/automoto/dirtrace/config"
	"github.com/automoto/dirtrace/fonts"
	"github.com/automoto/dirtrace/scenes"
	"github.com/automoto/dirtrace/shared/protocol"
	"github.com/automoto/dirtrace/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(opts scenes.RaceOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewRaceScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning; watched for changes")
	track := flag.String("track", assets.DefaultTrack, "track to race on")
	name := flag.String("name", "Player", "your racer name")
	rivals := flag.Int("rivals", -1, "number of bot rivals (default from config)")
	probes := flag.Bool("probes", false, "draw dirt collision probes")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Register network components for replica deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *rivals >= 0 {
		config.Bot.Count = *rivals
	}
	config.Debug.DrawProbes = *probes

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("dirtrace")
	ebiten.SetTPS(config.World.TPS)

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadParticlePrefs(); err == nil && saved != nil {
		systems.ApplyParticlePrefs(nil, saved)
	}

	opts := scenes.RaceOptions{
		Track:      *track,
		PlayerName: *name,
		ConfigPath: *configPath,
	}
	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
