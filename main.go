package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/openworld/config"
	"github.com/automoto/openworld/logger"
	"github.com/automoto/openworld/scenes"
	"github.com/automoto/openworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, opts)
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
	mapsDir := flag.String("maps", "assets/maps", "Directory with TMX maps")
	assetsDir := flag.String("assets", "assets", "Directory with images/ and audio/")
	startMap := flag.String("start", "", "Map to start on (default: first by name)")
	mobsFile := flag.String("mobs", "", "YAML mob catalogue merged over the built-in mobs")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	hitboxes := flag.Bool("hitboxes", false, "Draw hitbox outlines")
	flag.Parse()

	logger.Init()
	log := logger.Component("main")

	config.Debug.ShowHitboxes = *hitboxes
	if *mobsFile != "" {
		if err := config.LoadMobTypesFile(*mobsFile); err != nil {
			log.WithError(err).Fatal("could not load mob catalogue")
		}
	}

	opts := scenes.Options{
		Maps:        os.DirFS(*mapsDir),
		MapsDir:     ".",
		StartMap:    *startMap,
		Assets:      os.DirFS(*assetsDir),
		Seed:        *seed,
		MusicVolume: config.Audio.DefaultMusicVol,
		SFXVolume:   config.Audio.DefaultSFXVol,
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("saving disabled")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		opts.MusicVolume, opts.SFXVolume = saved.MusicVolume, saved.SFXVolume
		if saved.Muted {
			opts.MusicVolume, opts.SFXVolume = 0, 0
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.AppName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
