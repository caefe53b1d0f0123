package scenes

import (
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/leveldata"
	"github.com/automoto/openworld/logger"
	"github.com/automoto/openworld/systems"
	"github.com/automoto/openworld/systems/factory"
	"github.com/automoto/openworld/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const fallbackMap = "arena"

// ArenaScene runs the world simulation on the loaded maps.
type ArenaScene struct {
	w            *world.World
	renderer     *screenRenderer
	input        keyboardInput
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
	log          *logrus.Entry

	tick       int64
	playerDied bool
}

func NewArenaScene(sc SceneChanger, opts Options) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, opts: opts, log: logger.Component("arena")}
}

// now is the simulation time of the current tick.
func (as *ArenaScene) now() time.Duration {
	return time.Duration(as.tick) * time.Second / time.Duration(cfg.C.TPS)
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if as.input.IsKeyPressed(cfg.ActionSave) {
		if err := systems.SaveGame(as.w); err != nil {
			as.log.WithError(err).Warn("could not save game")
		}
	}

	as.tick++
	as.w.Step(as.now())

	if as.playerDied {
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, as.opts))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.w == nil {
		return
	}
	as.renderer.screen = screen
	systems.DrawWorld(as.w)
}

func (as *ArenaScene) configure() {
	as.renderer = newRenderer(as.opts.Assets)
	sound := newSpeaker(as.opts.Assets, as.opts.MusicVolume, as.opts.SFXVolume)
	sound.preload()

	as.w = world.New(world.Options{
		Renderer: as.renderer,
		Sound:    sound,
		Input:    as.input,
		Seed:     as.opts.Seed,
	})
	systems.Install(as.w)
	factory.RegisterItems(as.w)

	start := as.loadMaps()
	m, err := as.w.Map(start)
	if err != nil {
		as.log.WithError(err).Error("start map missing, using fallback arena")
		start = as.buildFallback()
		m, _ = as.w.Map(start)
	}
	as.w.Current = start

	if _, err := factory.SpawnPlayer(as.w, start, m.SpawnX, m.SpawnY); err != nil {
		as.log.WithError(err).Fatal("could not spawn player")
	}
	for name, n := range map[string]int{"potion": 3, "charm": 1} {
		if _, err := factory.GiveItem(as.w, name, n); err != nil {
			as.log.WithError(err).Warn("starter item")
		}
	}

	world.Deaths.Subscribe(as.w.ECS.World, func(_ donburi.World, ev world.DeathEvent) {
		as.log.WithField("actor", ev.Name).Info("actor died")
		if as.w.IsPlayer(ev.Actor) {
			as.playerDied = true
		}
	})
	world.Interactions.Subscribe(as.w.ECS.World, func(_ donburi.World, ev world.InteractionEvent) {
		as.log.WithField("ui", ev.UI).Info("interface opened")
	})

	if ok, err := systems.LoadGame(as.w); err != nil {
		as.log.WithError(err).Warn("could not load saved game")
	} else if ok {
		as.log.Info("saved game restored")
	}

	sound.PlayMusic(cfg.SceneGame)
}

// loadMaps creates every map found in the options and returns the start
// map id. Load failures leave the world without maps.
func (as *ArenaScene) loadMaps() string {
	if as.opts.Maps == nil {
		return ""
	}
	maps, ids, err := leveldata.LoadAllMaps(as.opts.Maps, as.opts.MapsDir)
	if err != nil {
		as.log.WithError(err).Error("could not load maps")
		return ""
	}
	for _, id := range ids {
		if err := factory.CreateLevel(as.w, maps[id]); err != nil {
			as.log.WithError(err).WithField("map", id).Error("could not create level")
		}
	}
	if as.opts.StartMap != "" {
		return as.opts.StartMap
	}
	return ids[0]
}

// buildFallback makes a walled empty map so the game runs without assets.
func (as *ArenaScene) buildFallback() string {
	width, height := float64(cfg.C.Width)*2, float64(cfg.C.Height)*2
	tile := cfg.C.TileSize
	as.w.AddMap(world.Map{ID: fallbackMap, Width: width, Height: height, SpawnX: width / 2, SpawnY: height / 2})

	factory.CreateWall(as.w, fallbackMap, 0, 0, width, tile/2)
	factory.CreateWall(as.w, fallbackMap, 0, height-tile/2, width, tile/2)
	factory.CreateWall(as.w, fallbackMap, 0, 0, tile/2, height)
	factory.CreateWall(as.w, fallbackMap, width-tile/2, 0, tile/2, height)

	for i, mob := range []string{"slime", "archer", "boar", "crate"} {
		x := width/4 + float64(i)*tile*3
		if _, err := factory.SpawnMob(as.w, fallbackMap, x, height/3, mob); err != nil {
			as.log.WithError(err).Warn("fallback mob skipped")
		}
	}
	factory.CreateInteractable(as.w, fallbackMap, width/2-tile, height/2+tile*2, tile, tile, "fallback-sign")
	return fallbackMap
}
