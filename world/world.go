package world

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/config"
	"github.com/automoto/openworld/effects"
	"github.com/automoto/openworld/items"
	"github.com/automoto/openworld/logger"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

var (
	ErrUnknownMap      = errors.New("unknown map")
	ErrPlayerDestroyed = errors.New("the player actor cannot be destroyed")
	ErrNoPlayer        = errors.New("world has no player")
	ErrNotOnMap        = errors.New("player is not on the departure map")
)

// Map is the bounds and player spawn of one map.
type Map struct {
	ID             string
	Width, Height  float64
	SpawnX, SpawnY float64
}

// Options configures New. Nil collaborators are replaced by no-ops.
type Options struct {
	Renderer Renderer
	Sound    Sound
	Input    Input
	Seed     int64
}

// World is the simulation context. It is owned by a single goroutine.
type World struct {
	ECS      *ecs.ECS
	Hitboxes *collision.Registry
	Effects  effects.Set
	Stock    *Stock
	Items    items.Catalogue

	Renderer Renderer
	Sound    Sound
	Input    Input

	Now     time.Duration
	Current string
	Player  *donburi.Entry
	// UI is the id of the interface opened by the last interaction.
	UI string

	Session ulid.ULID
	Log     *logrus.Entry
	Rand    *rand.Rand

	maps   map[string]*Map
	actors []*donburi.Entry
}

type contextData struct {
	w *World
}

var ref = donburi.NewComponentType[contextData]()

func New(opts Options) *World {
	if opts.Renderer == nil {
		opts.Renderer = NopRenderer{}
	}
	if opts.Sound == nil {
		opts.Sound = NopSound{}
	}
	if opts.Input == nil {
		opts.Input = NopInput{}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	session := ulid.Make()
	w := &World{
		ECS:      ecs.NewECS(donburi.NewWorld()),
		Hitboxes: collision.NewRegistry(),
		Items:    items.Catalogue{},
		Renderer: opts.Renderer,
		Sound:    opts.Sound,
		Input:    opts.Input,
		Session:  session,
		Log:      logger.Log.WithField("session", session.String()),
		Rand:     rand.New(rand.NewSource(opts.Seed)),
		maps:     make(map[string]*Map),
	}
	w.Stock = newStock()
	w.Effects.Add(w.Stock.All()...)

	entry := w.ECS.World.Entry(w.ECS.World.Create(ref))
	ref.SetValue(entry, contextData{w: w})
	return w
}

// From returns the World that owns e.
func From(e *ecs.ECS) *World {
	entry, ok := ref.First(e.World)
	if !ok {
		panic("world: ECS was not created by world.New")
	}
	return ref.Get(entry).w
}

// Step advances the simulation to now and dispatches queued events.
func (w *World) Step(now time.Duration) {
	w.Now = now
	w.ECS.Update()
	events.ProcessAllEvents(w.ECS.World)
}

// AddMap registers a map and gives it a resolv space for steering probes.
func (w *World) AddMap(m Map) *Map {
	mp := m
	w.maps[m.ID] = &mp
	cell := int(config.C.TileSize / 2)
	w.Hitboxes.AttachSpace(m.ID, resolv.NewSpace(int(m.Width), int(m.Height), cell, cell))
	if w.Current == "" {
		w.Current = m.ID
	}
	return &mp
}

func (w *World) Map(id string) (*Map, error) {
	m, ok := w.maps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, id)
	}
	return m, nil
}

// CurrentMap returns the active map, or nil before any map was added.
func (w *World) CurrentMap() *Map {
	return w.maps[w.Current]
}

// Logger returns the session logger tagged with a subsystem name.
func (w *World) Logger(component string) *logrus.Entry {
	return w.Log.WithField("component", component)
}

// Rng derives an independent random source for one consumer.
func (w *World) Rng() *rand.Rand {
	return rand.New(rand.NewSource(w.Rand.Int63()))
}
