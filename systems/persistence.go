package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/items"
	"github.com/automoto/openworld/logger"
	"github.com/automoto/openworld/world"
	"github.com/quasilyte/gdata"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	settingsKey = "settings"
	progressKey = "progress"
)

// ErrNoStore is returned when persistence was never initialized.
var ErrNoStore = errors.New("persistence not initialized")

// Store is the slot storage used for saves. *gdata.Manager implements it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store Store

// InitPersistence opens the gdata slot storage for the app.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
		return err
	}
	store = m
	return nil
}

// UseStore replaces the slot storage, for headless runs and tests.
func UseStore(s Store) {
	store = s
}

// SavedSettings are the audio settings kept between sessions.
type SavedSettings struct {
	MusicVolume float64 `msgpack:"music_volume"`
	SFXVolume   float64 `msgpack:"sfx_volume"`
	Muted       bool    `msgpack:"muted"`
}

// SavedStack is one inventory slot by item name.
type SavedStack struct {
	Item  string `msgpack:"item"`
	Count int    `msgpack:"count"`
}

// SavedGame is the player snapshot written on save.
type SavedGame struct {
	Map       string       `msgpack:"map"`
	X         float64      `msgpack:"x"`
	Y         float64      `msgpack:"y"`
	Direction int          `msgpack:"direction"`
	Health    int          `msgpack:"health"`
	Charges   int          `msgpack:"charges"`
	Inventory []SavedStack `msgpack:"inventory"`
}

func loadItem(key string, v any) (bool, error) {
	if store == nil {
		return false, ErrNoStore
	}
	data, err := store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if store == nil {
		return ErrNoStore
	}
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSettings returns the saved settings, or nil when there are none.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsKey, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// Snapshot captures the player state of w.
func Snapshot(w *world.World) (*SavedGame, error) {
	p := w.Player
	if p == nil || !p.Valid() {
		return nil, world.ErrNoPlayer
	}
	a := components.Actor.Get(p)
	g := &SavedGame{
		Map:       a.Map,
		X:         a.X,
		Y:         a.Y,
		Direction: int(a.Direction),
		Charges:   a.Charges,
	}
	if p.HasComponent(components.Health) {
		g.Health = components.Health.Get(p).Current
	}
	if p.HasComponent(components.Inventory) {
		for _, s := range components.Inventory.Get(p).Stacks() {
			if s != nil {
				g.Inventory = append(g.Inventory, SavedStack{Item: s.Item.Name, Count: s.Count})
			}
		}
	}
	return g, nil
}

// Restore moves the player back to a snapshot. Unknown items are logged
// and skipped.
func Restore(w *world.World, g *SavedGame) error {
	if err := w.Transition(w.PlayerMap(), g.Map, g.X, g.Y, cfg.Direction(g.Direction)); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	p := w.Player
	a := components.Actor.Get(p)
	a.Charges = min(g.Charges, cfg.Combat.MaxCharges)
	a.ChargeTickAt = w.Now
	if p.HasComponent(components.Health) {
		components.Health.Get(p).Current = g.Health
	}
	if p.HasComponent(components.Inventory) {
		inv := components.Inventory.Get(p)
		inv.Clear()
		for _, s := range g.Inventory {
			item, err := w.Items.Get(s.Item)
			if err != nil {
				w.Logger("persistence").WithError(err).Warn("saved item skipped")
				continue
			}
			inv.Add(items.NewStack(item, s.Count))
		}
	}
	return nil
}

// SaveGame writes the player snapshot.
func SaveGame(w *world.World) error {
	g, err := Snapshot(w)
	if err != nil {
		return err
	}
	if err := saveItem(progressKey, g); err != nil {
		return err
	}
	w.Logger("persistence").WithField("map", g.Map).Info("game saved")
	return nil
}

// LoadGame restores the saved snapshot. It reports false when there is no
// save.
func LoadGame(w *world.World) (bool, error) {
	var g SavedGame
	ok, err := loadItem(progressKey, &g)
	if err != nil || !ok {
		return false, err
	}
	if err := Restore(w, &g); err != nil {
		return false, err
	}
	return true, nil
}

// HasSaveGame reports whether a snapshot was saved.
func HasSaveGame() bool {
	if store == nil {
		return false
	}
	data, err := store.LoadItem(progressKey)
	return err == nil && len(data) > 0
}

// ClearGameProgress drops the saved snapshot.
func ClearGameProgress() error {
	if store == nil {
		return ErrNoStore
	}
	return store.SaveItem(progressKey, nil)
}
