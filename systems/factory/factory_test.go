package factory

import (
	"os"
	"testing"

	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/leveldata"
	"github.com/automoto/openworld/logger"
	"github.com/automoto/openworld/tags"
	"github.com/automoto/openworld/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func newWorld() *world.World {
	w := world.New(world.Options{Seed: 11})
	w.AddMap(world.Map{ID: "field", Width: 640, Height: 640, SpawnX: 320, SpawnY: 320})
	return w
}

func count(w *world.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w.ECS.World)
}

func TestSpawnPlayer(t *testing.T) {
	w := newWorld()
	player, err := SpawnPlayer(w, "field", 100, 120)
	require.NoError(t, err)

	assert.Same(t, player, w.Player)
	a := components.Actor.Get(player)
	assert.Equal(t, cfg.Combat.MaxCharges, a.Charges)
	assert.Equal(t, cfg.Down, a.Direction)
	assert.True(t, a.Combat.Player)
	assert.Equal(t, collision.ClassCombat, a.Combat.Class)
	assert.Equal(t, collision.ClassCollision, a.Collision.Class)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
	assert.NotNil(t, components.Inventory.Get(player).Inventory)

	pc := components.PlayerControl.Get(player)
	assert.Equal(t, cfg.Player.FullSpeed, pc.MaxSpeed)
	assert.Equal(t, 2, w.Hitboxes.Len(), "the raycast is not registered")
	assert.Equal(t, 1, count(w, tags.Player))

	_, err = SpawnPlayer(w, "moon", 0, 0)
	assert.ErrorIs(t, err, world.ErrUnknownMap)
}

func TestSpawnMob(t *testing.T) {
	w := newWorld()

	slime, err := SpawnMob(w, "field", 300, 300, "slime")
	require.NoError(t, err)
	a := components.Actor.Get(slime)
	assert.Equal(t, "slime", a.Name)
	assert.Equal(t, cfg.Mobs["slime"].Damage, a.Damage)
	assert.True(t, slime.HasComponent(components.Health))
	assert.True(t, slime.HasComponent(components.AI))
	assert.Less(t, a.Collision.H, a.Combat.H)
	assert.InDelta(t, a.Combat.Y2(), a.Collision.Y2(), 1e-9, "collision box sits at the feet")

	crate, err := SpawnMob(w, "field", 400, 300, "crate")
	require.NoError(t, err)
	assert.False(t, crate.HasComponent(components.Health))
	assert.False(t, crate.HasComponent(components.AI))
	assert.True(t, components.Actor.Get(crate).Draggable)

	_, err = SpawnMob(w, "field", 0, 0, "dragon")
	assert.ErrorIs(t, err, ErrUnknownMob)
	_, err = SpawnMob(w, "moon", 0, 0, "slime")
	assert.ErrorIs(t, err, world.ErrUnknownMap)

	assert.Len(t, w.Actors(), 2)
}

func TestProfileFromConfig(t *testing.T) {
	assert.Nil(t, ProfileFromConfig(cfg.Mobs["crate"]))

	archer := ProfileFromConfig(cfg.Mobs["archer"])
	require.NotNil(t, archer)
	assert.True(t, archer.IsLongRange())
	assert.True(t, archer.IsWandering())
	assert.True(t, archer.CanAttack())
	assert.False(t, archer.IsRusher())

	shaman := ProfileFromConfig(cfg.Mobs["shaman"])
	require.NotNil(t, shaman)
	assert.True(t, shaman.IsMiddleRanged())
}

func TestCreateWallAndTriggers(t *testing.T) {
	w := newWorld()
	w.AddMap(world.Map{ID: "cave", Width: 320, Height: 320})

	wall := CreateWall(w, "field", 10, 20, 30, 40)
	h := components.Object.Get(wall).Hitbox
	assert.Equal(t, collision.OwnerNone, h.Owner.Kind())
	assert.Equal(t, 40.0, h.X2())
	assert.Equal(t, 60.0, h.Y2())

	a, b := CreateSwitchTriggers(w,
		Gate{Map: "field", X: 0, Y: 0, W: 10, H: 10, ExitX: 30, ExitY: 30},
		Gate{Map: "cave", X: 0, Y: 0, W: 10, H: 10, ExitX: 40, ExitY: 40},
	)
	assert.Equal(t, "field", components.Object.Get(a).Hitbox.Map)
	assert.Equal(t, "cave", components.Object.Get(b).Hitbox.Map)
	assert.Equal(t, collision.ClassNone, components.Object.Get(a).Hitbox.Class)

	c, d := CreateTeleportTriggers(w, "cave", Gate{X: 0, Y: 0, W: 5, H: 5}, Gate{X: 100, Y: 100, W: 5, H: 5})
	assert.Equal(t, "cave", components.Object.Get(c).Hitbox.Map)
	assert.Equal(t, "cave", components.Object.Get(d).Hitbox.Map)
	assert.Equal(t, 4, count(w, tags.Trigger))
}

func TestAttachInteractableFollowsActor(t *testing.T) {
	w := newWorld()
	slime, err := SpawnMob(w, "field", 300, 300, "slime")
	require.NoError(t, err)

	e := AttachInteractable(w, slime, "slime-chat")
	it := components.Interactable.Get(e)
	assert.Equal(t, "slime-chat", it.UI)
	assert.Same(t, slime, it.Follow)
	cx, cy := it.Hitbox.Center()
	assert.Equal(t, 300.0, cx)
	assert.Equal(t, 300.0, cy)
	assert.Equal(t, collision.OwnerInteractable, it.Hitbox.Owner.Kind())
}

func TestCreateLevelFromTMX(t *testing.T) {
	w := world.New(world.Options{Seed: 1})
	maps, ids, err := leveldata.LoadAllMaps(os.DirFS("../../leveldata"), "testdata")
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, CreateLevel(w, maps[id]))
	}

	town, err := w.Map("town")
	require.NoError(t, err)
	assert.Equal(t, 640.0, town.Width)
	assert.Equal(t, 480.0, town.Height)
	assert.Equal(t, 100.0, town.SpawnX)
	assert.Equal(t, 200.0, town.SpawnY)

	var names []string
	for _, e := range w.Actors() {
		names = append(names, components.Actor.Get(e).Name)
	}
	assert.Equal(t, []string{"slime", "stalker"}, names)
	assert.Equal(t, 2, count(w, tags.Interactable))
	assert.Equal(t, 2, count(w, tags.Trigger))
	assert.GreaterOrEqual(t, count(w, tags.Wall), 2)
}

func TestCreateLevelEdgeCases(t *testing.T) {
	w := world.New(world.Options{Seed: 1})

	err := CreateLevel(w, &leveldata.MapData{
		ID: "meadow", MapWidth: 320, MapHeight: 240,
		Mobs: []leveldata.MobSpawn{{Type: "dragon", X: 10, Y: 10}, {Type: "slime", X: 50, Y: 50}},
	})
	require.NoError(t, err, "unknown mobs are skipped")
	assert.Len(t, w.Actors(), 1)
	m, err := w.Map("meadow")
	require.NoError(t, err)
	assert.Equal(t, 160.0, m.SpawnX, "spawn defaults to the map center")
	assert.Equal(t, 120.0, m.SpawnY)

	err = CreateLevel(w, &leveldata.MapData{
		ID: "dead-end", MapWidth: 320, MapHeight: 240,
		Transitions: []leveldata.TransitionArea{{Rect: leveldata.Rect{W: 10, H: 10}}},
	})
	assert.Error(t, err)
}

func TestGiveItem(t *testing.T) {
	w := newWorld()
	RegisterItems(w)

	_, err := GiveItem(w, "potion", 1)
	assert.ErrorIs(t, err, world.ErrNoPlayer)

	player, err := SpawnPlayer(w, "field", 100, 100)
	require.NoError(t, err)

	rest, err := GiveItem(w, "potion", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, rest)
	assert.Equal(t, 3, components.Inventory.Get(player).Count("potion"))

	_, err = GiveItem(w, "moon rock", 1)
	assert.Error(t, err)
}

func TestPotionHealsUpToMax(t *testing.T) {
	w := newWorld()
	RegisterItems(w)
	player, err := SpawnPlayer(w, "field", 100, 100)
	require.NoError(t, err)
	_, err = GiveItem(w, "potion", 2)
	require.NoError(t, err)
	inv := components.Inventory.Get(player)
	h := components.Health.Get(player)

	require.NoError(t, inv.Use(0, player, 0))
	assert.Equal(t, h.Max, h.Current)
	assert.Equal(t, 2, inv.Count("potion"), "not consumed at full health")

	h.Current = h.Max - 2
	require.NoError(t, inv.Use(0, player, 0))
	assert.Equal(t, h.Max, h.Current)
	assert.Equal(t, 1, inv.Count("potion"))
}
