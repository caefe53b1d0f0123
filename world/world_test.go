package world_test

import (
	"os"
	"testing"

	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/config"
	"github.com/automoto/openworld/logger"
	"github.com/automoto/openworld/systems/factory"
	"github.com/automoto/openworld/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func newWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(world.Options{Seed: 7})
	w.AddMap(world.Map{ID: "town", Width: 640, Height: 640, SpawnX: 320, SpawnY: 300})
	w.AddMap(world.Map{ID: "cave", Width: 320, Height: 320, SpawnX: 40, SpawnY: 50})
	return w
}

func TestNewFillsCollaborators(t *testing.T) {
	w := world.New(world.Options{})
	assert.NotNil(t, w.Renderer)
	assert.NotNil(t, w.Sound)
	assert.NotNil(t, w.Input)
	assert.NotNil(t, w.Stock)
	assert.Len(t, w.Effects.Effects(), 4)
	assert.Same(t, w, world.From(w.ECS))
}

func TestMaps(t *testing.T) {
	w := newWorld(t)
	assert.Equal(t, "town", w.Current, "first map becomes current")
	assert.Equal(t, 640.0, w.CurrentMap().Width)
	assert.NotNil(t, w.Hitboxes.Space("cave"))

	_, err := w.Map("moon")
	assert.ErrorIs(t, err, world.ErrUnknownMap)
}

func TestRngIsSeeded(t *testing.T) {
	a := world.New(world.Options{Seed: 3})
	b := world.New(world.Options{Seed: 3})
	assert.Equal(t, a.Rng().Int63(), b.Rng().Int63())
}

func TestTransition(t *testing.T) {
	w := newWorld(t)
	assert.ErrorIs(t, w.Transition("town", "cave", 1, 1, config.Up), world.ErrNoPlayer)

	player, err := factory.SpawnPlayer(w, "town", 100, 100)
	require.NoError(t, err)
	pc := components.PlayerControl.Get(player)
	pc.HasDashed = true

	require.NoError(t, w.Transition("town", "cave", 60, 70, config.Left))
	a := components.Actor.Get(player)
	assert.Equal(t, "cave", w.Current)
	assert.Equal(t, "cave", a.Map)
	assert.Equal(t, "cave", a.Collision.Map)
	assert.Equal(t, "cave", pc.Raycast.Map)
	assert.Equal(t, config.Left, a.Direction)
	assert.False(t, pc.HasDashed)
	cx, cy := a.Combat.Center()
	assert.Equal(t, 60.0, cx)
	assert.Equal(t, 70.0, cy)

	require.NoError(t, w.TransitionToSpawn("town"))
	assert.Equal(t, 320.0, a.X)
	assert.Equal(t, 300.0, a.Y)
	assert.Equal(t, config.Left, a.Direction)

	assert.ErrorIs(t, w.Transition("town", "moon", 0, 0, config.Up), world.ErrUnknownMap)
	assert.Equal(t, "town", w.Current)
}

func TestTransitionChecksDepartureAndClampsArrival(t *testing.T) {
	w := newWorld(t)
	player, err := factory.SpawnPlayer(w, "town", 100, 100)
	require.NoError(t, err)
	a := components.Actor.Get(player)

	err = w.Transition("cave", "town", 50, 50, config.Up)
	assert.ErrorIs(t, err, world.ErrNotOnMap)
	assert.Equal(t, "town", a.Map)
	assert.Equal(t, 100.0, a.X)

	require.NoError(t, w.Transition("town", "cave", -40, 9000, config.Down))
	assert.Equal(t, a.HalfExtent(), a.X)
	assert.Equal(t, 320-a.HalfExtentY(), a.Y)
	assert.True(t, a.Combat.WithinBounds(320, 320))
	assert.Equal(t, "cave", w.PlayerMap())
}

func TestDamageAndDeath(t *testing.T) {
	w := newWorld(t)
	_, err := factory.SpawnPlayer(w, "town", 100, 100)
	require.NoError(t, err)
	slime, err := factory.SpawnMob(w, "town", 300, 300, "slime")
	require.NoError(t, err)
	crate, err := factory.SpawnMob(w, "town", 400, 300, "crate")
	require.NoError(t, err)

	var dead []string
	world.Deaths.Subscribe(w.ECS.World, func(_ donburi.World, ev world.DeathEvent) {
		dead = append(dead, ev.Name)
	})

	require.NoError(t, w.ApplyDamage(slime, 2))
	assert.Equal(t, 4, components.Health.Get(slime).Current)
	assert.True(t, components.Actor.Get(slime).Active)

	require.NoError(t, w.ApplyDamage(crate, 50), "untracked life ignores damage")
	assert.True(t, components.Actor.Get(crate).Active)

	require.NoError(t, w.ApplyDamage(slime, 10))
	a := components.Actor.Get(slime)
	assert.Equal(t, -6, components.Health.Get(slime).Current, "life is not clamped")
	assert.False(t, a.Active)
	assert.False(t, a.Combat.Active)
	assert.False(t, a.Collision.Active)
	assert.True(t, slime.Valid(), "removal waits for the sweep")

	w.Step(0)
	assert.Equal(t, []string{"slime"}, dead)

	before := w.Hitboxes.Len()
	w.Sweep()
	assert.False(t, slime.Valid())
	assert.Len(t, w.Actors(), 2)
	assert.Equal(t, before-2, w.Hitboxes.Len())
}

func TestDestroyReleasesDrag(t *testing.T) {
	w := newWorld(t)
	player, err := factory.SpawnPlayer(w, "town", 100, 100)
	require.NoError(t, err)
	crate, err := factory.SpawnMob(w, "town", 160, 100, "crate")
	require.NoError(t, err)
	pc := components.PlayerControl.Get(player)
	pc.Dragged = crate

	require.NoError(t, w.Destroy(crate))
	assert.Nil(t, pc.Dragged)
	assert.ErrorIs(t, w.Destroy(player), world.ErrPlayerDestroyed)
}

func TestTriggerInteraction(t *testing.T) {
	w := newWorld(t)
	sign := factory.CreateInteractable(w, "town", 10, 10, 20, 20, "sign-welcome")

	var got []world.InteractionEvent
	world.Interactions.Subscribe(w.ECS.World, func(_ donburi.World, ev world.InteractionEvent) {
		got = append(got, ev)
	})

	w.TriggerInteraction(sign)
	w.Step(0)

	assert.Equal(t, "sign-welcome", w.UI)
	require.Len(t, got, 1)
	assert.Equal(t, sign.Entity(), got[0].Source.Entity())
}
