package systems

import (
	"math"
	"testing"

	"github.com/automoto/openworld/ai"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/systems/factory"
	"github.com/automoto/openworld/tags"
	"github.com/automoto/openworld/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowerClosesIn(t *testing.T) {
	s := newSim(t)
	_, pa, _ := spawnTestPlayer(t, s, 100, 100)
	stalker, err := factory.SpawnMob(s.w, "field", 500, 500, "stalker")
	require.NoError(t, err)
	ma := components.Actor.Get(stalker)

	before := math.Hypot(ma.X-pa.X, ma.Y-pa.Y)
	s.step(30)
	after := math.Hypot(ma.X-pa.X, ma.Y-pa.Y)

	assert.Less(t, after, before)
	assert.InDelta(t, before-30*cfg.Mobs["stalker"].Follower.ChasingSpeed, after, 1e-6)
}

func TestMeleeMobSwingsAtPlayer(t *testing.T) {
	s := newSim(t)
	player, _, _ := spawnTestPlayer(t, s, 200, 200)
	stalker, err := factory.SpawnMob(s.w, "field", 200, 245, "stalker")
	require.NoError(t, err)

	s.step(2)

	ma := components.Actor.Get(stalker)
	assert.Equal(t, cfg.Attack, ma.State)
	assert.Equal(t, cfg.Up, ma.Direction)
	assert.Equal(t, 20-cfg.Mobs["stalker"].Damage, components.Health.Get(player).Current)
}

func TestArcherShootsPlayer(t *testing.T) {
	s := newSim(t)
	player, _, _ := spawnTestPlayer(t, s, 200, 200)
	_, err := factory.SpawnMob(s.w, "field", 500, 200, "archer")
	require.NoError(t, err)

	s.step(1)
	assert.Equal(t, 1, countTagged(s.w, tags.Projectile))

	s.step(60)
	assert.Equal(t, 20-cfg.Mobs["archer"].Damage, components.Health.Get(player).Current)
}

func TestFaultedBrainStandsStill(t *testing.T) {
	s := newSim(t)
	spawnTestPlayer(t, s, 100, 100)
	stalker, err := factory.SpawnMob(s.w, "field", 500, 500, "stalker")
	require.NoError(t, err)
	components.AI.Get(stalker).Faulted = true

	s.step(10)

	ma := components.Actor.Get(stalker)
	assert.Equal(t, 500.0, ma.X)
	assert.Equal(t, 500.0, ma.Y)
}

func TestMobsOnOtherMapsDoNotThink(t *testing.T) {
	s := newSim(t)
	spawnTestPlayer(t, s, 100, 100)
	s.w.AddMap(world.Map{ID: "cave", Width: 640, Height: 640})
	stalker, err := factory.SpawnMob(s.w, "cave", 200, 200, "stalker")
	require.NoError(t, err)

	s.step(10)

	ma := components.Actor.Get(stalker)
	assert.Equal(t, 200.0, ma.X)
	assert.Equal(t, ai.ModeIdle, components.AI.Get(stalker).Mode)
}

func TestBrainPanicFaultsOnlyThatMob(t *testing.T) {
	s := newSim(t)
	spawnTestPlayer(t, s, 100, 100)
	broken, err := factory.SpawnMob(s.w, "field", 500, 100, "stalker")
	require.NoError(t, err)
	healthy, err := factory.SpawnMob(s.w, "field", 500, 500, "stalker")
	require.NoError(t, err)
	components.AI.Get(broken).Brain = &ai.Brain{}

	ha := components.Actor.Get(healthy)
	require.NotPanics(t, func() { s.step(1) })

	assert.True(t, components.AI.Get(broken).Faulted)
	ba := components.Actor.Get(broken)
	assert.Equal(t, 500.0, ba.X)
	assert.Equal(t, 100.0, ba.Y)
	assert.Less(t, ha.X, 500.0, "the next mob still thinks and moves")
	assert.False(t, components.AI.Get(healthy).Faulted)
}
