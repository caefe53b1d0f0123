package systems

import (
	"testing"
	"time"

	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/systems/factory"
	"github.com/automoto/openworld/tags"
	"github.com/automoto/openworld/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func countTagged(w *world.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w.ECS.World)
}

func testSwing(damage int, targetsPlayer bool) factory.SwingSpec {
	return factory.SwingSpec{
		Damage:        damage,
		Reach:         48,
		Width:         64,
		Segments:      1,
		Duration:      300 * time.Millisecond,
		TargetsPlayer: targetsPlayer,
	}
}

func TestSwingHitsEachTargetOnce(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	mob := spawnBlock(t, s.w, "dummy", 200, 250, 10)

	swing := factory.CreateSwing(s.w, player, testSwing(2, false))
	s.step(5)
	assert.Equal(t, 8, components.Health.Get(mob).Current)
	assert.True(t, components.Attack.Get(swing).Hit[mob.Entity()])

	s.stepUntil(400 * time.Millisecond)
	assert.Equal(t, 8, components.Health.Get(mob).Current)
	assert.False(t, swing.Valid(), "expired swing is swept")
	assert.Equal(t, 20, components.Health.Get(player).Current, "wielder is never hit")
}

func TestSwingFactions(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	mob := spawnBlock(t, s.w, "dummy", 200, 250, 10)

	factory.CreateSwing(s.w, player, testSwing(2, true))
	s.step(3)
	assert.Equal(t, 10, components.Health.Get(mob).Current, "player-targeting attack ignores mobs")

	attacker := spawnBlock(t, s.w, "biter", 200, 260, 5)
	components.Actor.Get(attacker).Direction = cfg.Up
	factory.CreateSwing(s.w, attacker, factory.SwingSpec{
		Damage: 3, Reach: 40, Width: 20, Segments: 1, Duration: time.Second, TargetsPlayer: true,
	})
	s.step(3)
	assert.Equal(t, 17, components.Health.Get(player).Current)
	assert.Equal(t, 10, components.Health.Get(mob).Current)
}

func TestSwingFollowsWielder(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	swing := factory.CreateSwing(s.w, player, testSwing(1, false))
	atk := components.Attack.Get(swing)
	cx, cy := atk.Hitboxes[0].Center()
	assert.Equal(t, 200.0, cx)
	assert.Equal(t, 256.0, cy)

	a := components.Actor.Get(player)
	a.X += 30
	a.PlaceHitboxes()
	s.step(1)

	cx, _ = atk.Hitboxes[0].Center()
	assert.Equal(t, 230.0, cx)
}

func TestSwingSegmentsSplitReach(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	components.Actor.Get(player).Direction = cfg.Right

	spec := testSwing(1, false)
	spec.Reach = 60
	spec.Segments = 3
	atk := components.Attack.Get(factory.CreateSwing(s.w, player, spec))

	require.Len(t, atk.Hitboxes, 3)
	for i, h := range atk.Hitboxes {
		assert.Equal(t, 20.0, h.W)
		assert.Equal(t, 64.0, h.H)
		assert.InDelta(t, 224+20*float64(i), h.X1(), 1e-9)
	}
}

func TestDeathRemovesMob(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	mob := spawnBlock(t, s.w, "dummy", 200, 250, 2)

	var deaths []string
	world.Deaths.Subscribe(s.w.ECS.World, func(_ donburi.World, ev world.DeathEvent) {
		deaths = append(deaths, ev.Name)
	})

	factory.CreateSwing(s.w, player, testSwing(2, false))
	s.step(1)

	assert.Equal(t, []string{"dummy"}, deaths)
	assert.False(t, mob.Valid())
	assert.Len(t, s.w.Actors(), 1)
	assert.Equal(t, player.Entity(), s.w.Actors()[0].Entity())
}

func TestPlayerDeathKeepsPlayer(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)

	var died bool
	world.Deaths.Subscribe(s.w.ECS.World, func(_ donburi.World, ev world.DeathEvent) {
		died = ev.Actor.Entity() == player.Entity()
	})

	require.NoError(t, s.w.ApplyDamage(player, 100))
	s.step(1)

	assert.True(t, died)
	assert.True(t, player.Valid())
	assert.True(t, components.Actor.Get(player).Active)
	assert.ErrorIs(t, s.w.Destroy(player), world.ErrPlayerDestroyed)
}

func TestProjectileStopsAtWall(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	factory.CreateWall(s.w, "field", 300, 0, 20, 640)
	mob := spawnBlock(t, s.w, "hiding", 340, 200, 10)

	p := factory.CreateProjectile(s.w, player, 200, 200, 400, 200, factory.PlayerProjectile(s.w))
	s.step(6)

	assert.False(t, p.Valid())
	assert.Equal(t, 10, components.Health.Get(mob).Current)
}

func TestProjectileHitsOnceAndBreaks(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	mob := spawnBlock(t, s.w, "target", 340, 200, 10)
	behind := spawnBlock(t, s.w, "behind", 400, 200, 10)

	spec := factory.PlayerProjectile(s.w)
	spec.StopsOnWalls = false
	p := factory.CreateProjectile(s.w, player, 200, 200, 400, 200, spec)
	s.step(12)

	assert.False(t, p.Valid())
	assert.Equal(t, 8, components.Health.Get(mob).Current)
	assert.Equal(t, 10, components.Health.Get(behind).Current)
}

func TestProjectileLeavesMap(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 100, 100)
	require.NoError(t, err)

	factory.CreateProjectile(s.w, player, 100, 100, 0, 100, factory.PlayerProjectile(s.w))
	require.Equal(t, 1, countTagged(s.w, tags.Projectile))

	s.step(8)
	assert.Equal(t, 0, countTagged(s.w, tags.Projectile))
}

func TestProjectileFanSpreadsAroundAim(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 300, 300)
	require.NoError(t, err)

	fan := factory.CreateProjectileFan(s.w, player, 300, 300, 400, 300, 3, 0.3, factory.PlayerProjectile(s.w))
	require.Len(t, fan, 3)
	mid := components.Attack.Get(fan[1])
	assert.InDelta(t, cfg.Combat.ProjectileSpeed, mid.VX, 1e-9)
	assert.InDelta(t, 0, mid.VY, 1e-9)
	assert.Less(t, components.Attack.Get(fan[0]).VY, 0.0)
	assert.Greater(t, components.Attack.Get(fan[2]).VY, 0.0)
}
