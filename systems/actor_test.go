package systems

import (
	"testing"
	"time"

	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/systems/factory"
	"github.com/automoto/openworld/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// spawnBlock places a brainless 20x20 actor on the field.
func spawnBlock(t *testing.T, w *world.World, name string, x, y float64, health int) *donburi.Entry {
	t.Helper()
	return spawnBlockWith(t, w, "field", name, x, y, health)
}

func spawnBlockOn(t *testing.T, w *world.World, mapID, name string, x, y float64) *donburi.Entry {
	t.Helper()
	return spawnBlockWith(t, w, mapID, name, x, y, 0)
}

func spawnBlockWith(t *testing.T, w *world.World, mapID, name string, x, y float64, health int) *donburi.Entry {
	t.Helper()
	e, err := factory.SpawnActor(w, factory.ActorSpec{
		Name:      name,
		Sprite:    name,
		Map:       mapID,
		X:         x,
		Y:         y,
		CombatBox: cfg.Box{W: 20, H: 20},
		CollBox:   cfg.Box{W: 20, H: 20},
	}, health, nil)
	require.NoError(t, err)
	return e
}

func TestMoveResolvesAxesSeparately(t *testing.T) {
	s := newSim(t)
	factory.CreateWall(s.w, "field", 112, 0, 28, 300)
	block := spawnBlock(t, s.w, "block", 100, 100, 0)
	a := components.Actor.Get(block)
	a.VX, a.VY = 3, 3

	s.step(1)

	assert.Equal(t, 100.0, a.X, "x move into the wall is rolled back")
	assert.Equal(t, 0.0, a.VX)
	assert.Equal(t, 103.0, a.Y, "y move still happens")
	assert.Equal(t, 3.0, a.VY)
	assert.Equal(t, 90.0, a.Collision.X1())
	assert.Equal(t, 93.0, a.Collision.Y1())
}

func TestMoveClampsToMapEdges(t *testing.T) {
	s := newSim(t)
	left := spawnBlock(t, s.w, "left", 15, 100, 0)
	bottom := spawnBlock(t, s.w, "bottom", 300, 630, 0)
	la := components.Actor.Get(left)
	ba := components.Actor.Get(bottom)
	la.VX = -10
	ba.VY = 10

	s.step(1)
	assert.Equal(t, 10.0, la.X)
	assert.Equal(t, 0.0, la.VX)
	assert.Equal(t, 630.0, ba.Y)
	assert.Equal(t, 0.0, ba.VY)

	s.step(1)
	assert.Equal(t, 10.0, la.X)
	assert.Equal(t, 630.0, ba.Y)
	assert.True(t, la.Combat.WithinBounds(640, 640))
}

func TestActorsBlockEachOther(t *testing.T) {
	s := newSim(t)
	mover := spawnBlock(t, s.w, "mover", 100, 100, 0)
	spawnBlock(t, s.w, "wall-ish", 125, 100, 0)
	a := components.Actor.Get(mover)
	a.VX = 5

	s.step(1)

	assert.Equal(t, 100.0, a.X)
	assert.Equal(t, 0.0, a.VX)
}

func TestMoveOntoEdgeStops(t *testing.T) {
	s := newSim(t)
	a := components.Actor.Get(spawnBlock(t, s.w, "edger", 15, 300, 0))
	a.VX = -5

	s.step(1)

	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 0.0, a.VX, "landing exactly on the bound stops the actor")
	assert.Equal(t, cfg.Idle, a.State)
}

func TestOverlappingStartRollsBackBothAxes(t *testing.T) {
	s := newSim(t)
	factory.CreateWall(s.w, "field", 100, 0, 30, 300)
	a := components.Actor.Get(spawnBlock(t, s.w, "stuck", 100, 100, 0))
	a.VX, a.VY = 3, -2

	s.step(1)

	assert.Equal(t, 100.0, a.X)
	assert.Equal(t, 100.0, a.Y)
	assert.Equal(t, 0.0, a.VX)
	assert.Equal(t, 0.0, a.VY)
}

func TestActorPanicDoesNotStopFrame(t *testing.T) {
	s := newSim(t)
	first := components.Actor.Get(spawnBlock(t, s.w, "cursed", 100, 100, 0))
	second := components.Actor.Get(spawnBlock(t, s.w, "bystander", 300, 300, 0))
	first.VX, second.VX = 2, 2

	trap := collision.New(80, 80, 130, 120, "field", collision.NoOwner(), false)
	trap.Command = func(_, _ *collision.Hitbox, _ time.Duration) {
		panic("trap misfired")
	}
	s.w.Hitboxes.Register(trap, collision.ClassNone)

	require.NotPanics(t, func() { s.step(1) })
	assert.Equal(t, 102.0, first.X)
	assert.Equal(t, 302.0, second.X, "later actors still update")
	assert.Equal(t, cfg.Walk, second.State)

	s.step(1)
	assert.Equal(t, 304.0, second.X)
}

func TestOffMapActorsAreFrozen(t *testing.T) {
	s := newSim(t,
		world.Map{ID: "field", Width: 640, Height: 640},
		world.Map{ID: "cave", Width: 320, Height: 320},
	)
	a := components.Actor.Get(spawnBlockOn(t, s.w, "cave", "sleeper", 100, 100))
	a.VX = 4

	s.step(3)

	assert.Equal(t, 100.0, a.X)
}

func TestAnimationFollowsVelocity(t *testing.T) {
	s := newSim(t)
	block := spawnBlock(t, s.w, "walker", 300, 300, 0)
	a := components.Actor.Get(block)
	a.VX, a.VY = -1, 0.5

	s.step(1)
	assert.Equal(t, cfg.Walk, a.State)
	assert.Equal(t, cfg.Left, a.Direction)
	assert.Equal(t, 0, a.Frame)

	s.stepUntil(s.w.Now + cfg.Animation.FrameDuration)
	assert.Equal(t, 1, a.Frame)

	a.VX, a.VY = 0, 0
	s.step(1)
	assert.Equal(t, cfg.Idle, a.State)
	assert.Equal(t, 0, a.Frame)
}

func TestChargesRegenerate(t *testing.T) {
	s := newSim(t)
	player, err := factory.SpawnPlayer(s.w, "field", 200, 200)
	require.NoError(t, err)
	a := components.Actor.Get(player)
	a.Charges = 0

	s.stepUntil(2 * time.Second)
	assert.Equal(t, 1, a.Charges)

	s.stepUntil(8 * time.Second)
	assert.Equal(t, cfg.Combat.MaxCharges, a.Charges)

	s.stepUntil(12 * time.Second)
	assert.Equal(t, cfg.Combat.MaxCharges, a.Charges)
}

func TestTransitionTriggerMovesPlayer(t *testing.T) {
	s := newSim(t,
		world.Map{ID: "town", Width: 640, Height: 640},
		world.Map{ID: "cave", Width: 320, Height: 320},
	)
	player, err := factory.SpawnPlayer(s.w, "town", 60, 100)
	require.NoError(t, err)
	factory.CreateTransition(s.w,
		factory.Gate{Map: "town", X: 0, Y: 0, W: 40, H: 200},
		factory.Gate{Map: "cave", ExitX: 160, ExitY: 160, Facing: cfg.Right},
	)

	s.step(1)

	a := components.Actor.Get(player)
	assert.Equal(t, "cave", s.w.Current)
	assert.Equal(t, "cave", a.Map)
	assert.Equal(t, "cave", a.Combat.Map)
	assert.Equal(t, 160.0, a.X)
	assert.Equal(t, 160.0, a.Y)
	assert.Equal(t, cfg.Right, a.Direction)

	s.step(5)
	assert.Equal(t, "cave", s.w.Current)
}

func TestTransitionIgnoresMobs(t *testing.T) {
	s := newSim(t,
		world.Map{ID: "town", Width: 640, Height: 640},
		world.Map{ID: "cave", Width: 320, Height: 320},
	)
	e := spawnBlockOn(t, s.w, "town", "wanderer", 20, 100)
	factory.CreateTransition(s.w,
		factory.Gate{Map: "town", X: 0, Y: 0, W: 40, H: 200},
		factory.Gate{Map: "cave", ExitX: 160, ExitY: 160},
	)

	s.step(1)

	assert.Equal(t, "town", s.w.Current)
	assert.Equal(t, "town", components.Actor.Get(e).Map)
}
