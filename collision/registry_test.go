package collision

import (
	"errors"
	"testing"

	"github.com/automoto/openworld/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func box(x1, y1, x2, y2 float64) *Hitbox {
	return New(x1, y1, x2, y2, "field", NoOwner(), false)
}

func TestSetSwapsInvertedCorners(t *testing.T) {
	h := box(10, 20, 0, 5)

	assert.Equal(t, 0.0, h.X1())
	assert.Equal(t, 5.0, h.Y1())
	assert.Equal(t, 10.0, h.X2())
	assert.Equal(t, 20.0, h.Y2())

	h.MoveBy(3, -5)
	assert.Equal(t, 3.0, h.X1())
	assert.Equal(t, 15.0, h.Y2())

	h.CenterAround(100, 100)
	cx, cy := h.Center()
	assert.Equal(t, 100.0, cx)
	assert.Equal(t, 100.0, cy)
	assert.Equal(t, 10.0, h.W)
}

func TestOverlapsRule(t *testing.T) {
	a := box(0, 0, 10, 10)

	t.Run("touching edges overlap", func(t *testing.T) {
		assert.True(t, Overlaps(a, box(10, 0, 20, 10)))
		assert.True(t, Overlaps(a, box(10, 10, 20, 20)))
	})
	t.Run("gap does not overlap", func(t *testing.T) {
		assert.False(t, Overlaps(a, box(10.01, 0, 20, 10)))
	})
	t.Run("identical box never overlaps itself", func(t *testing.T) {
		assert.False(t, Overlaps(a, a))
	})
	t.Run("inactive never overlaps", func(t *testing.T) {
		b := box(5, 5, 15, 15)
		b.Destroy()
		assert.False(t, Overlaps(a, b))
	})
	t.Run("different or empty map", func(t *testing.T) {
		b := New(5, 5, 15, 15, "cave", NoOwner(), false)
		assert.False(t, Overlaps(a, b))
		c := New(5, 5, 15, 15, "", NoOwner(), false)
		d := New(5, 5, 15, 15, "", NoOwner(), false)
		assert.False(t, Overlaps(c, d))
	})
}

func TestQueryOrderAndClasses(t *testing.T) {
	r := NewRegistry()
	probe := r.Register(box(0, 0, 10, 10), ClassCombat)
	wall := r.Register(box(5, 0, 15, 10), ClassCollision)
	hit1 := r.Register(box(2, 2, 4, 4), ClassCombat)
	trigger := r.Register(box(0, 0, 1, 1), ClassNone)
	hit2 := r.Register(box(8, 8, 30, 30), ClassCombat)
	r.Register(box(50, 50, 60, 60), ClassCombat)

	got := r.Query(probe, true, true)
	assert.Equal(t, []*Hitbox{hit1, hit2, wall}, got)

	assert.Equal(t, []*Hitbox{wall}, r.Query(probe, true, false))
	assert.Equal(t, []*Hitbox{hit1, hit2}, r.Query(probe, false, true))
	assert.Equal(t, []*Hitbox{trigger}, r.Query(probe, false, false))
}

func TestQueryEmptyResults(t *testing.T) {
	r := NewRegistry()
	h := r.Register(New(0, 0, 10, 10, "", NoOwner(), false), ClassCombat)
	r.Register(New(0, 0, 10, 10, "", NoOwner(), false), ClassCombat)

	got := r.Query(h, true, true)
	assert.Empty(t, got)
}

func TestSweepDropsInactive(t *testing.T) {
	r := NewRegistry()
	space := resolv.NewSpace(100, 100, 10, 10)
	r.AttachSpace("field", space)

	a := r.Register(box(0, 0, 10, 10), ClassCollision)
	b := r.Register(box(0, 0, 10, 10), ClassCombat)
	c := r.Register(box(0, 0, 10, 10), ClassNone)
	require.NotNil(t, b.Space)

	b.Destroy()
	c.Destroy()
	assert.Equal(t, 3, r.Len())

	assert.Equal(t, 2, r.Sweep())
	assert.Equal(t, 1, r.Len())
	assert.Nil(t, b.Space)
	assert.Equal(t, []*Hitbox{a}, r.All())
	assert.Empty(t, r.Query(a, true, true))
}

func TestProbeSeesWallsThroughSpace(t *testing.T) {
	r := NewRegistry()
	r.AttachSpace("field", resolv.NewSpace(200, 200, 16, 16))

	mover := r.Register(box(0, 0, 20, 20), ClassCollision)
	wall := r.Register(box(40, 0, 60, 20), ClassCollision)

	assert.False(t, r.Probe(mover, 5, 0, nil))
	assert.True(t, r.Probe(mover, 30, 0, nil))
	assert.False(t, r.Probe(mover, 30, 0, func(h *Hitbox) bool { return h == wall }))

	wall.Destroy()
	assert.False(t, r.Probe(mover, 30, 0, nil))
}

func TestOwnerAccessors(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(tags.Actor))

	o := ActorOwner(e)
	got, err := o.Actor()
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.True(t, o.Alive())

	_, err = o.Attack()
	assert.True(t, errors.Is(err, ErrOwnerKind))
	_, err = NoOwner().Interactable()
	assert.ErrorIs(t, err, ErrOwnerKind)

	w.Remove(e.Entity())
	assert.False(t, o.Alive())
}
