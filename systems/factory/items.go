package factory

import (
	"time"

	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/items"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
)

const potionHeal = 5

// RegisterItems fills the world catalogue with the stock items.
func RegisterItems(w *world.World) {
	potion := items.NewConsumable("potion", "Restores a little health.", func(holder *donburi.Entry, _ time.Duration) bool {
		if !holder.Valid() || !holder.HasComponent(components.Health) {
			return false
		}
		h := components.Health.Get(holder)
		if h.Current >= h.Max {
			return false
		}
		h.Current = min(h.Current+potionHeal, h.Max)
		return true
	}).WithMaxCount(10)

	charm := items.NewPassive("charm", "Slowly heals its bearer.", w.Stock.Regeneration, time.Second)
	charm.WithMaxCount(1)

	key := items.NewItem("old key", "Opens something, somewhere.").AsQuestItem()

	w.Items.Register(potion, charm, key, items.NewItem("stone", "Just a stone."))
}

// GiveItem adds count items of the named kind to the player inventory and
// returns how many did not fit.
func GiveItem(w *world.World, name string, count int) (int, error) {
	item, err := w.Items.Get(name)
	if err != nil {
		return 0, err
	}
	if w.Player == nil || !w.Player.HasComponent(components.Inventory) {
		return 0, world.ErrNoPlayer
	}
	rest := components.Inventory.Get(w.Player).Add(items.NewStack(item, count))
	if rest == nil {
		return 0, nil
	}
	return rest.Count, nil
}
