package items

import (
	"errors"
	"fmt"
	"time"

	"github.com/yohamta/donburi"
)

// Slots is the number of inventory slots.
const Slots = 9

var (
	ErrSlotEmpty   = errors.New("inventory slot is empty")
	ErrSlotRange   = errors.New("inventory slot out of range")
	ErrNotUsable   = errors.New("item is not consumable")
	ErrQuestItem   = errors.New("quest items cannot be discarded")
	ErrOverDiscard = errors.New("discard count exceeds stack")
)

// Inventory is a fixed row of slots. Occupied slots are packed to the left.
type Inventory struct {
	slots [Slots]*Stack
}

func NewInventory() *Inventory {
	return &Inventory{}
}

func (inv *Inventory) Slot(i int) (*Stack, error) {
	if i < 0 || i >= Slots {
		return nil, fmt.Errorf("%w: %d", ErrSlotRange, i)
	}
	if inv.slots[i] == nil {
		return nil, fmt.Errorf("%w: %d", ErrSlotEmpty, i)
	}
	return inv.slots[i], nil
}

// Stacks returns a copy of the slot row; empty slots are nil.
func (inv *Inventory) Stacks() [Slots]*Stack {
	return inv.slots
}

// NextSlot returns the first slot holding item with room left, or else the
// first empty slot, or -1.
func (inv *Inventory) NextSlot(item *Item) int {
	for i, s := range inv.slots {
		if s != nil && s.Item == item && s.Count < item.MaxCount {
			return i
		}
	}
	for i, s := range inv.slots {
		if s == nil {
			return i
		}
	}
	return -1
}

// Add stores the stack, filling partial stacks of the same item first.
// It returns what did not fit, or nil.
func (inv *Inventory) Add(stack *Stack) *Stack {
	if stack.Item.MaxCount <= 0 {
		return stack
	}
	for stack.Count > 0 {
		i := inv.NextSlot(stack.Item)
		if i == -1 {
			return stack
		}
		cur := inv.slots[i]
		if cur == nil {
			n := min(stack.Count, stack.Item.MaxCount)
			inv.slots[i] = &Stack{Item: stack.Item, Count: n}
			stack.Count -= n
			continue
		}
		n := min(stack.Count, stack.Item.MaxCount-cur.Count)
		cur.Add(n)
		stack.Count -= n
	}
	return nil
}

// Use consumes one item of slot i on holder.
func (inv *Inventory) Use(i int, holder *donburi.Entry, now time.Duration) error {
	s, err := inv.Slot(i)
	if err != nil {
		return err
	}
	if s.Item.Kind != KindConsumable || s.Item.OnUse == nil {
		return fmt.Errorf("%w: %s", ErrNotUsable, s.Item.Name)
	}
	if s.Item.OnUse(holder, now) {
		inv.take(i, 1)
	}
	return nil
}

// Discard removes n items from slot i.
func (inv *Inventory) Discard(i, n int) error {
	s, err := inv.Slot(i)
	if err != nil {
		return err
	}
	if s.Item.Quest {
		return fmt.Errorf("%w: %s", ErrQuestItem, s.Item.Name)
	}
	if n > s.Count {
		return fmt.Errorf("%w: %d > %d", ErrOverDiscard, n, s.Count)
	}
	inv.take(i, n)
	return nil
}

func (inv *Inventory) take(i, n int) {
	inv.slots[i].Add(-n)
	if inv.slots[i].Count <= 0 {
		inv.slots[i] = nil
		inv.shift(i)
	}
}

// shift closes the gap at start by moving later slots left.
func (inv *Inventory) shift(start int) {
	for i := start; i < Slots-1; i++ {
		if inv.slots[i+1] == nil {
			break
		}
		inv.slots[i] = inv.slots[i+1]
		inv.slots[i+1] = nil
	}
}

// UpdatePassives keeps the effect of every passive item applied on holder.
func (inv *Inventory) UpdatePassives(holder *donburi.Entry, now time.Duration) {
	for _, s := range inv.slots {
		if s == nil || s.Item.Kind != KindPassive || s.Item.Effect == nil {
			continue
		}
		s.Item.Effect.Apply(now, holder, s.Item.Duration)
	}
}

// Count totals the items of the given name across slots.
func (inv *Inventory) Count(name string) int {
	total := 0
	for _, s := range inv.slots {
		if s != nil && s.Item.Name == name {
			total += s.Count
		}
	}
	return total
}

// Clear empties every slot.
func (inv *Inventory) Clear() {
	inv.slots = [Slots]*Stack{}
}
