package items

import (
	"time"

	"github.com/automoto/openworld/effects"
	"github.com/automoto/openworld/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// DefaultMaxCount is the stack limit of items that do not set one.
const DefaultMaxCount = 99

const tooltipLimit = 35

type Kind int

const (
	KindBasic Kind = iota
	KindConsumable
	KindPassive
)

// UseFunc runs when a consumable is used by holder. It reports whether the
// item was consumed.
type UseFunc func(holder *donburi.Entry, now time.Duration) bool

// Item is an immutable item definition shared by every stack of it.
type Item struct {
	Name     string
	Tooltip  string
	MaxCount int
	Quest    bool
	Kind     Kind

	OnUse UseFunc

	// Passive items keep Effect applied on their holder for Duration past
	// each inventory update.
	Effect   *effects.Effect
	Duration time.Duration
}

func NewItem(name, tooltip string) *Item {
	return &Item{Name: name, Tooltip: clip(tooltip), MaxCount: DefaultMaxCount}
}

func NewConsumable(name, tooltip string, onUse UseFunc) *Item {
	it := NewItem(name, tooltip)
	it.Kind = KindConsumable
	it.OnUse = onUse
	return it
}

func NewPassive(name, tooltip string, effect *effects.Effect, duration time.Duration) *Item {
	it := NewItem(name, tooltip)
	it.Kind = KindPassive
	it.Effect = effect
	it.Duration = duration
	return it
}

func (it *Item) WithMaxCount(n int) *Item {
	it.MaxCount = n
	return it
}

func (it *Item) AsQuestItem() *Item {
	it.Quest = true
	return it
}

func clip(s string) string {
	r := []rune(s)
	if len(r) > tooltipLimit {
		return string(r[:tooltipLimit])
	}
	return s
}

// Stack is a count of one item.
type Stack struct {
	Item  *Item
	Count int
}

// NewStack builds a stack. Counts above the item maximum are kept and
// logged.
func NewStack(item *Item, count int) *Stack {
	if count > item.MaxCount {
		warn(item, count, "max item count reached")
	}
	return &Stack{Item: item, Count: count}
}

// Add changes the count by n. Going negative or above the maximum is logged
// and still applied.
func (s *Stack) Add(n int) {
	if s.Count < -n {
		warn(s.Item, s.Count+n, "negative item count")
	}
	if s.Count+n > s.Item.MaxCount {
		warn(s.Item, s.Count+n, "max item count reached")
	}
	s.Count += n
}

func warn(item *Item, count int, msg string) {
	logger.Log.WithFields(logrus.Fields{
		"component": "items",
		"item":      item.Name,
		"count":     count,
		"max":       item.MaxCount,
	}).Warn(msg)
}
