package items

import (
	"errors"
	"fmt"
)

// ErrUnknownItem is returned when a name has no registered definition.
var ErrUnknownItem = errors.New("unknown item")

// Catalogue maps item names to their definitions.
type Catalogue map[string]*Item

func (c Catalogue) Register(items ...*Item) {
	for _, it := range items {
		c[it.Name] = it
	}
}

func (c Catalogue) Get(name string) (*Item, error) {
	it, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return it, nil
}
