package components

import (
	"github.com/automoto/openworld/items"
	"github.com/yohamta/donburi"
)

type InventoryData struct {
	*items.Inventory
}

var Inventory = donburi.NewComponentType[InventoryData]()
