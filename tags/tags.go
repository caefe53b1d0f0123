package tags

import "github.com/yohamta/donburi"

var (
	Actor        = donburi.NewTag().SetName("Actor")
	Player       = donburi.NewTag().SetName("Player")
	Mob          = donburi.NewTag().SetName("Mob")
	Attack       = donburi.NewTag().SetName("Attack")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Swing        = donburi.NewTag().SetName("Swing")
	Interactable = donburi.NewTag().SetName("Interactable")
	Wall         = donburi.NewTag().SetName("Wall")
	Trigger      = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for hitbox objects
const (
	ResolvCollision = "collision"
	ResolvCombat    = "combat"
	ResolvTrigger   = "trigger"
	ResolvPlayer    = "player"
)
