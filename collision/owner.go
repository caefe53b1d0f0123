package collision

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
)

// ErrOwnerKind is returned when a hitbox owner is read as the wrong kind.
var ErrOwnerKind = errors.New("hitbox owner kind mismatch")

// OwnerKind tags the variant held by an Owner.
type OwnerKind int

const (
	OwnerNone OwnerKind = iota
	OwnerActor
	OwnerAttack
	OwnerInteractable
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerActor:
		return "actor"
	case OwnerAttack:
		return "attack"
	case OwnerInteractable:
		return "interactable"
	default:
		return "none"
	}
}

// Owner is a non-owning reference from a hitbox to the entity that made it.
type Owner struct {
	kind  OwnerKind
	entry *donburi.Entry
}

// NoOwner is the owner of walls and triggers.
func NoOwner() Owner { return Owner{} }

func ActorOwner(e *donburi.Entry) Owner        { return Owner{kind: OwnerActor, entry: e} }
func AttackOwner(e *donburi.Entry) Owner       { return Owner{kind: OwnerAttack, entry: e} }
func InteractableOwner(e *donburi.Entry) Owner { return Owner{kind: OwnerInteractable, entry: e} }

func (o Owner) Kind() OwnerKind { return o.kind }

// Entry returns the referenced entry, nil for NoOwner.
func (o Owner) Entry() *donburi.Entry { return o.entry }

// Alive reports whether the referenced entry still exists.
func (o Owner) Alive() bool { return o.entry != nil && o.entry.Valid() }

func (o Owner) as(want OwnerKind) (*donburi.Entry, error) {
	if o.kind != want {
		return nil, fmt.Errorf("%w: want %s, have %s", ErrOwnerKind, want, o.kind)
	}
	return o.entry, nil
}

func (o Owner) Actor() (*donburi.Entry, error)        { return o.as(OwnerActor) }
func (o Owner) Attack() (*donburi.Entry, error)       { return o.as(OwnerAttack) }
func (o Owner) Interactable() (*donburi.Entry, error) { return o.as(OwnerInteractable) }
