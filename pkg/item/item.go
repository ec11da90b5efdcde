package item

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the behaviour variant of an item.
type Kind string

const (
	KindPlain      Kind = "plain"
	KindWeapon     Kind = "weapon"
	KindConsumable Kind = "consumable"
)

// Effect is what a consumable does when used.
type Effect string

const (
	EffectHealth Effect = "health"
	EffectMana   Effect = "mana" // no modeled effect yet
)

// Healer is anything whose health a consumable can restore.
type Healer interface {
	Heal(amount int) int
}

// Item is an immutable item definition. Rooms and inventories refer to items
// by ID; one definition is shared by every copy.
type Item struct {
	ID          string `yaml:"-"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Value       int    `yaml:"value" validate:"gte=0"`
	Kind        Kind   `yaml:"kind,omitempty" validate:"omitempty,oneof=plain weapon consumable"`

	// Plain only; weapons and consumables are always usable.
	UsableFlag bool `yaml:"usable,omitempty"`

	// Weapon
	Damage int `yaml:"damage,omitempty" validate:"gte=0"`

	// Consumable
	Effect    Effect `yaml:"effect,omitempty"`
	Magnitude int    `yaml:"magnitude,omitempty" validate:"gte=0"`
}

// Variant returns the item's kind, treating an unset kind as plain.
func (i *Item) Variant() Kind {
	if i.Kind == "" {
		return KindPlain
	}
	return i.Kind
}

// Usable reports whether the item can be used at all.
func (i *Item) Usable() bool {
	switch i.Variant() {
	case KindWeapon, KindConsumable:
		return true
	default:
		return i.UsableFlag
	}
}

// Consumable reports whether using the item uses it up.
func (i *Item) Consumable() bool {
	return i.Variant() == KindConsumable
}

// IsWeapon reports whether the item is a weapon.
func (i *Item) IsWeapon() bool {
	return i.Variant() == KindWeapon
}

// Use applies the item to target and returns the message shown to the player.
// target may be nil for items that do not affect anyone.
func (i *Item) Use(target Healer) string {
	switch i.Variant() {
	case KindWeapon:
		return fmt.Sprintf("You brandish the %s menacingly! (Damage: %d)", i.Name, i.Damage)
	case KindConsumable:
		if i.Effect == EffectHealth && target != nil {
			target.Heal(i.Magnitude)
			return fmt.Sprintf("You consume the %s and restore %d health!", i.Name, i.Magnitude)
		}
		return fmt.Sprintf("You use the %s.", i.Name)
	default:
		if !i.UsableFlag {
			return fmt.Sprintf("You can't use the %s.", i.Name)
		}
		return fmt.Sprintf("You use the %s.", i.Name)
	}
}

// Describe renders the full examine text for the item.
func (i *Item) Describe() string {
	lines := []string{
		"📦 " + cases.Title(language.English).String(i.Name),
		"📝 " + i.Description,
	}
	switch i.Variant() {
	case KindWeapon:
		lines = append(lines, fmt.Sprintf("⚔️ Damage: %d", i.Damage))
	case KindConsumable:
		lines = append(lines, fmt.Sprintf("💚 Restores: %d %s", i.Magnitude, i.Effect))
	}
	if i.Value > 0 {
		lines = append(lines, fmt.Sprintf("💰 Value: %d gold", i.Value))
	}
	return strings.Join(lines, "\n")
}

// Summary returns the first n characters of the description followed by an
// ellipsis.
func (i *Item) Summary(n int) string {
	runes := []rune(i.Description)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}

func (i *Item) check() error {
	switch i.Variant() {
	case KindWeapon:
		if i.Damage <= 0 {
			return fmt.Errorf("weapon %q must have positive damage", i.ID)
		}
	case KindConsumable:
		if i.Effect == "" {
			return fmt.Errorf("consumable %q must have an effect", i.ID)
		}
		if i.Magnitude <= 0 {
			return fmt.Errorf("consumable %q must have a positive magnitude", i.ID)
		}
	}
	return nil
}
