package actor

import (
	"fmt"

	"github.com/jwebster45206/d20"
)

const (
	DefaultPlayerName = "Adventurer"
	MaxHealth         = 100
	defaultAC         = 10
)

// Status is a point-in-time snapshot of the player.
type Status struct {
	Name           string `json:"name"`
	Room           string `json:"room"`
	Health         int    `json:"health"`
	MaxHealth      int    `json:"max_health"`
	Level          int    `json:"level"`
	Experience     int    `json:"experience"`
	InventoryCount int    `json:"inventory_count"`
}

// Player is the mutable state of the person playing. Health lives on a
// d20.Actor and is always kept within 0..MaxHealth.
type Player struct {
	Name       string
	Level      int
	Experience int

	room      string
	inventory []string
	actor     *d20.Actor
}

// NewPlayer creates a player at full health standing in startRoom.
func NewPlayer(startRoom string) (*Player, error) {
	a, err := d20.NewActor(DefaultPlayerName).
		WithHP(MaxHealth).
		WithAC(defaultAC).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}

	return &Player{
		Name:      DefaultPlayerName,
		Level:     1,
		room:      startRoom,
		inventory: make([]string, 0),
		actor:     a,
	}, nil
}

// Room returns the ID of the room the player is in.
func (p *Player) Room() string {
	return p.room
}

// MoveTo puts the player in another room. Callers are responsible for
// passing a room that exists.
func (p *Player) MoveTo(roomID string) {
	p.room = roomID
}

// Health returns current health.
func (p *Player) Health() int {
	return p.actor.HP()
}

// SetHealth sets health, clamped to 0..MaxHealth.
func (p *Player) SetHealth(hp int) error {
	hp = clamp(hp, 0, MaxHealth)
	if err := p.actor.SetHP(hp); err != nil {
		return fmt.Errorf("failed to set health: %w", err)
	}
	return nil
}

// Heal restores up to amount health and returns how much was actually gained.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Health()
	if err := p.SetHealth(before + amount); err != nil {
		return 0
	}
	return p.Health() - before
}

// AddItem appends an item to the end of the inventory.
func (p *Player) AddItem(item string) {
	p.inventory = append(p.inventory, item)
}

// RemoveItem removes the first instance of item. It returns false if the
// player does not carry it.
func (p *Player) RemoveItem(item string) bool {
	for i, it := range p.inventory {
		if it == item {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether item is in the inventory.
func (p *Player) HasItem(item string) bool {
	for _, it := range p.inventory {
		if it == item {
			return true
		}
	}
	return false
}

// Inventory returns a copy of the inventory in pickup order.
func (p *Player) Inventory() []string {
	out := make([]string, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// Status returns a snapshot of the player.
func (p *Player) Status() Status {
	return Status{
		Name:           p.Name,
		Room:           p.room,
		Health:         p.Health(),
		MaxHealth:      p.actor.MaxHP(),
		Level:          p.Level,
		Experience:     p.Experience,
		InventoryCount: len(p.inventory),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
