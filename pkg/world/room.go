package world

import "strings"

// Direction is a compass direction used for exits.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists every direction in display order.
var Directions = []Direction{North, South, East, West}

// IsValid reports whether d is one of the four compass directions.
func (d Direction) IsValid() bool {
	switch d {
	case North, South, East, West:
		return true
	}
	return false
}

// Room is a node in the room graph. Exits and enemies are fixed once the world
// is built; items change as the player picks them up.
type Room struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	Exits            map[Direction]string // Direction → Room ID
	Enemies          []string

	items []string
}

// Exit returns the room ID reached by going in direction d.
func (r *Room) Exit(d Direction) (string, bool) {
	if r == nil || r.Exits == nil {
		return "", false
	}
	target, ok := r.Exits[d]
	if !ok || target == "" {
		return "", false
	}
	return target, true
}

// ExitDirections returns the directions that have an exit, in the order
// north, south, east, west.
func (r *Room) ExitDirections() []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if _, ok := r.Exit(d); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Items returns a copy of the items present in the room, in list order.
func (r *Room) Items() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

// HasEnemies reports whether anything in the room can be fought.
func (r *Room) HasEnemies() bool {
	return r != nil && len(r.Enemies) > 0
}

// FindItem returns the stored spelling of the first item matching name,
// ignoring case.
func (r *Room) FindItem(name string) (string, bool) {
	idx := r.indexOf(name)
	if idx < 0 {
		return "", false
	}
	return r.items[idx], true
}

// TakeItem removes the first item matching name (ignoring case) and returns
// its stored spelling. Later duplicates stay in place.
func (r *Room) TakeItem(name string) (string, bool) {
	idx := r.indexOf(name)
	if idx < 0 {
		return "", false
	}
	item := r.items[idx]
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	return item, true
}

// AddItem places an item at the end of the room's item list.
func (r *Room) AddItem(item string) {
	r.items = append(r.items, item)
}

func (r *Room) indexOf(name string) int {
	if r == nil {
		return -1
	}
	for i, item := range r.items {
		if strings.EqualFold(item, name) {
			return i
		}
	}
	return -1
}
