package actor

import (
	"testing"
)

func mustPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer("forest_entrance")
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	return p
}

func TestNewPlayer(t *testing.T) {
	p := mustPlayer(t)

	status := p.Status()
	want := Status{
		Name:           "Adventurer",
		Room:           "forest_entrance",
		Health:         100,
		MaxHealth:      100,
		Level:          1,
		Experience:     0,
		InventoryCount: 0,
	}
	if status != want {
		t.Errorf("Status() = %+v, want %+v", status, want)
	}
}

func TestPlayer_Heal(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		amount     int
		wantHealth int
		wantGained int
	}{
		{"capped at max", 95, 15, 100, 5},
		{"below max", 50, 15, 65, 15},
		{"already full", 100, 10, 100, 0},
		{"zero amount", 40, 0, 40, 0},
		{"negative amount ignored", 40, -5, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPlayer(t)
			if err := p.SetHealth(tt.start); err != nil {
				t.Fatalf("SetHealth() error = %v", err)
			}
			gained := p.Heal(tt.amount)
			if gained != tt.wantGained {
				t.Errorf("Heal() = %d, want %d", gained, tt.wantGained)
			}
			if p.Health() != tt.wantHealth {
				t.Errorf("Health() = %d, want %d", p.Health(), tt.wantHealth)
			}
		})
	}
}

func TestPlayer_SetHealthClamps(t *testing.T) {
	p := mustPlayer(t)

	if err := p.SetHealth(250); err != nil {
		t.Fatalf("SetHealth(250) error = %v", err)
	}
	if p.Health() != MaxHealth {
		t.Errorf("Health() = %d, want %d", p.Health(), MaxHealth)
	}
}

func TestPlayer_Inventory(t *testing.T) {
	p := mustPlayer(t)
	p.AddItem("berries")
	p.AddItem("stick")
	p.AddItem("berries")

	if !p.HasItem("stick") {
		t.Error("HasItem(stick) = false, want true")
	}
	if p.HasItem("Stick") {
		t.Error("HasItem is an exact membership test")
	}

	if !p.RemoveItem("berries") {
		t.Fatal("RemoveItem(berries) = false, want true")
	}
	inv := p.Inventory()
	if len(inv) != 2 || inv[0] != "stick" || inv[1] != "berries" {
		t.Errorf("Inventory() = %v, want [stick berries]", inv)
	}

	if p.RemoveItem("gem") {
		t.Error("RemoveItem(gem) = true for an item not carried")
	}
	if p.Status().InventoryCount != 2 {
		t.Errorf("InventoryCount = %d, want 2", p.Status().InventoryCount)
	}

	inv[0] = "changed"
	if p.Inventory()[0] != "stick" {
		t.Error("Inventory() must return a copy")
	}
}

func TestPlayer_MoveTo(t *testing.T) {
	p := mustPlayer(t)
	p.MoveTo("dark_cave")
	if p.Room() != "dark_cave" {
		t.Errorf("Room() = %q, want dark_cave", p.Room())
	}
}
