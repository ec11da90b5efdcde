package prompts

import (
	"fmt"
	"strings"
)

// CombatBuilder assembles the narration prompt for a fight using a fluent
// interface. Only the target is required.
type CombatBuilder struct {
	target          string
	roomName        string
	roomDescription string
	inventory       []string
	weapons         []string
}

// NewCombat creates an empty combat prompt builder.
func NewCombat() *CombatBuilder {
	return &CombatBuilder{}
}

// WithTarget sets what the player is fighting.
func (b *CombatBuilder) WithTarget(target string) *CombatBuilder {
	b.target = target
	return b
}

// WithRoom sets where the fight happens.
func (b *CombatBuilder) WithRoom(name, description string) *CombatBuilder {
	b.roomName = name
	b.roomDescription = description
	return b
}

// WithInventory sets everything the player is carrying.
func (b *CombatBuilder) WithInventory(items []string) *CombatBuilder {
	b.inventory = items
	return b
}

// WithWeapons sets the display names of carried weapons.
func (b *CombatBuilder) WithWeapons(names []string) *CombatBuilder {
	b.weapons = names
	return b
}

// Build returns the prompt text.
//
// Example output:
//
//	The player is fighting a cave troll in Dark Cave.
//	The room description: The cave entrance yawns before you...
//	Player inventory: torch, gem
//	You are wielding: rusty sword
//
//	Generate a short, exciting fight outcome (2-3 sentences).
//	Make it adventurous but not too violent.
func (b *CombatBuilder) Build() (string, error) {
	if strings.TrimSpace(b.target) == "" {
		return "", fmt.Errorf("combat target is required")
	}

	room := b.roomName
	if room == "" {
		room = "an unknown place"
	}

	inventory := "empty"
	if len(b.inventory) > 0 {
		inventory = strings.Join(b.inventory, ", ")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("The player is fighting a %s in %s.\n", b.target, room))
	if b.roomDescription != "" {
		sb.WriteString("The room description: " + b.roomDescription + "\n")
	}
	sb.WriteString("Player inventory: " + inventory + "\n")
	if len(b.weapons) > 0 {
		sb.WriteString("You are wielding: " + strings.Join(b.weapons, ", ") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(CombatInstructions)
	return sb.String(), nil
}

// CombatInstructions tells the model what kind of narration to produce.
const CombatInstructions = `Generate a short, exciting fight outcome (2-3 sentences).
Make it adventurous but not too violent.`
