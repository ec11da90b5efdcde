package prompts

import (
	"strings"
	"testing"
)

func TestCombatBuilder_Build(t *testing.T) {
	tests := []struct {
		name        string
		builder     *CombatBuilder
		contains    []string
		notContains []string
		expectError bool
	}{
		{
			name:        "missing target",
			builder:     NewCombat().WithRoom("Dark Cave", "Damp."),
			expectError: true,
		},
		{
			name: "full prompt",
			builder: NewCombat().
				WithTarget("cave troll").
				WithRoom("Dark Cave", "The cave entrance yawns before you.").
				WithInventory([]string{"torch", "rusty_sword"}).
				WithWeapons([]string{"rusty sword"}),
			contains: []string{
				"The player is fighting a cave troll in Dark Cave.",
				"The room description: The cave entrance yawns before you.",
				"Player inventory: torch, rusty_sword",
				"You are wielding: rusty sword",
				CombatInstructions,
			},
		},
		{
			name:    "empty inventory and no weapons",
			builder: NewCombat().WithTarget("forest sprite").WithRoom("Forest Path", ""),
			contains: []string{
				"Player inventory: empty",
			},
			notContains: []string{
				"You are wielding",
				"The room description",
			},
		},
		{
			name:     "unknown room",
			builder:  NewCombat().WithTarget("shadow"),
			contains: []string{"fighting a shadow in an unknown place."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.builder.Build()
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("prompt missing %q:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("prompt should not contain %q:\n%s", unwanted, got)
				}
			}
		})
	}
}
