package item

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHealer struct {
	healed []int
}

func (f *fakeHealer) Heal(amount int) int {
	f.healed = append(f.healed, amount)
	return amount
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"berries", "coin", "crystal", "flowers", "gem", "magic_wand",
		"rope", "rusty_sword", "stick", "stone", "torch",
	}, c.IDs())

	berries, ok := c.Get("berries")
	require.True(t, ok)
	assert.Equal(t, KindConsumable, berries.Variant())
	assert.Equal(t, EffectHealth, berries.Effect)
	assert.Equal(t, 15, berries.Magnitude)
	assert.True(t, berries.Usable())
	assert.True(t, berries.Consumable())

	stick, ok := c.Get("stick")
	require.True(t, ok)
	assert.Equal(t, KindPlain, stick.Variant())
	assert.False(t, stick.Usable())

	torch, _ := c.Get("torch")
	assert.True(t, torch.Usable())
	assert.False(t, torch.Consumable())
}

func TestCatalog_Get(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name   string
		lookup string
		wantID string
		wantOK bool
	}{
		{"lowercase id", "gem", "gem", true},
		{"uppercase id", "GEM", "gem", true},
		{"display name", "rusty sword", "rusty_sword", true},
		{"display name mixed case", "Magic Wand", "magic_wand", true},
		{"no fuzzy match", "gems", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := c.Get(tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, it.ID)
			}
		})
	}
}

func TestItem_Use(t *testing.T) {
	tests := []struct {
		name       string
		item       Item
		wantMsg    string
		wantHealed []int
	}{
		{
			name:    "plain not usable",
			item:    Item{Name: "stone"},
			wantMsg: "You can't use the stone.",
		},
		{
			name:    "plain usable",
			item:    Item{Name: "torch", UsableFlag: true},
			wantMsg: "You use the torch.",
		},
		{
			name:    "weapon",
			item:    Item{Name: "rusty sword", Kind: KindWeapon, Damage: 15},
			wantMsg: "You brandish the rusty sword menacingly! (Damage: 15)",
		},
		{
			name:       "health consumable",
			item:       Item{Name: "berries", Kind: KindConsumable, Effect: EffectHealth, Magnitude: 15},
			wantMsg:    "You consume the berries and restore 15 health!",
			wantHealed: []int{15},
		},
		{
			name:    "other consumable",
			item:    Item{Name: "potion", Kind: KindConsumable, Effect: EffectMana, Magnitude: 5},
			wantMsg: "You use the potion.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakeHealer{}
			assert.Equal(t, tt.wantMsg, tt.item.Use(h))
			assert.Equal(t, tt.wantHealed, h.healed)
		})
	}
}

func TestCatalog_Description(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	desc, ok := c.Description("rusty_sword")
	require.True(t, ok)
	assert.Equal(t, "📦 Rusty Sword\n"+
		"📝 An old sword with a rusty blade, but still sharp enough to be dangerous.\n"+
		"⚔️ Damage: 15\n"+
		"💰 Value: 20 gold", desc)

	desc, ok = c.Description("berries")
	require.True(t, ok)
	assert.Contains(t, desc, "💚 Restores: 15 health")
	assert.NotContains(t, desc, "Damage")

	_, ok = c.Description("unicorn")
	assert.False(t, ok)
}

func TestItem_DescribeNoValue(t *testing.T) {
	it := &Item{Name: "leaf", Description: "A leaf."}
	assert.Equal(t, "📦 Leaf\n📝 A leaf.", it.Describe())
}

func TestItem_Summary(t *testing.T) {
	it := &Item{Description: strings.Repeat("a", 60)}
	assert.Equal(t, strings.Repeat("a", 50)+"...", it.Summary(50))

	short := &Item{Description: "short"}
	assert.Equal(t, "short...", short.Summary(50))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "weapon without damage",
			doc: `
items:
  club:
    name: club
    kind: weapon
    description: A club.
`,
		},
		{
			name: "consumable without effect",
			doc: `
items:
  pie:
    name: pie
    kind: consumable
    description: A pie.
    magnitude: 5
`,
		},
		{
			name: "negative value",
			doc: `
items:
  debt:
    name: debt
    description: You owe money.
    value: -3
`,
		},
		{
			name: "unknown kind",
			doc: `
items:
  orb:
    name: orb
    kind: artifact
    description: An orb.
`,
		},
		{
			name: "missing description",
			doc: `
items:
  rock:
    name: rock
`,
		},
		{
			name: "unknown field",
			doc: `
items:
  rock:
    name: rock
    description: A rock.
    weight: 3
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrInvalidItem), "got %v", err)
		})
	}
}

func TestNewCatalog_Duplicate(t *testing.T) {
	_, err := NewCatalog(
		&Item{ID: "gem", Name: "gem", Description: "A gem."},
		&Item{ID: "GEM", Name: "gem", Description: "Another gem."},
	)
	require.ErrorIs(t, err, ErrInvalidItem)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewCatalog_DuplicateDisplayName(t *testing.T) {
	_, err := NewCatalog(
		&Item{ID: "red_gem", Name: "Shiny Gem", Description: "A red gem."},
		&Item{ID: "blue_gem", Name: "shiny gem", Description: "A blue gem."},
	)
	require.ErrorIs(t, err, ErrInvalidItem)
	assert.Contains(t, err.Error(), "duplicate name")
	assert.Contains(t, err.Error(), "red_gem")
	assert.Contains(t, err.Error(), "blue_gem")

	c, err := NewCatalog(
		&Item{ID: "red_gem", Name: "Red Gem", Description: "A red gem."},
		&Item{ID: "blue_gem", Name: "Blue Gem", Description: "A blue gem."},
	)
	require.NoError(t, err)
	it, ok := c.Get("blue gem")
	require.True(t, ok)
	assert.Equal(t, "blue_gem", it.ID)
}
