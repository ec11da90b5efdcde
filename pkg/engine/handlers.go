package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/adventure-engine/internal/metrics"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/pkg/prompts"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const (
	inventorySummaryLength = 50
	logPreviewLength       = 100
)

func (e *Engine) handleLook(dir world.Direction) (string, error) {
	room := e.CurrentRoom()

	if dir != "" {
		target, ok := room.Exit(dir)
		if !ok {
			return fmt.Sprintf("👀 You see nothing interesting to the %s.", dir), nil
		}
		next := e.world.Room(target)
		short := next.ShortDescription
		if short == "" {
			short = "A mysterious area"
		}
		return fmt.Sprintf("👀 To the %s: %s - %s", dir, next.Name, short), nil
	}

	var sb strings.Builder
	sb.WriteString("🏠 " + room.Name + "\n")
	sb.WriteString("📝 " + room.Description + "\n")
	if items := room.Items(); len(items) > 0 {
		sb.WriteString("📦 Items here: " + strings.Join(items, ", ") + "\n")
	}

	exits := room.ExitDirections()
	if len(exits) == 0 {
		sb.WriteString("🚪 No obvious exits")
		return sb.String(), nil
	}
	names := make([]string, len(exits))
	for i, d := range exits {
		names[i] = string(d)
	}
	sb.WriteString("🚪 Exits: " + strings.Join(names, ", "))
	return sb.String(), nil
}

func (e *Engine) handleMove(dir world.Direction) (string, error) {
	if dir == "" {
		return "", reject("🚶 Move where? Specify a direction (north, south, east, west)")
	}

	target, ok := e.CurrentRoom().Exit(dir)
	if !ok {
		return "", reject("🚫 You can't go %s from here.", dir)
	}
	if _, ok := e.world.Lookup(target); !ok {
		return "", fmt.Errorf("exit %s leads to unknown room %q", dir, target)
	}

	from := e.player.Room()
	e.player.MoveTo(target)
	e.logger.Info("Player moved", "direction", dir, "from", from, "to", target)

	return e.handleLook("")
}

func (e *Engine) handleGrab(name string) (string, error) {
	if name == "" {
		return "", reject("🤏 Grab what? Specify an item name.")
	}

	stored, ok := e.CurrentRoom().TakeItem(name)
	if !ok {
		return "", reject("📦 There's no '%s' here to grab.", name)
	}
	e.player.AddItem(stored)
	e.logger.Info("Player grabbed item", "item", stored, "room", e.player.Room())

	return fmt.Sprintf("✅ You grabbed the %s!", stored), nil
}

func (e *Engine) handleInventory() (string, error) {
	inventory := e.player.Inventory()
	if len(inventory) == 0 {
		return "🎒 Your inventory is empty.", nil
	}

	lines := []string{"🎒 Inventory:"}
	for _, name := range inventory {
		if it, ok := e.catalog.Get(name); ok {
			lines = append(lines, fmt.Sprintf("  • %s - %s", name, it.Summary(inventorySummaryLength)))
		} else {
			lines = append(lines, "  • "+name)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (e *Engine) handleUse(name string) (string, error) {
	if name == "" {
		return "", reject("🔧 Use what? Specify an item name.")
	}
	if !e.player.HasItem(name) {
		return "", reject("❌ You don't have '%s' in your inventory.", name)
	}

	it, ok := e.catalog.Get(name)
	if !ok {
		return "", reject("❓ Unknown item: %s", name)
	}
	if !it.Usable() {
		return "", reject("🚫 You can't use the %s.", name)
	}

	result := it.Use(e.player)
	if it.Consumable() {
		e.player.RemoveItem(name)
		result += fmt.Sprintf(" The %s is consumed.", name)
	}

	metrics.ItemsUsed.WithLabelValues(it.ID).Inc()
	e.logger.Info("Player used item", "item", name, "health", e.player.Health())
	return result, nil
}

func (e *Engine) handleExamine(name string) (string, error) {
	if name == "" {
		return "", reject("🔍 Examine what? Specify an item name.")
	}

	_, inRoom := e.CurrentRoom().FindItem(name)
	if !e.player.HasItem(name) && !inRoom {
		return "", reject("❌ There's no '%s' here or in your inventory.", name)
	}

	description, ok := e.catalog.Description(name)
	if !ok {
		return "", reject("❓ You can't find details about '%s'.", name)
	}
	return "🔍 " + description, nil
}

func (e *Engine) handleFight(ctx context.Context, target string) (string, error) {
	if target == "" {
		return "", reject("⚔️ Fight what? You need to specify a target.")
	}

	room := e.CurrentRoom()
	if !room.HasEnemies() {
		return "", reject("⚔️ There's nothing to fight here.")
	}

	inventory := e.player.Inventory()
	var weapons []string
	for _, name := range inventory {
		if it, ok := e.catalog.Get(name); ok && it.IsWeapon() {
			weapons = append(weapons, it.Name)
		}
	}

	prompt, err := prompts.NewCombat().
		WithTarget(target).
		WithRoom(room.Name, room.Description).
		WithInventory(inventory).
		WithWeapons(weapons).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build combat prompt: %w", err)
	}

	if narration := e.narrate(ctx, prompt); narration != "" {
		e.logger.Info("Fight narrated", "target", target, "narration", truncate(narration, logPreviewLength))
		return "⚔️ " + narration, nil
	}
	return fmt.Sprintf("⚔️ You engage the %s in combat! The battle is fierce but you emerge victorious!", target), nil
}

// narrate asks the narrator for text and returns "" when none is usable.
func (e *Engine) narrate(ctx context.Context, prompt string) string {
	if e.narrator == nil {
		metrics.NarrationsTotal.WithLabelValues(metrics.NarrationDisabled).Inc()
		return ""
	}

	e.logger.Debug("Requesting narration", "prompt", truncate(prompt, logPreviewLength))

	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	text, err := e.narrator.Generate(ctx, services.GenerateRequest{
		Prompt:      prompt,
		MaxTokens:   e.opts.MaxTokens,
		Temperature: e.opts.Temperature,
	})
	if err != nil {
		e.logger.Warn("Narration unavailable, using fallback", "error", err)
		metrics.NarrationsTotal.WithLabelValues(metrics.NarrationFallback).Inc()
		return ""
	}

	text = e.filter.Clean(text)
	if text == "" {
		e.logger.Warn("Narration was empty, using fallback")
		metrics.NarrationsTotal.WithLabelValues(metrics.NarrationFallback).Inc()
		return ""
	}
	metrics.NarrationsTotal.WithLabelValues(metrics.NarrationGenerated).Inc()
	return text
}

func (e *Engine) handleStatus() (string, error) {
	s := e.player.Status()
	room := e.world.Room(s.Room)

	lines := []string{
		"📊 " + s.Name,
		fmt.Sprintf("❤️ Health: %d/%d", s.Health, s.MaxHealth),
		fmt.Sprintf("⭐ Level: %d (%d XP)", s.Level, s.Experience),
		fmt.Sprintf("🎒 Items carried: %d", s.InventoryCount),
		"📍 Location: " + room.Name,
	}
	return strings.Join(lines, "\n"), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
