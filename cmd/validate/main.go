package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	if len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s [world.yaml] [items.yaml]\n", os.Args[0])
		os.Exit(1)
	}

	var worldFile, itemsFile string
	if len(os.Args) > 1 {
		worldFile = os.Args[1]
	}
	if len(os.Args) > 2 {
		itemsFile = os.Args[2]
	}

	v := &DataValidator{}
	if err := v.Validate(worldFile, itemsFile); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	for _, w := range v.warnings {
		fmt.Println("warning:" + strings.TrimPrefix(w, "  -"))
	}
	fmt.Println("Game data is valid!")
}

// DataValidator checks a world file and an item file together. An empty path
// means the data embedded in the game.
type DataValidator struct {
	errors   []string
	warnings []string
}

func (v *DataValidator) Validate(worldFile, itemsFile string) error {
	v.errors = nil
	v.warnings = nil

	w, err := v.loadWorld(worldFile)
	if err != nil {
		return err
	}
	catalog, err := v.loadItems(itemsFile)
	if err != nil {
		return err
	}

	v.validateWorld(w, catalog)
	for _, id := range catalog.IDs() {
		v.validateIDFormat("item ID", id)
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors:\n%s", strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *DataValidator) loadWorld(path string) (*world.World, error) {
	if path == "" {
		fmt.Println("Validating embedded world...")
		return world.Default()
	}
	fmt.Printf("Validating %s...\n", path)
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	return world.LoadFile(path)
}

func (v *DataValidator) loadItems(path string) (*item.Catalog, error) {
	if path == "" {
		fmt.Println("Validating embedded items...")
		return item.Default()
	}
	fmt.Printf("Validating %s...\n", path)
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	return item.LoadFile(path)
}

func (v *DataValidator) validateWorld(w *world.World, catalog *item.Catalog) {
	for _, id := range w.RoomIDs() {
		v.validateIDFormat("room ID", id)

		room := w.Room(id)
		for _, name := range room.Items() {
			if !catalog.Exists(name) {
				v.addError(fmt.Sprintf("room %s lists item '%s' which is not in the item catalog", id, name))
			}
		}
	}

	reachable := reachableRooms(w)
	for _, id := range w.RoomIDs() {
		if !reachable[id] {
			v.addWarning(fmt.Sprintf("room %s cannot be reached from %s", id, w.StartRoom()))
		}
	}
}

// reachableRooms walks exits breadth-first from the start room.
func reachableRooms(w *world.World) map[string]bool {
	seen := map[string]bool{w.StartRoom(): true}
	queue := []string{w.StartRoom()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		room := w.Room(id)
		targets := make([]string, 0, len(room.Exits))
		for _, d := range room.ExitDirections() {
			target, _ := room.Exit(d)
			targets = append(targets, target)
		}
		sort.Strings(targets)
		for _, t := range targets {
			if !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
	}
	return seen
}

func (v *DataValidator) validateIDFormat(fieldName, id string) {
	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *DataValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func (v *DataValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func checkExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("data file must have a .yaml or .yml extension: %s", filepath.Base(path))
	}
}
