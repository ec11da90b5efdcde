package world

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed data/world.yaml
var defaultWorldYAML []byte

//go:embed data/world.schema.json
var worldSchemaJSON string

// ErrInvalidWorld is returned when world data fails validation.
var ErrInvalidWorld = errors.New("invalid world")

// RoomSpec is the on-disk form of a room.
type RoomSpec struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description"`
	ShortDesc   string            `yaml:"short_desc,omitempty" json:"short_desc,omitempty"`
	Exits       map[string]string `yaml:"exits,omitempty" json:"exits,omitempty"`
	Items       []string          `yaml:"items,omitempty" json:"items,omitempty"`
	Enemies     []string          `yaml:"enemies,omitempty" json:"enemies,omitempty"`
}

// Spec is the serializable description of a world.
type Spec struct {
	StartRoom string              `yaml:"start_room" json:"start_room"`
	Rooms     map[string]RoomSpec `yaml:"rooms" json:"rooms"`
}

// World is the room graph for one game session.
type World struct {
	rooms     map[string]*Room
	startRoom string
}

// Default builds the world shipped with the game.
func Default() (*World, error) {
	return Load(bytes.NewReader(defaultWorldYAML))
}

// LoadFile builds a world from a YAML file.
func LoadFile(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open world file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Load decodes a YAML world document, validates it and builds the room graph.
func Load(r io.Reader) (*World, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read world data: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: failed to decode yaml: %v", ErrInvalidWorld, err)
	}
	return New(spec)
}

// New builds a World from a spec, checking that every exit leads somewhere
// and that the start room exists.
func New(spec Spec) (*World, error) {
	var problems []string

	if _, ok := spec.Rooms[spec.StartRoom]; !ok {
		problems = append(problems, fmt.Sprintf("start room %q is not defined", spec.StartRoom))
	}

	w := &World{
		rooms:     make(map[string]*Room, len(spec.Rooms)),
		startRoom: spec.StartRoom,
	}

	for _, id := range sortedKeys(spec.Rooms) {
		rs := spec.Rooms[id]
		room := &Room{
			ID:               id,
			Name:             rs.Name,
			Description:      rs.Description,
			ShortDescription: rs.ShortDesc,
			Exits:            make(map[Direction]string, len(rs.Exits)),
			Enemies:          append([]string(nil), rs.Enemies...),
			items:            append([]string(nil), rs.Items...),
		}
		for dir, target := range rs.Exits {
			d := Direction(strings.ToLower(dir))
			if !d.IsValid() {
				problems = append(problems, fmt.Sprintf("room %q: unknown direction %q", id, dir))
				continue
			}
			if _, ok := spec.Rooms[target]; !ok {
				problems = append(problems, fmt.Sprintf("room %q: exit %s leads to undefined room %q", id, d, target))
				continue
			}
			room.Exits[d] = target
		}
		w.rooms[id] = room
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("%w: %s", ErrInvalidWorld, strings.Join(problems, "; "))
	}
	return w, nil
}

// StartRoom returns the ID of the room a new player begins in.
func (w *World) StartRoom() string {
	return w.startRoom
}

// Lookup returns the room with the given ID.
func (w *World) Lookup(id string) (*Room, bool) {
	room, ok := w.rooms[id]
	return room, ok
}

// Room returns the room with the given ID. Unknown IDs yield an empty room
// so callers can still render something.
func (w *World) Room(id string) *Room {
	if room, ok := w.rooms[id]; ok {
		return room
	}
	return &Room{ID: id}
}

// RoomIDs returns all room IDs in sorted order.
func (w *World) RoomIDs() []string {
	return sortedKeys(w.rooms)
}

func validateSchema(data []byte) error {
	schema, err := jsonschema.CompileString("world.schema.json", worldSchemaJSON)
	if err != nil {
		return fmt.Errorf("failed to compile world schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: failed to decode yaml: %v", ErrInvalidWorld, err)
	}

	// Round-trip through JSON so the validator sees JSON-native types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: world data is not representable as JSON: %v", ErrInvalidWorld, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var jsonDoc any
	if err := dec.Decode(&jsonDoc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorld, err)
	}

	if err := schema.Validate(jsonDoc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorld, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
