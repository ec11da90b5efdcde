package item

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/items.yaml
var defaultItemsYAML []byte

// ErrInvalidItem is returned when item data fails validation.
var ErrInvalidItem = errors.New("invalid item")

type catalogSpec struct {
	Items map[string]*Item `yaml:"items"`
}

// Catalog is the registry of item definitions, keyed by lowercase ID.
type Catalog struct {
	items map[string]*Item
}

// Default builds the catalog shipped with the game.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultItemsYAML))
}

// LoadFile builds a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a YAML item document.
func Load(r io.Reader) (*Catalog, error) {
	var spec catalogSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: failed to decode yaml: %v", ErrInvalidItem, err)
	}

	items := make([]*Item, 0, len(spec.Items))
	for id, it := range spec.Items {
		if it == nil {
			return nil, fmt.Errorf("%w: %q has no definition", ErrInvalidItem, id)
		}
		it.ID = id
		items = append(items, it)
	}
	return NewCatalog(items...)
}

// NewCatalog validates the given definitions and indexes them by ID.
func NewCatalog(items ...*Item) (*Catalog, error) {
	v := validator.New()
	c := &Catalog{items: make(map[string]*Item, len(items))}
	names := make(map[string]string, len(items))

	for _, it := range items {
		it.ID = strings.ToLower(strings.TrimSpace(it.ID))
		if it.ID == "" {
			return nil, fmt.Errorf("%w: item %q has no id", ErrInvalidItem, it.Name)
		}
		if err := v.Struct(it); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidItem, it.ID, err)
		}
		if err := it.check(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, it.ID)
		}
		// display names resolve lookups too, so they must be unique
		key := strings.ToLower(strings.TrimSpace(it.Name))
		if other, dup := names[key]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q shared by %q and %q", ErrInvalidItem, it.Name, other, it.ID)
		}
		names[key] = it.ID
		c.items[it.ID] = it
	}
	return c, nil
}

// Get looks up an item by ID, ignoring case. An exact display-name match is
// accepted as well, so "rusty sword" finds rusty_sword.
func (c *Catalog) Get(name string) (*Item, bool) {
	key := strings.ToLower(name)
	if it, ok := c.items[key]; ok {
		return it, true
	}
	for _, it := range c.items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return nil, false
}

// Exists reports whether name resolves to an item.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Description renders the examine text for name.
func (c *Catalog) Description(name string) (string, bool) {
	it, ok := c.Get(name)
	if !ok {
		return "", false
	}
	return it.Describe(), true
}

// IDs returns every item ID in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
