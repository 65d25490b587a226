// Package vocab holds the read-only vocabulary catalog that both the quiz and
// the gacha draw from.
package vocab

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rarity is the collectible tier of an item, 1 (common) through 4 (ultra rare).
type Rarity int

const (
	Common Rarity = iota + 1
	Rare
	SuperRare
	UltraRare
)

// Rarities lists every tier in ascending order.
var Rarities = []Rarity{Common, Rare, SuperRare, UltraRare}

func (r Rarity) Valid() bool { return r >= Common && r <= UltraRare }

// Label is the banner shown when an item of this tier is drawn.
func (r Rarity) Label() string {
	switch r {
	case Common:
		return "Common"
	case Rare:
		return "Rare!"
	case SuperRare:
		return "Super Rare!"
	case UltraRare:
		return "ULTRA RARE!!"
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

type Item struct {
	ID          string `yaml:"id" json:"id"`
	Word        string `yaml:"word" json:"word"`
	Translation string `yaml:"translation" json:"translation"`
	Rarity      Rarity `yaml:"rarity" json:"rarity"`
	Glyph       string `yaml:"glyph" json:"glyph"`
}

// MinItems is the smallest catalog that can fill a question's option set.
const MinItems = 3

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	items    []Item
	byID     map[string]int
	byRarity map[Rarity][]Item
}

type document struct {
	Items []Item `yaml:"items"`
}

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidCatalog = errors.New("invalid vocabulary catalog")

// New validates items and builds a catalog over a private copy of them.
func New(items []Item) (*Catalog, error) {
	if err := Validate(items); err != nil {
		return nil, err
	}
	c := &Catalog{
		items:    append([]Item(nil), items...),
		byID:     make(map[string]int, len(items)),
		byRarity: make(map[Rarity][]Item, len(Rarities)),
	}
	for i, it := range c.items {
		c.byID[it.ID] = i
		c.byRarity[it.Rarity] = append(c.byRarity[it.Rarity], it)
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(doc.Items)
}

// Load reads a catalog file. An empty path yields the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(b)
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Validate checks the invariants the engines rely on: unique ids, a rarity
// for every item, and at least one item in each tier.
func Validate(items []Item) error {
	var errs []string

	if len(items) < MinItems {
		errs = append(errs, fmt.Sprintf("need at least %d items, have %d", MinItems, len(items)))
	}

	seen := make(map[string]bool, len(items))
	tiers := make(map[Rarity]int, len(Rarities))
	for i, it := range items {
		switch {
		case strings.TrimSpace(it.ID) == "":
			errs = append(errs, fmt.Sprintf("items[%d].id is empty", i))
		case seen[it.ID]:
			errs = append(errs, fmt.Sprintf("items[%d].id %q is duplicated", i, it.ID))
		}
		seen[it.ID] = true
		if strings.TrimSpace(it.Word) == "" {
			errs = append(errs, fmt.Sprintf("items[%d].word is empty", i))
		}
		if !it.Rarity.Valid() {
			errs = append(errs, fmt.Sprintf("items[%d].rarity must be 1..4", i))
			continue
		}
		tiers[it.Rarity]++
	}
	for _, r := range Rarities {
		if tiers[r] == 0 {
			errs = append(errs, fmt.Sprintf("rarity %d has no items", r))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}
	return nil
}

// All returns the items in catalog order.
func (c *Catalog) All() []Item { return append([]Item(nil), c.items...) }

// ByRarity returns the items of one tier in catalog order.
func (c *Catalog) ByRarity(r Rarity) []Item { return append([]Item(nil), c.byRarity[r]...) }

func (c *Catalog) Get(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Len() int { return len(c.items) }

// Sorted returns the items rarest first, keeping catalog order within a tier.
func (c *Catalog) Sorted() []Item {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rarity > out[j].Rarity })
	return out
}
