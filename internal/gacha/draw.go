// Package gacha implements the coin-operated collectible draw.
package gacha

import (
	"github.com/google/uuid"

	"github.com/playperu/wordballoon/internal/rng"
	"github.com/playperu/wordballoon/internal/vocab"
)

// Cost is the price of one draw in coins.
const Cost = 100

// Cumulative upper bounds for each tier below the rarest: 50/30/15/5 percent.
var tierBounds = []struct {
	below  float64
	rarity vocab.Rarity
}{
	{0.50, vocab.Common},
	{0.80, vocab.Rare},
	{0.95, vocab.SuperRare},
}

// RollRarity maps a uniform r in [0,1) to a tier.
func RollRarity(r float64) vocab.Rarity {
	for _, b := range tierBounds {
		if r < b.below {
			return b.rarity
		}
	}
	return vocab.UltraRare
}

type Result struct {
	ID     string       `json:"id"`
	Item   vocab.Item   `json:"item"`
	Rarity vocab.Rarity `json:"rarity"`
	Label  string       `json:"label"`
}

// Fanfare reports whether the result deserves the celebratory tone.
func (r Result) Fanfare() bool { return r.Rarity >= vocab.SuperRare }

// Draw rolls a tier, then picks uniformly among that tier's items. The
// catalog guarantees every tier is populated.
func Draw(c *vocab.Catalog, src rng.Source) Result {
	rarity := RollRarity(src.Float64())
	pool := c.ByRarity(rarity)
	item := pool[rng.IntN(src, len(pool))]
	return Result{
		ID:     uuid.NewString(),
		Item:   item,
		Rarity: rarity,
		Label:  rarity.Label(),
	}
}
