package gacha

import (
	"github.com/playperu/wordballoon/internal/rng"
	"github.com/playperu/wordballoon/internal/vocab"
)

// Distribution summarizes simulated tier frequencies.
type Distribution struct {
	Trials int                  `json:"trials"`
	Counts map[vocab.Rarity]int `json:"counts"`
}

func (d Distribution) Freq(r vocab.Rarity) float64 {
	if d.Trials == 0 {
		return 0
	}
	return float64(d.Counts[r]) / float64(d.Trials)
}

// Simulate rolls n tiers. It does not touch any profile.
func Simulate(src rng.Source, n int) Distribution {
	d := Distribution{Counts: make(map[vocab.Rarity]int, len(vocab.Rarities))}
	if n <= 0 {
		return d
	}
	d.Trials = n
	for i := 0; i < n; i++ {
		d.Counts[RollRarity(src.Float64())]++
	}
	return d
}
