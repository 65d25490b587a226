// Package rng provides the random sources used by the quiz and gacha engines.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// 53 significant bits.
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// Default returns the crypto-backed source used in production.
func Default() Source { return cryptoSource{} }

type seeded struct{ r *rand.Rand }

// NewSeeded returns a reproducible source, for simulations and tests.
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seeded) Float64() float64 { return s.r.Float64() }

// Sequence replays fixed values in order, wrapping around at the end.
// An empty Sequence always returns 0.
type Sequence struct {
	Values []float64
	pos    int
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// IntN returns a uniform index in [0, n). It panics if n <= 0.
func IntN(src Source, n int) int {
	if n <= 0 {
		panic("rng: IntN called with non-positive n")
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle permutes xs in place with a Fisher-Yates pass.
func Shuffle[T any](src Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := IntN(src, i+1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Sample picks n distinct elements of pool, skipping those for which skip
// returns true. It returns fewer than n elements only when the pool runs out.
func Sample[T any](src Source, pool []T, n int, skip func(T) bool) []T {
	candidates := make([]T, 0, len(pool))
	for _, x := range pool {
		if skip != nil && skip(x) {
			continue
		}
		candidates = append(candidates, x)
	}
	// Partial Fisher-Yates: only the first n slots need to be settled.
	if n > len(candidates) {
		n = len(candidates)
	}
	for i := 0; i < n; i++ {
		j := i + IntN(src, len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:n]
}
