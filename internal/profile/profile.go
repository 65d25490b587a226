// Package profile holds the persisted player profile: the coin balance and the
// set of unlocked collectibles.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultCoins = 100

	KeyCoins      = "coins"
	KeyCollection = "collection"
)

type Profile struct {
	Coins    int      `json:"coins"`
	Unlocked []string `json:"unlocked"`
}

func Default() Profile {
	return Profile{Coins: DefaultCoins, Unlocked: []string{}}
}

func (p Profile) Has(id string) bool { return slices.Contains(p.Unlocked, id) }

// Unlock adds id to the collection. It reports whether the collection grew.
func (p *Profile) Unlock(id string) bool {
	if p.Has(id) {
		return false
	}
	p.Unlocked = append(p.Unlocked, id)
	return true
}

func (p Profile) Clone() Profile {
	p.Unlocked = append([]string{}, p.Unlocked...)
	return p
}

// KV is the key-value collaborator the profile is persisted through.
type KV interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

type Store struct {
	kv     KV
	logger *slog.Logger
}

func NewStore(kv KV, logger *slog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// Load reads the profile. Missing or malformed entries fall back to their
// defaults independently; only storage failures are returned as errors.
func (s *Store) Load(ctx context.Context) (Profile, error) {
	p := Default()

	raw, ok, err := s.kv.Load(ctx, KeyCoins)
	if err != nil {
		return p, fmt.Errorf("loading %s: %w", KeyCoins, err)
	}
	if ok {
		coins, err := DecodeCoins(raw)
		if err != nil {
			s.logger.Warn("discarding stored coins", "value", raw, "error", err)
		} else {
			p.Coins = coins
		}
	}

	raw, ok, err = s.kv.Load(ctx, KeyCollection)
	if err != nil {
		return p, fmt.Errorf("loading %s: %w", KeyCollection, err)
	}
	if ok {
		ids, err := DecodeCollection(raw)
		if err != nil {
			s.logger.Warn("discarding stored collection", "error", err)
		} else {
			p.Unlocked = ids
		}
	}

	return p, nil
}

func (s *Store) Save(ctx context.Context, p Profile) error {
	if err := s.kv.Save(ctx, KeyCoins, EncodeCoins(p.Coins)); err != nil {
		return fmt.Errorf("saving %s: %w", KeyCoins, err)
	}
	data, err := EncodeCollection(p.Unlocked)
	if err != nil {
		return err
	}
	if err := s.kv.Save(ctx, KeyCollection, data); err != nil {
		return fmt.Errorf("saving %s: %w", KeyCollection, err)
	}
	return nil
}

func EncodeCoins(n int) string { return strconv.Itoa(n) }

func DecodeCoins(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing coins: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative coin balance %d", n)
	}
	return n, nil
}

func EncodeCollection(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encoding collection: %w", err)
	}
	return string(b), nil
}

// DecodeCollection parses a JSON id array, dropping empty and repeated ids.
func DecodeCollection(s string) ([]string, error) {
	var raw []string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("parsing collection: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		if id == "" || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
