package profile

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/playperu/wordballoon/internal/database"
	"github.com/playperu/wordballoon/internal/migrations"
)

type mapKV struct {
	data    map[string]string
	loadErr error
}

func (m *mapKV) Load(_ context.Context, key string) (string, bool, error) {
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapKV) Save(_ context.Context, key, value string) error {
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}

func setupSQLKV(t *testing.T) *SQLKV {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewSQLKV(db)
}

func TestLoadDefaults(t *testing.T) {
	s := NewStore(&mapKV{}, slog.Default())
	p, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Coins != 100 || len(p.Unlocked) != 0 || p.Unlocked == nil {
		t.Errorf("got %+v, want default profile", p)
	}
}

func TestLoadFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		data      map[string]string
		wantCoins int
		wantIDs   []string
	}{
		{
			name:      "both valid",
			data:      map[string]string{KeyCoins: "240", KeyCollection: `["dog","cat"]`},
			wantCoins: 240,
			wantIDs:   []string{"dog", "cat"},
		},
		{
			name:      "garbage coins keeps collection",
			data:      map[string]string{KeyCoins: "lots", KeyCollection: `["dog"]`},
			wantCoins: 100,
			wantIDs:   []string{"dog"},
		},
		{
			name:      "negative coins",
			data:      map[string]string{KeyCoins: "-5"},
			wantCoins: 100,
			wantIDs:   []string{},
		},
		{
			name:      "garbage collection keeps coins",
			data:      map[string]string{KeyCoins: "0", KeyCollection: `{not json`},
			wantCoins: 0,
			wantIDs:   []string{},
		},
		{
			name:      "duplicates collapse",
			data:      map[string]string{KeyCollection: `["dog","dog","","cat"]`},
			wantCoins: 100,
			wantIDs:   []string{"dog", "cat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(&mapKV{data: tt.data}, slog.Default())
			p, err := s.Load(context.Background())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if p.Coins != tt.wantCoins {
				t.Errorf("coins = %d, want %d", p.Coins, tt.wantCoins)
			}
			if !slices.Equal(p.Unlocked, tt.wantIDs) {
				t.Errorf("unlocked = %v, want %v", p.Unlocked, tt.wantIDs)
			}
		})
	}
}

func TestLoadStorageError(t *testing.T) {
	boom := errors.New("disk gone")
	s := NewStore(&mapKV{loadErr: boom}, slog.Default())
	if _, err := s.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestSaveLoadRoundTripSQL(t *testing.T) {
	ctx := context.Background()
	s := NewStore(setupSQLKV(t), slog.Default())

	want := Profile{Coins: 350, Unlocked: []string{"dragon", "apple"}}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Overwrite to exercise the upsert path.
	want.Coins = 250
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Coins != 250 || !slices.Equal(got.Unlocked, want.Unlocked) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSaveEncoding(t *testing.T) {
	kv := &mapKV{}
	s := NewStore(kv, slog.Default())
	if err := s.Save(context.Background(), Profile{Coins: 0}); err != nil {
		t.Fatal(err)
	}
	if kv.data[KeyCoins] != "0" {
		t.Errorf("coins entry = %q, want \"0\"", kv.data[KeyCoins])
	}
	if kv.data[KeyCollection] != "[]" {
		t.Errorf("collection entry = %q, want []", kv.data[KeyCollection])
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	p := Default()
	if !p.Unlock("dog") {
		t.Error("first unlock should grow the set")
	}
	if p.Unlock("dog") {
		t.Error("second unlock should be a no-op")
	}
	if len(p.Unlocked) != 1 || !p.Has("dog") {
		t.Errorf("unlocked = %v", p.Unlocked)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Profile{Coins: 1, Unlocked: []string{"dog"}}
	c := p.Clone()
	c.Unlocked[0] = "cat"
	if p.Unlocked[0] != "dog" {
		t.Error("Clone shares the unlocked slice")
	}
}
