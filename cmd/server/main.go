package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/wordballoon/internal/config"
	"github.com/playperu/wordballoon/internal/database"
	"github.com/playperu/wordballoon/internal/gacha"
	"github.com/playperu/wordballoon/internal/game"
	"github.com/playperu/wordballoon/internal/handler/health"
	"github.com/playperu/wordballoon/internal/migrations"
	"github.com/playperu/wordballoon/internal/profile"
	"github.com/playperu/wordballoon/internal/rng"
	"github.com/playperu/wordballoon/internal/server"
	"github.com/playperu/wordballoon/internal/vocab"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	simulate := fs.Int("simulate", 0, "print the gacha rarity distribution over `n` draws and exit")
	seed := fs.Uint64("seed", 0, "seed for -simulate (0 uses crypto randomness)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *simulate > 0 {
		src := rng.Default()
		if *seed != 0 {
			src = rng.NewSeeded(*seed)
		}
		printDistribution(stdout, gacha.Simulate(src, *simulate))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Catalog ---
	catalog, err := vocab.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded", "items", catalog.Len(), "path", cfg.CatalogPath)

	// --- SQLite ---
	if cfg.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return fmt.Errorf("creating database dir: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Profile ---
	kv := profile.NewSQLKV(db)
	store := profile.NewStore(kv, logger)
	p, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	logger.Info("profile loaded", "coins", p.Coins, "unlocked", len(p.Unlocked))

	var pinHash []byte
	if cfg.ResetPIN != "" {
		pinHash, err = bcrypt.GenerateFromPassword([]byte(cfg.ResetPIN), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing reset pin: %w", err)
		}
	}

	// --- Game ---
	broker := server.NewBroker()
	ctrl := game.New(game.Options{
		Catalog: catalog,
		Profile: p,
		Saver:   store,
		Random:  rng.Default(),
		Speaker: broker,
		Tones:   broker,
		Delays: game.Delays{
			Prompt:  cfg.PromptDelay,
			Advance: cfg.AdvanceDelay,
			Spin:    cfg.SpinDelay,
		},
		ResetPINHash: pinHash,
		Logger:       logger,
		OnChange:     broker.PublishState,
	})

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, ctrl, broker, cfg.SPADir, func(r chi.Router) {
		r.Mount("/healthz", health.NewHandler(logger, map[string]health.Checker{
			"sqlite": health.DB{DB: db},
			"kv": health.CheckFunc(func(ctx context.Context) error {
				_, _, err := kv.Load(ctx, profile.KeyCoins)
				return err
			}),
		}).Routes())
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func printDistribution(w io.Writer, d gacha.Distribution) {
	fmt.Fprintf(w, "%d draws\n", d.Trials)
	for _, r := range vocab.Rarities {
		fmt.Fprintf(w, "%-14s %8d  %6.2f%%\n", r.Label(), d.Counts[r], 100*d.Freq(r))
	}
}
