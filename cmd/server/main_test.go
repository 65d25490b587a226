package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunSimulate(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, []string{"-simulate", "2000", "-seed", "7"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"2000 draws", "Common", "Rare!", "Super Rare!", "ULTRA RARE!!"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, []string{"-simulate", "lots"}); err == nil {
		t.Fatal("expected flag error")
	}
}

func TestRunServesUntilCancelled(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "wordballoon.db")
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	t.Setenv("DB_PATH", dbPath)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(300*time.Millisecond, cancel)

	var out bytes.Buffer
	if err := run(ctx, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file: %v", err)
	}
	if !strings.Contains(out.String(), `"msg":"profile loaded"`) {
		t.Errorf("log missing profile load:\n%s", out.String())
	}
}

func TestRunBadCatalog(t *testing.T) {
	t.Setenv("CATALOG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DB_PATH", ":memory:")

	var out bytes.Buffer
	if err := run(context.Background(), &out, nil); err == nil || !strings.Contains(err.Error(), "loading catalog") {
		t.Fatalf("err = %v, want catalog error", err)
	}
}
