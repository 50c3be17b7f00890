package adapters

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Minji827/invest/internal/feature/prediction/domain"
)

func writeArtifact(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
}

func TestArtifactFS_MissingFileMapsToNotTrained(t *testing.T) {
	t.Parallel()

	store := NewArtifactStore(t.TempDir())

	_, err := store.Load(context.Background(), "AAPL")
	if !errors.Is(err, domain.ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got %v", err)
	}
}

func TestArtifactFS_LoadsArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArtifact(t, dir, "AAPL.json", `{
		"symbol": "AAPL",
		"mean":  [1,2,3,4,5,6,7,8],
		"scale": [1,1,1,1,1,1,1,1],
		"coef":  [0.1,0.2,0.3,0.4,0.5,0.6,0.7,0.8],
		"intercept": -0.25
	}`)

	store := NewArtifactStore(dir)

	artifact, err := store.Load(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !artifact.Valid() {
		t.Fatal("expected a valid artifact")
	}
	if artifact.Intercept != -0.25 {
		t.Errorf("intercept = %v, want -0.25", artifact.Intercept)
	}
}

func TestArtifactFS_SymbolIsUppercased(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArtifact(t, dir, "MSFT.json", `{
		"mean":  [0,0,0,0,0,0,0,0],
		"scale": [1,1,1,1,1,1,1,1],
		"coef":  [0,0,0,0,0,0,0,0],
		"intercept": 0
	}`)

	store := NewArtifactStore(dir)

	artifact, err := store.Load(context.Background(), "msft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.Symbol != "MSFT" {
		t.Errorf("expected backfilled symbol MSFT, got %q", artifact.Symbol)
	}
}

func TestArtifactFS_CorruptedFileIsARealError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArtifact(t, dir, "NVDA.json", `{not json`)

	store := NewArtifactStore(dir)

	_, err := store.Load(context.Background(), "NVDA")
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if errors.Is(err, domain.ErrModelNotTrained) {
		t.Fatal("a corrupted artifact must not map to ErrModelNotTrained")
	}
}
