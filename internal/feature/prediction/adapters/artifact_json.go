// Package adapters provides artifact storage implementations for the
// prediction feature.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Minji827/invest/internal/feature/prediction/domain"
	"github.com/Minji827/invest/internal/feature/prediction/domain/entity"
	"github.com/Minji827/invest/internal/feature/prediction/usecase"
)

type artifactFS struct {
	dir string
}

var _ usecase.ArtifactStore = (*artifactFS)(nil)

// NewArtifactStore creates a store reading per-symbol JSON artifacts from
// dir, one file per symbol ("AAPL.json").
func NewArtifactStore(dir string) *artifactFS {
	return &artifactFS{dir: dir}
}

// Load reads the artifact for symbol. A missing file maps to
// domain.ErrModelNotTrained; anything else is a real failure.
func (s *artifactFS) Load(_ context.Context, symbol string) (entity.Artifact, error) {
	name := strings.ToUpper(symbol) + ".json"
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return entity.Artifact{}, domain.ErrModelNotTrained
	}
	if err != nil {
		return entity.Artifact{}, fmt.Errorf("read artifact %s: %w", name, err)
	}

	var artifact entity.Artifact
	if err := json.Unmarshal(b, &artifact); err != nil {
		return entity.Artifact{}, fmt.Errorf("decode artifact %s: %w", name, err)
	}
	if artifact.Symbol == "" {
		artifact.Symbol = strings.ToUpper(symbol)
	}
	return artifact, nil
}
