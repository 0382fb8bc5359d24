// Package fsstore implements the artifact store as a directory per model
// version: <root>/<id>/{model.json,metrics.json,model_info.json}.
package fsstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
)

const (
	modelFile   = "model.json"
	metricsFile = "metrics.json"
	infoFile    = "model_info.json"

	versionPrefix = "model_"
	stagingPrefix = ".staging-"
)

type Store struct {
	root string
}

// New creates the store root if needed.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: artifact root is empty", domain.ErrStoreWrite)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create artifact root: %v", domain.ErrStoreWrite, err)
	}
	return &Store{root: root}, nil
}

var _ ports.ArtifactStore = (*Store)(nil)

func (s *Store) ListVersions(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read artifact root: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), versionPrefix) {
			continue
		}
		ids = append(ids, entry.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// WriteVersion stages all three records in a hidden directory and renames it
// into place, so readers never observe a partial version.
func (s *Store) WriteVersion(ctx context.Context, id string, blob []byte, metrics domain.Metrics, info domain.ModelInfo) error {
	if id == "" {
		return fmt.Errorf("%w: empty version identifier", domain.ErrStoreWrite)
	}

	dest := filepath.Join(s.root, id)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("%w: %s", domain.ErrVersionExists, id)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %v", domain.ErrStoreWrite, id, err)
	}

	staging := filepath.Join(s.root, stagingPrefix+id)
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return fmt.Errorf("%w: create staging dir: %v", domain.ErrStoreWrite, err)
	}
	defer os.RemoveAll(staging)

	if err := os.WriteFile(filepath.Join(staging, modelFile), blob, 0o600); err != nil {
		return fmt.Errorf("%w: write model blob: %v", domain.ErrStoreWrite, err)
	}
	if err := writeJSON(filepath.Join(staging, metricsFile), metrics); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(staging, infoFile), info); err != nil {
		return err
	}

	if err := os.Rename(staging, dest); err != nil {
		return fmt.Errorf("%w: publish version %s: %v", domain.ErrStoreWrite, id, err)
	}
	return nil
}

func (s *Store) ReadVersion(ctx context.Context, id string) (*domain.ModelVersion, error) {
	dir := filepath.Join(s.root, id)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrVersionNotFound, id)
	}

	blob, err := os.ReadFile(filepath.Join(dir, modelFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing model blob", domain.ErrVersionNotFound, id)
	}

	var metrics domain.Metrics
	if err := readJSON(filepath.Join(dir, metricsFile), &metrics); err != nil {
		return nil, fmt.Errorf("%w: %s: metrics record: %v", domain.ErrVersionNotFound, id, err)
	}

	var info domain.ModelInfo
	if err := readJSON(filepath.Join(dir, infoFile), &info); err != nil {
		return nil, fmt.Errorf("%w: %s: metadata record: %v", domain.ErrVersionNotFound, id, err)
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: invalid metadata: %v", domain.ErrVersionNotFound, id, err)
	}

	return &domain.ModelVersion{ID: id, Blob: blob, Metrics: metrics, Info: info}, nil
}

func writeJSON(path string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", domain.ErrStoreWrite, filepath.Base(path), err)
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStoreWrite, filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("missing")
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("corrupt: %v", err)
	}
	return nil
}
