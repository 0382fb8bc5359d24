package ports

import (
	"context"

	"ml-pipeline-service/internal/core/domain"
)

// ArtifactStore persists immutable model versions, one namespace per
// identifier. Identifiers sort lexicographically in chronological order.
type ArtifactStore interface {
	// ListVersions returns all version identifiers sorted ascending.
	ListVersions(ctx context.Context) ([]string, error)

	// WriteVersion creates a new version as an atomic unit: either the blob
	// and both records land, or nothing becomes visible to readers.
	// Returns domain.ErrVersionExists if the identifier is already taken.
	WriteVersion(ctx context.Context, id string, blob []byte, metrics domain.Metrics, info domain.ModelInfo) error

	// ReadVersion loads one version. A missing directory, or a missing or
	// undecodable constituent record, yields domain.ErrVersionNotFound.
	ReadVersion(ctx context.Context, id string) (*domain.ModelVersion, error)
}
