package services

import (
	"context"

	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
)

// Resolver selects which artifact version is current for serving.
type Resolver struct {
	store ports.ArtifactStore
}

func NewResolver(store ports.ArtifactStore) *Resolver {
	return &Resolver{store: store}
}

// ResolveLatest returns the lexicographically maximal version identifier.
// An empty store yields domain.ErrNoArtifacts, a distinct condition the
// serving loader recovers from; every other store error propagates.
func (r *Resolver) ResolveLatest(ctx context.Context) (string, error) {
	ids, err := r.store.ListVersions(ctx)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", domain.ErrNoArtifacts
	}
	// ListVersions sorts ascending, so the last entry is the latest.
	return ids[len(ids)-1], nil
}
