package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ml-pipeline-service/internal/core/domain"
	"ml-pipeline-service/internal/testutil"
)

func TestResolveLatest_EmptyStore(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	store.On("ListVersions", mock.Anything).Return([]string{}, nil)

	_, err := NewResolver(store).ResolveLatest(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoArtifacts)
}

func TestResolveLatest_PicksMaxIdentifier(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	store.On("ListVersions", mock.Anything).Return([]string{
		"model_20240101T000000",
		"model_20240615T120000",
	}, nil)

	id, err := NewResolver(store).ResolveLatest(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "model_20240615T120000", id)
}

func TestResolveLatest_StoreErrorPropagates(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	boom := errors.New("disk on fire")
	store.On("ListVersions", mock.Anything).Return(nil, boom)

	_, err := NewResolver(store).ResolveLatest(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNoArtifacts)
}
