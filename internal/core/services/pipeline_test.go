package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ml-pipeline-service/internal/adapters/secondary/fsstore"
	"ml-pipeline-service/internal/core/domain"
)

// Exercises the full lifecycle against a real filesystem store: train twice,
// resolve the newer version, load it and serve a prediction.
func TestPipeline_TrainResolveLoadPredict(t *testing.T) {
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	trainer := NewTrainer(store, nil, 0.2)

	trainer.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	first, err := trainer.Train(ctx, domain.Hyperparameters{Trees: 10, MaxDepth: 4, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, "model_20240101T000000", first)

	trainer.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	second, err := trainer.Train(ctx, domain.Hyperparameters{Trees: 20, MaxDepth: 5, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, "model_20240615T120000", second)

	latest, err := NewResolver(store).ResolveLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, latest)

	model, err := NewLoader(store).LoadForServing(ctx)
	require.NoError(t, err)
	assert.False(t, model.Info.IsMock)
	assert.Equal(t, 20, model.Info.Hyperparams.Trees)

	svc := NewInferenceService(model)
	pred, err := svc.Predict([]float64{5.1, 3.5, 1.4, 0.2})
	require.NoError(t, err)
	assert.Equal(t, "setosa", pred.Label)
}

// Training twice within the same second must fail the write, not overwrite.
func TestPipeline_SameSecondCollision(t *testing.T) {
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	trainer := NewTrainer(store, nil, 0.2)
	trainer.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	_, err = trainer.Train(ctx, domain.Hyperparameters{Trees: 5, MaxDepth: 3, Seed: 1})
	require.NoError(t, err)

	_, err = trainer.Train(ctx, domain.Hyperparameters{Trees: 5, MaxDepth: 3, Seed: 2})
	assert.ErrorIs(t, err, domain.ErrVersionExists)

	// The first version is untouched.
	got, err := store.ReadVersion(ctx, "model_20240101T000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Info.Hyperparams.Seed)
}
