package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-pipeline-service/internal/core/domain"
	"ml-pipeline-service/internal/testutil"
)

func servingModel(t *testing.T) *domain.LoadedModel {
	t.Helper()
	store := new(testutil.MockArtifactStore)
	store.On("ListVersions", mock.Anything).Return([]string{}, nil)
	model, err := NewLoader(store).LoadForServing(context.Background())
	require.NoError(t, err)
	return model
}

func TestPredict_ValidVector(t *testing.T) {
	svc := NewInferenceService(servingModel(t))

	pred, err := svc.Predict([]float64{5.1, 3.5, 1.4, 0.2})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pred.Class, 0)
	assert.Less(t, pred.Class, len(svc.Info().TargetNames))
	assert.Equal(t, svc.Info().TargetNames[pred.Class], pred.Label)
}

func TestPredict_AllValidVectorsStayInRange(t *testing.T) {
	svc := NewInferenceService(servingModel(t))

	vectors := [][]float64{
		{0, 0, 0, 0},
		{5.1, 3.5, 1.4, 0.2},
		{6.3, 3.3, 6.0, 2.5},
		{100, 100, 100, 100},
		{-1, -1, -1, -1},
	}
	for _, vec := range vectors {
		pred, err := svc.Predict(vec)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pred.Class, 0)
		assert.Less(t, pred.Class, len(svc.Info().TargetNames))
	}
}

func TestPredict_WrongArity(t *testing.T) {
	svc := NewInferenceService(servingModel(t))

	_, err := svc.Predict([]float64{5.1, 3.5})
	assert.ErrorIs(t, err, domain.ErrFeatureCount)

	_, err = svc.Predict(nil)
	assert.ErrorIs(t, err, domain.ErrFeatureCount)

	_, err = svc.Predict([]float64{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, domain.ErrFeatureCount)
}

func TestPredict_NonFiniteValues(t *testing.T) {
	svc := NewInferenceService(servingModel(t))

	_, err := svc.Predict([]float64{math.NaN(), 3.5, 1.4, 0.2})
	assert.ErrorIs(t, err, domain.ErrInvalidFeatures)

	_, err = svc.Predict([]float64{5.1, math.Inf(1), 1.4, 0.2})
	assert.ErrorIs(t, err, domain.ErrInvalidFeatures)
}
