package services

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
	"ml-pipeline-service/internal/dataset"
)

// mockSeedPerClass sizes the embedded seed slice the fallback model trains on.
const mockSeedPerClass = 5

var mockHyperparams = domain.Hyperparameters{Trees: 5, MaxDepth: 2, Seed: 1}

// Loader resolves and loads the model to serve. An empty artifact store is
// an expected state (first deployment, ephemeral environment) and falls back
// to a synthesized mock model; a corrupt store fails startup loudly.
type Loader struct {
	store    ports.ArtifactStore
	resolver *Resolver
}

func NewLoader(store ports.ArtifactStore) *Loader {
	return &Loader{store: store, resolver: NewResolver(store)}
}

func (l *Loader) LoadForServing(ctx context.Context) (*domain.LoadedModel, error) {
	versionID, err := l.resolver.ResolveLatest(ctx)
	if errors.Is(err, domain.ErrNoArtifacts) {
		log.Warn("no model artifacts found, serving mock model")
		return l.mockModel()
	}
	if err != nil {
		return nil, err
	}

	version, err := l.store.ReadVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}

	forest, err := domain.DecodeForest(version.Blob)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"version":    version.ID,
		"model_type": version.Info.ModelType,
	}).Info("model loaded for serving")

	return &domain.LoadedModel{Forest: forest, Metrics: version.Metrics, Info: version.Info}, nil
}

// mockModel fits a tiny forest on the embedded seed subset. It is created
// fresh on every invocation and never written to the store.
func (l *Loader) mockModel() (*domain.LoadedModel, error) {
	seed, err := dataset.MockSeed(mockSeedPerClass)
	if err != nil {
		return nil, err
	}

	forest, err := domain.TrainForest(seed.Features, seed.Labels, mockHyperparams)
	if err != nil {
		return nil, err
	}

	return &domain.LoadedModel{
		Forest:  forest,
		Metrics: domain.Metrics{},
		Info: domain.ModelInfo{
			SchemaVersion: domain.InfoSchemaVersion,
			ModelType:     domain.ModelTypeRandomForest,
			Hyperparams:   mockHyperparams,
			FeatureNames:  dataset.FeatureNames,
			TargetNames:   seed.TargetNames,
			CreatedUTC:    time.Now().UTC(),
			IsMock:        true,
		},
	}, nil
}
