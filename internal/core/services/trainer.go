package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
	"ml-pipeline-service/internal/dataset"
)

// Trainer fits a classifier on the embedded dataset and writes the result
// into the artifact store as a new immutable version.
type Trainer struct {
	store     ports.ArtifactStore
	tracker   ports.ExperimentTracker
	testRatio float64
	now       func() time.Time
}

func NewTrainer(store ports.ArtifactStore, tracker ports.ExperimentTracker, testRatio float64) *Trainer {
	if testRatio <= 0 || testRatio >= 1 {
		testRatio = 0.2
	}
	return &Trainer{store: store, tracker: tracker, testRatio: testRatio, now: time.Now}
}

// Train runs one full training: split, fit, evaluate, persist. It returns
// the new version identifier. The experiment-tracking mirror is best-effort
// and never fails the run.
func (t *Trainer) Train(ctx context.Context, hp domain.Hyperparameters) (string, error) {
	iris, err := dataset.LoadIris()
	if err != nil {
		return "", err
	}
	split := iris.StratifiedSplit(t.testRatio, hp.Seed)

	forest, err := domain.TrainForest(split.TrainX, split.TrainY, hp)
	if err != nil {
		return "", err
	}

	preds := make([]int, len(split.TestX))
	for i, vec := range split.TestX {
		label, err := forest.Predict(vec)
		if err != nil {
			return "", err
		}
		preds[i] = label
	}

	metrics := domain.Metrics{
		"accuracy": domain.Accuracy(split.TestY, preds),
		"f1_macro": domain.MacroF1(split.TestY, preds, len(iris.TargetNames)),
	}

	blob, err := domain.EncodeForest(forest)
	if err != nil {
		return "", err
	}

	now := t.now().UTC()
	versionID := domain.NewVersionID(now)
	runID := uuid.New().String()

	info := domain.ModelInfo{
		SchemaVersion: domain.InfoSchemaVersion,
		ModelType:     domain.ModelTypeRandomForest,
		Hyperparams:   hp,
		FeatureNames:  dataset.FeatureNames,
		// Derived from the same dataset the forest was fit on, so index i
		// always names the class the forest predicts as i.
		TargetNames: iris.TargetNames,
		CreatedUTC:  now,
		RunID:       runID,
	}

	if err := t.store.WriteVersion(ctx, versionID, blob, metrics, info); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"version":  versionID,
		"accuracy": metrics["accuracy"],
		"f1_macro": metrics["f1_macro"],
	}).Info("training run persisted")

	t.mirrorRun(ctx, &ports.TrainingRun{
		RunID:     runID,
		VersionID: versionID,
		CreatedAt: now,
		Params:    hp,
		Metrics:   metrics,
	})

	return versionID, nil
}

// mirrorRun forwards the run to the tracking sink. Failures stay here.
func (t *Trainer) mirrorRun(ctx context.Context, run *ports.TrainingRun) {
	if t.tracker == nil || !t.tracker.IsAvailable() {
		return
	}
	if err := t.tracker.LogRun(ctx, run); err != nil {
		log.WithField("run_id", run.RunID).Warnf("experiment tracking failed: %v", err)
	}
}
