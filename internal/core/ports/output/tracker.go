package ports

import (
	"context"
	"time"

	"ml-pipeline-service/internal/core/domain"
)

// TrainingRun is the record mirrored to the experiment-tracking sink.
type TrainingRun struct {
	RunID     string
	VersionID string
	CreatedAt time.Time
	Params    domain.Hyperparameters
	Metrics   domain.Metrics
}

// ExperimentTracker is an optional side channel for training runs. Failures
// here are the tracker's own problem: the trainer logs and moves on.
type ExperimentTracker interface {
	IsAvailable() bool
	LogRun(ctx context.Context, run *TrainingRun) error
}
