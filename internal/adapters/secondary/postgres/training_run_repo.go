// Package postgres records training runs in an experiment-tracking table.
// The sink is insert-only and best-effort: the trainer treats any failure
// here as a warning, never as a failed run.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	ports "ml-pipeline-service/internal/core/ports/output"
)

type trainingRunRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewTrainingRunRepository creates a new ExperimentTracker backed by Postgres.
func NewTrainingRunRepository(pool *pgxpool.Pool, timeout time.Duration) ports.ExperimentTracker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &trainingRunRepo{pool: pool, timeout: timeout}
}

func (r *trainingRunRepo) IsAvailable() bool {
	if r.pool == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.pool.Ping(ctx) == nil
}

func (r *trainingRunRepo) LogRun(ctx context.Context, run *ports.TrainingRun) error {
	params, err := json.Marshal(run.Params)
	if err != nil {
		return fmt.Errorf("marshal run params: %w", err)
	}
	metrics, err := json.Marshal(run.Metrics)
	if err != nil {
		return fmt.Errorf("marshal run metrics: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO training_run (run_id, version_id, created_at, params, metrics)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.pool.Exec(ctx, query, run.RunID, run.VersionID, run.CreatedAt, params, metrics); err != nil {
		return fmt.Errorf("insert training run: %w", err)
	}
	return nil
}
