package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"ml-pipeline-service/internal/adapters/secondary/fsstore"
	"ml-pipeline-service/internal/adapters/secondary/postgres"
	"ml-pipeline-service/internal/config"
	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
	"ml-pipeline-service/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	trees := flag.Int("trees", cfg.Trainer.Trees, "number of trees in the forest")
	maxDepth := flag.Int("max_depth", cfg.Trainer.MaxDepth, "max tree depth")
	seed := flag.Int64("seed", cfg.Trainer.Seed, "random seed for split and fit")
	artifactDir := flag.String("artifact_dir", cfg.Store.ArtifactDir, "artifact store root")
	flag.Parse()

	store, err := fsstore.New(*artifactDir)
	if err != nil {
		log.Fatalf("open artifact store: %v", err)
	}

	// Experiment tracking is an optional side channel; a missing or broken
	// sink must not fail the training run.
	var tracker ports.ExperimentTracker
	if cfg.Tracking.Enabled {
		pool, err := pgxpool.New(context.Background(), cfg.Tracking.DSN)
		if err != nil {
			log.Warnf("experiment tracking init failed (continuing without): %v", err)
		} else {
			defer pool.Close()
			tracker = postgres.NewTrainingRunRepository(pool, cfg.Tracking.Timeout)
			log.Info("experiment tracking enabled")
		}
	}

	trainer := services.NewTrainer(store, tracker, cfg.Trainer.TestRatio)

	versionID, err := trainer.Train(context.Background(), domain.Hyperparameters{
		Trees:    *trees,
		MaxDepth: *maxDepth,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	fmt.Printf("saved: %s\n", versionID)
}
