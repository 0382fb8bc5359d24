package domain

import (
	"fmt"
	"time"
)

// InfoSchemaVersion is bumped whenever the model_info.json layout changes.
const InfoSchemaVersion = 1

const ModelTypeRandomForest = "RandomForestClassifier"

// Metrics maps a metric name to its score, e.g. accuracy or f1_macro.
type Metrics map[string]float64

type Hyperparameters struct {
	Trees    int   `json:"trees"`
	MaxDepth int   `json:"max_depth"`
	Seed     int64 `json:"seed"`
}

// ModelInfo is the metadata record stored next to every model blob.
// TargetNames is index-aligned with the class ids the classifier predicts;
// both are derived from the same dataset split at training time.
type ModelInfo struct {
	SchemaVersion int             `json:"schema_version"`
	ModelType     string          `json:"model_type"`
	Hyperparams   Hyperparameters `json:"hyperparameters"`
	FeatureNames  []string        `json:"feature_names"`
	TargetNames   []string        `json:"target_names"`
	CreatedUTC    time.Time       `json:"created_utc"`
	RunID         string          `json:"run_id,omitempty"`
	IsMock        bool            `json:"is_mock,omitempty"`
}

// Validate rejects metadata that would produce confusing downstream errors:
// a corrupt or partial record must fail at read time.
func (i *ModelInfo) Validate() error {
	if i.SchemaVersion != InfoSchemaVersion {
		return fmt.Errorf("unsupported schema version %d", i.SchemaVersion)
	}
	if i.ModelType == "" {
		return fmt.Errorf("model_type is empty")
	}
	if len(i.FeatureNames) == 0 {
		return fmt.Errorf("feature_names is empty")
	}
	if len(i.TargetNames) == 0 {
		return fmt.Errorf("target_names is empty")
	}
	if i.CreatedUTC.IsZero() {
		return fmt.Errorf("created_utc is zero")
	}
	return nil
}

// ModelVersion is one immutable artifact: the serialized classifier plus its
// evaluation metrics and metadata, keyed by a sortable timestamp identifier.
type ModelVersion struct {
	ID      string
	Blob    []byte
	Metrics Metrics
	Info    ModelInfo
}

// VersionIDFormat yields identifiers that sort lexicographically in
// chronological order, e.g. model_20240615T120000.
const VersionIDFormat = "20060102T150405"

func NewVersionID(t time.Time) string {
	return "model_" + t.UTC().Format(VersionIDFormat)
}
