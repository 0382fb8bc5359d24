package domain

import "errors"

// ============================================================================
// Artifact Store Errors
// ============================================================================

var (
	ErrVersionNotFound = errors.New("model version not found")
	ErrVersionExists   = errors.New("model version with this identifier already exists")
	ErrStoreWrite      = errors.New("artifact store write failed")
	ErrNoArtifacts     = errors.New("no model artifacts found")
)

// ============================================================================
// Inference Errors
// ============================================================================

var (
	ErrFeatureCount    = errors.New("feature vector length does not match model input")
	ErrInvalidFeatures = errors.New("feature values must be finite numbers")
	ErrModelNotTrained = errors.New("model has no trained trees")
)

// ============================================================================
// Training Errors
// ============================================================================

var (
	ErrEmptyDataset    = errors.New("dataset has no samples")
	ErrDatasetMismatch = errors.New("features and labels size mismatch")
)

// ============================================================================
// Chat Errors
// ============================================================================

var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded, please wait before trying again")
	ErrEmptyPrompt       = errors.New("prompt is required")
	ErrChatUpstream      = errors.New("chat provider request failed")
)
