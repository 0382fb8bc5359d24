package services

import (
	"fmt"
	"math"

	"ml-pipeline-service/internal/core/domain"
)

// Prediction pairs the numeric class index with its human-readable label.
type Prediction struct {
	Class int
	Label string
}

// InferenceService wraps the loaded model for request handlers. The model is
// fixed at construction; predict is a pure function of its input, so one
// instance serves concurrent requests.
type InferenceService struct {
	model *domain.LoadedModel
}

func NewInferenceService(model *domain.LoadedModel) *InferenceService {
	return &InferenceService{model: model}
}

func (s *InferenceService) Info() domain.ModelInfo {
	return s.model.Info
}

// Predict validates the feature vector before the model sees it: wrong arity
// or non-finite values are client faults, not model faults.
func (s *InferenceService) Predict(features []float64) (*Prediction, error) {
	expected := len(s.model.Info.FeatureNames)
	if len(features) != expected {
		return nil, fmt.Errorf("%w: got %d, want %d", domain.ErrFeatureCount, len(features), expected)
	}
	for _, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, domain.ErrInvalidFeatures
		}
	}

	class, err := s.model.Forest.Predict(features)
	if err != nil {
		return nil, err
	}
	if class < 0 || class >= len(s.model.Info.TargetNames) {
		return nil, fmt.Errorf("predicted class %d outside target names", class)
	}

	return &Prediction{Class: class, Label: s.model.Info.TargetNames[class]}, nil
}
