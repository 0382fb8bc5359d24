package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ml-pipeline-service/internal/core/domain"
	ports "ml-pipeline-service/internal/core/ports/output"
)

// MockArtifactStore is a mock of ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) ListVersions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockArtifactStore) WriteVersion(ctx context.Context, id string, blob []byte, metrics domain.Metrics, info domain.ModelInfo) error {
	args := m.Called(ctx, id, blob, metrics, info)
	return args.Error(0)
}

func (m *MockArtifactStore) ReadVersion(ctx context.Context, id string) (*domain.ModelVersion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelVersion), args.Error(1)
}

// MockExperimentTracker is a mock of ExperimentTracker.
type MockExperimentTracker struct {
	mock.Mock
}

func (m *MockExperimentTracker) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockExperimentTracker) LogRun(ctx context.Context, run *ports.TrainingRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

// MockChatCompleter is a mock of ChatCompleter.
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, prompt string, history []ports.ChatMessage) (string, error) {
	args := m.Called(ctx, prompt, history)
	return args.String(0), args.Error(1)
}
