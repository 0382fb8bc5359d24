package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIris(t *testing.T) {
	iris, err := LoadIris()
	require.NoError(t, err)

	assert.Len(t, iris.Features, 150)
	assert.Len(t, iris.Labels, 150)
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, iris.TargetNames)

	for _, row := range iris.Features {
		assert.Len(t, row, len(FeatureNames))
	}

	counts := make(map[int]int)
	for _, label := range iris.Labels {
		counts[label]++
	}
	assert.Equal(t, map[int]int{0: 50, 1: 50, 2: 50}, counts)
}

func TestStratifiedSplit_Deterministic(t *testing.T) {
	iris, err := LoadIris()
	require.NoError(t, err)

	a := iris.StratifiedSplit(0.2, 42)
	b := iris.StratifiedSplit(0.2, 42)
	assert.Equal(t, a.TrainX, b.TrainX)
	assert.Equal(t, a.TrainY, b.TrainY)
	assert.Equal(t, a.TestX, b.TestX)
	assert.Equal(t, a.TestY, b.TestY)

	other := iris.StratifiedSplit(0.2, 43)
	assert.NotEqual(t, a.TrainX, other.TrainX)
}

func TestStratifiedSplit_Proportions(t *testing.T) {
	iris, err := LoadIris()
	require.NoError(t, err)

	split := iris.StratifiedSplit(0.2, 42)
	assert.Len(t, split.TestX, 30)
	assert.Len(t, split.TrainX, 120)

	// Every class contributes the same share to the held-out set.
	testCounts := make(map[int]int)
	for _, label := range split.TestY {
		testCounts[label]++
	}
	assert.Equal(t, map[int]int{0: 10, 1: 10, 2: 10}, testCounts)
}

func TestStratifiedSplit_BadRatioFallsBack(t *testing.T) {
	iris, err := LoadIris()
	require.NoError(t, err)

	split := iris.StratifiedSplit(1.5, 42)
	assert.Len(t, split.TestX, 30)
}

func TestMockSeed(t *testing.T) {
	seed, err := MockSeed(5)
	require.NoError(t, err)

	assert.Len(t, seed.Features, 15)
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, seed.TargetNames)

	counts := make(map[int]int)
	for _, label := range seed.Labels {
		counts[label]++
	}
	assert.Equal(t, map[int]int{0: 5, 1: 5, 2: 5}, counts)
}
