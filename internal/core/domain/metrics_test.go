package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 1.0, Accuracy([]int{0, 1, 2}, []int{0, 1, 2}))
	assert.Equal(t, 0.5, Accuracy([]int{0, 1, 0, 1}, []int{0, 0, 1, 1}))
	assert.Equal(t, 0.0, Accuracy(nil, nil))
	assert.Equal(t, 0.0, Accuracy([]int{0}, []int{0, 1}))
}

func TestMacroF1_Perfect(t *testing.T) {
	truth := []int{0, 0, 1, 1, 2, 2}
	assert.InDelta(t, 1.0, MacroF1(truth, truth, 3), 1e-9)
}

func TestMacroF1_IgnoresClassFrequency(t *testing.T) {
	// Predicting everything as the majority class scores poorly on macro-F1
	// even though plain accuracy looks decent.
	truth := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}
	preds := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	acc := Accuracy(truth, preds)
	f1 := MacroF1(truth, preds, 2)
	assert.InDelta(t, 0.8, acc, 1e-9)
	assert.Less(t, f1, acc)
	assert.Greater(t, f1, 0.0)
	assert.LessOrEqual(t, f1, 1.0)
}

func TestMacroF1_Invalid(t *testing.T) {
	assert.Equal(t, 0.0, MacroF1(nil, nil, 3))
	assert.Equal(t, 0.0, MacroF1([]int{0}, []int{0}, 0))
}
