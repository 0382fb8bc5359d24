package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// TreeNode is one node of a decision tree, stored as a flat array with
// child indexes so the whole tree serializes as plain JSON.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// Forest is a bootstrap-aggregated ensemble of gini decision trees.
// Prediction is a majority vote across trees and is a pure function of its
// input given a trained forest, so a shared instance is safe for concurrent
// read-only use.
type Forest struct {
	Trees   [][]TreeNode `json:"trees"`
	Classes int          `json:"classes"`
}

// TrainForest fits an ensemble on the given samples. The same seed and the
// same data always produce an identical forest.
func TrainForest(features [][]float64, labels []int, hp Hyperparameters) (*Forest, error) {
	if len(features) == 0 || len(labels) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(features) != len(labels) {
		return nil, ErrDatasetMismatch
	}

	trees := hp.Trees
	if trees <= 0 {
		trees = 10
	}
	maxDepth := hp.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 5
	}

	classes := 0
	for _, label := range labels {
		if label < 0 {
			return nil, fmt.Errorf("%w: negative class label %d", ErrDatasetMismatch, label)
		}
		if label+1 > classes {
			classes = label + 1
		}
	}

	rng := rand.New(rand.NewSource(hp.Seed))
	forest := &Forest{Classes: classes, Trees: make([][]TreeNode, 0, trees)}

	for t := 0; t < trees; t++ {
		sampleX, sampleY := bootstrapSample(features, labels, rng)
		forest.Trees = append(forest.Trees, buildNode(sampleX, sampleY, 0, maxDepth))
	}

	return forest, nil
}

// Predict returns the majority-vote class index for one feature vector.
func (f *Forest) Predict(features []float64) (int, error) {
	if f == nil || len(f.Trees) == 0 {
		return 0, ErrModelNotTrained
	}

	votes := make([]int, f.Classes)
	for _, nodes := range f.Trees {
		label, err := predictTree(nodes, features)
		if err != nil {
			return 0, err
		}
		if label >= 0 && label < f.Classes {
			votes[label]++
		}
	}

	best := 0
	for label := 1; label < len(votes); label++ {
		if votes[label] > votes[best] {
			best = label
		}
	}
	return best, nil
}

func EncodeForest(f *Forest) ([]byte, error) {
	if f == nil || len(f.Trees) == 0 {
		return nil, ErrModelNotTrained
	}
	return json.Marshal(f)
}

func DecodeForest(blob []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(blob, &f); err != nil {
		return nil, fmt.Errorf("decode forest: %w", err)
	}
	if len(f.Trees) == 0 || f.Classes <= 0 {
		return nil, ErrModelNotTrained
	}
	return &f, nil
}

func predictTree(nodes []TreeNode, features []float64) (int, error) {
	if len(nodes) == 0 {
		return 0, ErrModelNotTrained
	}
	idx := 0
	for {
		node := nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(features) {
			return 0, ErrFeatureCount
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(nodes) {
			return 0, fmt.Errorf("invalid tree state at node %d", idx)
		}
	}
}

func bootstrapSample(features [][]float64, labels []int, rng *rand.Rand) ([][]float64, []int) {
	n := len(features)
	sampleX := make([][]float64, n)
	sampleY := make([]int, n)
	for i := 0; i < n; i++ {
		j := rng.Intn(n)
		sampleX[i] = features[j]
		sampleY[i] = labels[j]
	}
	return sampleX, sampleY
}

func buildNode(features [][]float64, labels []int, depth, maxDepth int) []TreeNode {
	leaf := func() []TreeNode {
		return []TreeNode{{
			FeatureIdx: -1,
			LeftChild:  -1,
			RightChild: -1,
			ClassLabel: majorityLabel(labels),
			IsLeaf:     true,
		}}
	}

	if depth >= maxDepth || isPure(labels) {
		return leaf()
	}

	bestFeature, threshold, ok := findBestSplit(features, labels)
	if !ok {
		return leaf()
	}

	leftX, leftY, rightX, rightY := splitData(features, labels, bestFeature, threshold)
	if len(leftY) == 0 || len(rightY) == 0 {
		return leaf()
	}

	leftNodes := buildNode(leftX, leftY, depth+1, maxDepth)
	rightNodes := buildNode(rightX, rightY, depth+1, maxDepth)

	root := TreeNode{
		FeatureIdx: bestFeature,
		Threshold:  threshold,
		LeftChild:  1,
		RightChild: 1 + len(leftNodes),
		ClassLabel: majorityLabel(labels),
	}

	nodes := make([]TreeNode, 0, 1+len(leftNodes)+len(rightNodes))
	nodes = append(nodes, root)
	nodes = append(nodes, leftNodes...)
	nodes = append(nodes, rightNodes...)
	return nodes
}

func findBestSplit(features [][]float64, labels []int) (int, float64, bool) {
	featureCount := len(features[0])
	bestFeature := -1
	bestThreshold := 0.0
	bestImpurity := math.MaxFloat64

	for featureIdx := 0; featureIdx < featureCount; featureIdx++ {
		values := make([]float64, len(features))
		for i := range features {
			values[i] = features[i][featureIdx]
		}
		threshold := median(values)
		leftY, rightY := splitLabels(features, labels, featureIdx, threshold)
		if len(leftY) == 0 || len(rightY) == 0 {
			continue
		}
		impurity := weightedGini(leftY, rightY)
		if impurity < bestImpurity {
			bestImpurity = impurity
			bestFeature = featureIdx
			bestThreshold = threshold
		}
	}
	if bestFeature == -1 {
		return -1, 0, false
	}
	return bestFeature, bestThreshold, true
}

func splitData(features [][]float64, labels []int, featureIdx int, threshold float64) ([][]float64, []int, [][]float64, []int) {
	var leftX, rightX [][]float64
	var leftY, rightY []int
	for i, row := range features {
		if row[featureIdx] <= threshold {
			leftX = append(leftX, row)
			leftY = append(leftY, labels[i])
		} else {
			rightX = append(rightX, row)
			rightY = append(rightY, labels[i])
		}
	}
	return leftX, leftY, rightX, rightY
}

func splitLabels(features [][]float64, labels []int, featureIdx int, threshold float64) ([]int, []int) {
	var leftY, rightY []int
	for i, row := range features {
		if row[featureIdx] <= threshold {
			leftY = append(leftY, labels[i])
		} else {
			rightY = append(rightY, labels[i])
		}
	}
	return leftY, rightY
}

func weightedGini(leftY, rightY []int) float64 {
	left := float64(len(leftY))
	right := float64(len(rightY))
	total := left + right
	return (left/total)*gini(leftY) + (right/total)*gini(rightY)
}

func gini(labels []int) float64 {
	if len(labels) == 0 {
		return 0
	}
	// Count into a label-indexed slice so the impurity sum runs in a
	// fixed order; float subtraction is not associative, and map-order
	// iteration would make near-tie splits seed-unstable.
	maxLabel := 0
	for _, label := range labels {
		if label > maxLabel {
			maxLabel = label
		}
	}
	counts := make([]int, maxLabel+1)
	for _, label := range labels {
		counts[label]++
	}
	impurity := 1.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(len(labels))
		impurity -= p * p
	}
	return impurity
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func majorityLabel(labels []int) int {
	counts := make(map[int]int)
	bestLabel := 0
	bestCount := -1
	for _, label := range labels {
		counts[label]++
		if counts[label] > bestCount {
			bestCount = counts[label]
			bestLabel = label
		}
	}
	return bestLabel
}

func isPure(labels []int) bool {
	if len(labels) == 0 {
		return true
	}
	first := labels[0]
	for _, label := range labels[1:] {
		if label != first {
			return false
		}
	}
	return true
}
