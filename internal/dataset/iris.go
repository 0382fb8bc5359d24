// Package dataset ships the fixed tabular dataset the trainer runs on.
// The iris data is embedded so training needs no external source.
package dataset

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

//go:embed iris.csv
var irisCSV string

// FeatureNames is the ordered list of input columns.
var FeatureNames = []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}

// Iris holds the full dataset with class labels encoded as indexes into
// TargetNames, in order of first appearance.
type Iris struct {
	Features    [][]float64
	Labels      []int
	TargetNames []string
}

type Split struct {
	TrainX [][]float64
	TrainY []int
	TestX  [][]float64
	TestY  []int
}

// LoadIris parses the embedded CSV. The row order is fixed, so repeated
// loads are identical.
func LoadIris() (*Iris, error) {
	reader := csv.NewReader(strings.NewReader(irisCSV))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse iris csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("iris csv has no data rows")
	}

	ds := &Iris{}
	classIdx := make(map[string]int)

	for _, row := range rows[1:] {
		if len(row) != len(FeatureNames)+1 {
			return nil, fmt.Errorf("iris csv row has %d columns, want %d", len(row), len(FeatureNames)+1)
		}
		vec := make([]float64, len(FeatureNames))
		for i := 0; i < len(FeatureNames); i++ {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("parse iris value %q: %w", row[i], err)
			}
			vec[i] = v
		}
		species := row[len(row)-1]
		idx, ok := classIdx[species]
		if !ok {
			idx = len(ds.TargetNames)
			classIdx[species] = idx
			ds.TargetNames = append(ds.TargetNames, species)
		}
		ds.Features = append(ds.Features, vec)
		ds.Labels = append(ds.Labels, idx)
	}

	return ds, nil
}

// StratifiedSplit shuffles each class independently with the given seed and
// holds out testRatio of every class. Same seed, same data, identical split.
func (d *Iris) StratifiedSplit(testRatio float64, seed int64) Split {
	if testRatio <= 0 || testRatio >= 1 {
		testRatio = 0.2
	}

	rng := rand.New(rand.NewSource(seed))
	byClass := make(map[int][]int)
	for i, label := range d.Labels {
		byClass[label] = append(byClass[label], i)
	}

	var split Split
	for class := 0; class < len(d.TargetNames); class++ {
		indexes := byClass[class]
		rng.Shuffle(len(indexes), func(i, j int) {
			indexes[i], indexes[j] = indexes[j], indexes[i]
		})
		testCount := int(float64(len(indexes)) * testRatio)
		for i, idx := range indexes {
			if i < testCount {
				split.TestX = append(split.TestX, d.Features[idx])
				split.TestY = append(split.TestY, d.Labels[idx])
			} else {
				split.TrainX = append(split.TrainX, d.Features[idx])
				split.TrainY = append(split.TrainY, d.Labels[idx])
			}
		}
	}

	return split
}

// MockSeed returns a small per-class slice of the dataset, enough to fit the
// fallback model served when the artifact store is empty.
func MockSeed(perClass int) (*Iris, error) {
	full, err := LoadIris()
	if err != nil {
		return nil, err
	}
	if perClass <= 0 {
		perClass = 5
	}

	seed := &Iris{TargetNames: full.TargetNames}
	taken := make(map[int]int)
	for i, label := range full.Labels {
		if taken[label] >= perClass {
			continue
		}
		taken[label]++
		seed.Features = append(seed.Features, full.Features[i])
		seed.Labels = append(seed.Labels, label)
	}

	return seed, nil
}
