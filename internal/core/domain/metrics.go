package domain

// Accuracy is the fraction of predictions matching the true labels.
func Accuracy(truth, preds []int) float64 {
	if len(truth) == 0 || len(truth) != len(preds) {
		return 0
	}
	correct := 0
	for i := range truth {
		if truth[i] == preds[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth))
}

// MacroF1 averages per-class F1 uniformly, independent of class frequency.
func MacroF1(truth, preds []int, classes int) float64 {
	if len(truth) == 0 || len(truth) != len(preds) || classes <= 0 {
		return 0
	}

	sum := 0.0
	for c := 0; c < classes; c++ {
		tp, fp, fn := 0, 0, 0
		for i := range truth {
			switch {
			case preds[i] == c && truth[i] == c:
				tp++
			case preds[i] == c && truth[i] != c:
				fp++
			case preds[i] != c && truth[i] == c:
				fn++
			}
		}
		if tp == 0 {
			continue
		}
		precision := float64(tp) / float64(tp+fp)
		recall := float64(tp) / float64(tp+fn)
		sum += 2 * precision * recall / (precision + recall)
	}
	return sum / float64(classes)
}
