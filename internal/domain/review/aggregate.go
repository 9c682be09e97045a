package review

import "github.com/openkraft/kraftreview/internal/domain"

// Aggregate folds every outcome's delta into a full ScoreSet in rule order,
// then clamps each dimension at zero.
func Aggregate(outcomes []Outcome) domain.ScoreSet {
	scores := domain.FullScores()
	for _, o := range outcomes {
		scores = scores.Apply(o.Delta)
	}
	return scores.Clamp()
}
