// Package review scores source text with an ordered set of heuristic rules.
//
// The pipeline is pure: text is segmented into lines, every rule runs
// against the same input, the score deltas are folded into a ScoreSet, and
// narrative feedback is synthesized from the final scores and findings.
// Identical text always yields an identical Report.
package review

import "github.com/openkraft/kraftreview/internal/domain"

// Reviewer turns source text into a Report.
type Reviewer struct {
	engine *Engine
}

// NewReviewer creates a Reviewer. A nil engine uses NewDefaultEngine.
func NewReviewer(engine *Engine) *Reviewer {
	if engine == nil {
		engine = NewDefaultEngine()
	}
	return &Reviewer{engine: engine}
}

// Rules describes the rules this reviewer applies.
func (r *Reviewer) Rules() []domain.RuleInfo { return r.engine.Rules() }

// Review runs the full pipeline over text.
func (r *Reviewer) Review(text string) domain.Report {
	outcomes := r.engine.Evaluate(NewSource(text))
	scores := Aggregate(outcomes)
	issues, suggestions := partition(outcomes)

	return domain.Report{
		Scores:      scores,
		Issues:      issues,
		Suggestions: suggestions,
		Explanation: Explanation(issues, suggestions),
		AIFeedback:  AIFeedback(scores),
	}
}

// partition splits findings by kind, keeping rule order within each list.
func partition(outcomes []Outcome) (issues, suggestions []domain.Finding) {
	issues = []domain.Finding{}
	suggestions = []domain.Finding{}
	for _, o := range outcomes {
		for _, f := range o.Findings {
			if f.IsIssue() {
				issues = append(issues, f)
				continue
			}
			suggestions = append(suggestions, f)
		}
	}
	return issues, suggestions
}
