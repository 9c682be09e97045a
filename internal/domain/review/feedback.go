package review

import (
	"strings"

	"github.com/openkraft/kraftreview/internal/domain"
)

// riskThreshold is the category score below which a risk clause is added.
const riskThreshold = 7

// strongOverall is the overall score at or above which the positive
// assessment replaces every risk clause.
const strongOverall = 9

const (
	feedbackPreamble        = "Based on structural and security analysis, "
	securityClause          = "there are potential security vulnerabilities that should be addressed immediately. "
	performanceClause       = "performance may degrade with large datasets due to inefficient logic. "
	maintainabilityClause   = "code structure could benefit from modularization and better separation of concerns. "
	positiveAssessment      = "Your code demonstrates strong structure and safe programming practices."
	feedbackClosing         = " Improving these areas will make the application more scalable and production-ready."
	cleanExplanation        = "Your code looks clean, readable, and well structured. Great job!"
	explanationOpening      = "After reviewing your code, here are my observations. "
	explanationClosing      = "Addressing these points will significantly improve overall quality."
	explanationSentenceTail = " "
)

// AIFeedback builds the short diagnostic summary from final scores.
func AIFeedback(scores domain.ScoreSet) string {
	clauses := []string{feedbackPreamble}
	if scores.Security < riskThreshold {
		clauses = append(clauses, securityClause)
	}
	if scores.Performance < riskThreshold {
		clauses = append(clauses, performanceClause)
	}
	if scores.Maintainability < riskThreshold {
		clauses = append(clauses, maintainabilityClause)
	}
	if scores.Overall >= strongOverall {
		clauses = []string{positiveAssessment}
	}
	clauses = append(clauses, feedbackClosing)
	return strings.Join(clauses, "")
}

// Explanation narrates every finding: issues first, then suggestions, each
// as its own sentence.
func Explanation(issues, suggestions []domain.Finding) string {
	if len(issues) == 0 && len(suggestions) == 0 {
		return cleanExplanation
	}
	parts := make([]string, 0, len(issues)+len(suggestions)+2)
	parts = append(parts, explanationOpening)
	for _, f := range issues {
		parts = append(parts, f.Message+explanationSentenceTail)
	}
	for _, f := range suggestions {
		parts = append(parts, f.Message+explanationSentenceTail)
	}
	parts = append(parts, explanationClosing)
	return strings.Join(parts, "")
}
