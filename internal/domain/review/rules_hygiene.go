package review

import (
	"strings"

	"github.com/openkraft/kraftreview/internal/domain"
)

var hygieneDelta = domain.ScoreDelta{Maintainability: 1}

const (
	conditionalMarker = "if "
	tryMarker         = "try:"
	exceptMarker      = "except"
	commentMarker     = "#"
)

// ExcessiveBranchingRule suggests simplification when the text holds more
// than MaxConditionals conditionals.
type ExcessiveBranchingRule struct {
	MaxConditionals int
}

func (ExcessiveBranchingRule) ID() string { return "excessive-branching" }
func (ExcessiveBranchingRule) Description() string {
	return "Suggests simplifying code with many conditional branches."
}

func (r ExcessiveBranchingRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	if strings.Count(src.Text, conditionalMarker) > r.MaxConditionals {
		out.suggest("Too many conditional branches. Consider simplifying logic.", hygieneDelta)
	}
	return out
}

// MissingErrorHandlingRule suggests adding try/except when neither appears.
// Empty text is left alone.
type MissingErrorHandlingRule struct{}

func (MissingErrorHandlingRule) ID() string { return "missing-error-handling" }
func (MissingErrorHandlingRule) Description() string {
	return "Suggests error handling when the code has none."
}

func (r MissingErrorHandlingRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	if src.Text == "" {
		return out
	}
	if !strings.Contains(src.Text, tryMarker) && !strings.Contains(src.Text, exceptMarker) {
		out.suggest("You should add proper error handling using try and except blocks.", hygieneDelta)
	}
	return out
}

// MissingCommentsRule suggests comments when the text has none.
// Empty text is left alone.
type MissingCommentsRule struct{}

func (MissingCommentsRule) ID() string { return "missing-comments" }
func (MissingCommentsRule) Description() string {
	return "Suggests comments when the code has none."
}

func (r MissingCommentsRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	if src.Text == "" {
		return out
	}
	if !strings.Contains(src.Text, commentMarker) {
		out.suggest("Add comments to improve readability.", hygieneDelta)
	}
	return out
}
