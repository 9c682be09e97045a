package review

import (
	"regexp"
	"strings"

	"github.com/openkraft/kraftreview/internal/domain"
)

var (
	securityDelta = domain.ScoreDelta{Overall: 2, Security: 3}

	hardcodedPassword = regexp.MustCompile(`(?i)password\s*=\s*['"].+['"]`)
)

// evalMarker is the call that evaluates a string as code.
const evalMarker = "eval("

// DynamicEvaluationRule flags every line calling eval.
type DynamicEvaluationRule struct{}

func (DynamicEvaluationRule) ID() string { return "dynamic-evaluation" }
func (DynamicEvaluationRule) Description() string {
	return "Flags each line that evaluates strings as code."
}

func (r DynamicEvaluationRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	for _, line := range src.Lines {
		if strings.Contains(line.Content, evalMarker) {
			out.issue(line.Index,
				"Use of eval() detected. This can lead to serious security vulnerabilities.",
				securityDelta)
		}
	}
	return out
}

// HardcodedPasswordRule flags every line assigning a quoted literal to a
// password identifier.
type HardcodedPasswordRule struct{}

func (HardcodedPasswordRule) ID() string { return "hardcoded-password" }
func (HardcodedPasswordRule) Description() string {
	return "Flags each line that assigns a literal password."
}

func (r HardcodedPasswordRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	for _, line := range src.Lines {
		if hardcodedPassword.MatchString(line.Content) {
			out.issue(line.Index,
				"Hardcoded password detected. Avoid storing credentials directly in code.",
				securityDelta)
		}
	}
	return out
}
