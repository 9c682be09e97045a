package review

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/openkraft/kraftreview/internal/domain"
)

// Source is the shared, read-only input every rule receives.
type Source struct {
	Text  string
	Lines []domain.Line
}

// NewSource segments text once so all rules see the same lines.
func NewSource(text string) Source {
	return Source{Text: text, Lines: SplitLines(text)}
}

// Outcome is what a single rule produced: its findings in emission order and
// the total points it takes away.
type Outcome struct {
	Rule     string
	Findings []domain.Finding
	Delta    domain.ScoreDelta
}

func (o *Outcome) issue(line int, msg string, d domain.ScoreDelta) {
	o.Findings = append(o.Findings, domain.Finding{
		Kind:    domain.KindIssue,
		Rule:    o.Rule,
		Message: msg,
		Line:    line,
	})
	o.Delta = o.Delta.Add(d)
}

func (o *Outcome) suggest(msg string, d domain.ScoreDelta) {
	o.Findings = append(o.Findings, domain.Finding{
		Kind:    domain.KindSuggestion,
		Rule:    o.Rule,
		Message: msg,
	})
	o.Delta = o.Delta.Add(d)
}

// Rule is an independent detector over a Source.
type Rule interface {
	ID() string
	Description() string
	Check(src Source) Outcome
}

// Engine runs an ordered rule set.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine that evaluates rules in the given order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// NewDefaultEngine returns the standard nine-rule engine.
func NewDefaultEngine() *Engine {
	return NewEngine(
		OverallLengthRule{MaxLines: 20},
		LongFunctionRule{MaxBodyLines: 10},
		TooManyParametersRule{MaxParams: 4},
		NestedLoopsRule{},
		DynamicEvaluationRule{},
		HardcodedPasswordRule{},
		ExcessiveBranchingRule{MaxConditionals: 3},
		MissingErrorHandlingRule{},
		MissingCommentsRule{},
	)
}

// Evaluate runs every rule against src. Outcomes come back in rule order;
// no rule is skipped because of another's result.
func (e *Engine) Evaluate(src Source) []Outcome {
	outcomes := make([]Outcome, 0, len(e.rules))
	for _, r := range e.rules {
		outcomes = append(outcomes, r.Check(src))
	}
	return outcomes
}

// Rules describes the installed rules in evaluation order.
func (e *Engine) Rules() []domain.RuleInfo {
	infos := make([]domain.RuleInfo, 0, len(e.rules))
	for _, r := range e.rules {
		infos = append(infos, domain.RuleInfo{
			ID:          r.ID(),
			Name:        ruleName(r),
			Description: r.Description(),
		})
	}
	return infos
}

// ruleName turns a rule's type name into words: HardcodedPasswordRule
// becomes "Hardcoded Password".
func ruleName(r Rule) string {
	typeName := fmt.Sprintf("%T", r)
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		typeName = typeName[i+1:]
	}
	typeName = strings.TrimPrefix(typeName, "*")
	typeName = strings.TrimSuffix(typeName, "Rule")
	return strings.Join(camelcase.Split(typeName), " ")
}
