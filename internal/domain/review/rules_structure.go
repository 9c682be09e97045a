package review

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openkraft/kraftreview/internal/domain"
)

// funcDefPrefix marks the start of a function definition.
const funcDefPrefix = "def "

var (
	structureDelta = domain.ScoreDelta{Overall: 1, Maintainability: 2}
	loopDelta      = domain.ScoreDelta{Overall: 1, Performance: 2}

	// funcSignature captures the parameter list of a one-line definition.
	funcSignature = regexp.MustCompile(`def\s+[\p{L}\p{N}_]+\((.*?)\):`)

	loopPrefixes = []string{"for ", "while "}
)

func isFuncDef(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), funcDefPrefix)
}

// OverallLengthRule flags text with more than MaxLines lines.
type OverallLengthRule struct {
	MaxLines int
}

func (OverallLengthRule) ID() string { return "overall-length" }
func (OverallLengthRule) Description() string {
	return "Flags code that is long enough to be split into modules."
}

func (r OverallLengthRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	if len(src.Lines) > r.MaxLines {
		out.issue(1, "The overall code is long. Consider splitting it into smaller modules.", structureDelta)
	}
	return out
}

// LongFunctionRule flags each definition whose body runs past MaxBodyLines
// non-blank lines. A body ends at the next definition or at end of text.
type LongFunctionRule struct {
	MaxBodyLines int
}

func (LongFunctionRule) ID() string { return "long-function" }
func (LongFunctionRule) Description() string {
	return "Flags functions with too many non-blank lines."
}

func (r LongFunctionRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	for i, line := range src.Lines {
		if !isFuncDef(line.Content) {
			continue
		}
		length := bodyLength(src.Lines[i+1:])
		if length > r.MaxBodyLines {
			out.issue(line.Index,
				fmt.Sprintf("Function starting at line %d is too long (%d lines).", line.Index, length),
				structureDelta)
		}
	}
	return out
}

func bodyLength(rest []domain.Line) int {
	n := 0
	for _, l := range rest {
		if isFuncDef(l.Content) {
			break
		}
		if !isBlank(l.Content) {
			n++
		}
	}
	return n
}

// TooManyParametersRule flags every signature declaring more than MaxParams
// parameters. Signatures are matched across the whole text, so findings
// anchor at line 1.
type TooManyParametersRule struct {
	MaxParams int
}

func (TooManyParametersRule) ID() string { return "too-many-parameters" }
func (TooManyParametersRule) Description() string {
	return "Flags function signatures with a long parameter list."
}

func (r TooManyParametersRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	for _, m := range funcSignature.FindAllStringSubmatch(src.Text, -1) {
		count := countParams(m[1])
		if count > r.MaxParams {
			out.issue(1,
				fmt.Sprintf("Function has too many parameters (%d). Consider refactoring.", count),
				structureDelta)
		}
	}
	return out
}

func countParams(list string) int {
	n := 0
	for _, p := range strings.Split(list, ",") {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// NestedLoopsRule flags text with two or more loop headers. The finding
// anchors at the second loop.
type NestedLoopsRule struct{}

func (NestedLoopsRule) ID() string { return "nested-loops" }
func (NestedLoopsRule) Description() string {
	return "Flags multiple loops, which may be nested."
}

func (r NestedLoopsRule) Check(src Source) Outcome {
	out := Outcome{Rule: r.ID()}
	var loops []int
	for _, line := range src.Lines {
		if isLoopHeader(line.Content) {
			loops = append(loops, line.Index)
		}
	}
	if len(loops) > 1 {
		out.issue(loops[1], "Nested loops detected. This may impact performance.", loopDelta)
	}
	return out
}

func isLoopHeader(content string) bool {
	trimmed := strings.TrimSpace(content)
	for _, p := range loopPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
