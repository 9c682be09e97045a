package domain

import "encoding/json"

// MaxScore is the starting value of every score dimension.
const MaxScore = 10

// FindingKind separates line-anchored issues from general suggestions.
type FindingKind string

const (
	KindIssue      FindingKind = "issue"
	KindSuggestion FindingKind = "suggestion"
)

// Line is one line of the reviewed text. Index is 1-based.
type Line struct {
	Index   int
	Content string
}

// Finding is a single rule result. Issues always carry Line >= 1,
// suggestions always carry Line == 0.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Rule    string      `json:"rule"`
	Message string      `json:"message"`
	Line    int         `json:"line,omitempty"`
}

func (f Finding) IsIssue() bool { return f.Kind == KindIssue }

// ScoreSet is the four-dimensional assessment of a review.
type ScoreSet struct {
	Overall         int `json:"score"`
	Security        int `json:"security_score"`
	Performance     int `json:"performance_score"`
	Maintainability int `json:"maintainability_score"`
}

// FullScores returns a ScoreSet with every dimension at MaxScore.
func FullScores() ScoreSet {
	return ScoreSet{
		Overall:         MaxScore,
		Security:        MaxScore,
		Performance:     MaxScore,
		Maintainability: MaxScore,
	}
}

// ScoreDelta holds the points a rule takes away from each dimension.
type ScoreDelta struct {
	Overall         int
	Security        int
	Performance     int
	Maintainability int
}

// Add returns the sum of two deltas.
func (d ScoreDelta) Add(o ScoreDelta) ScoreDelta {
	return ScoreDelta{
		Overall:         d.Overall + o.Overall,
		Security:        d.Security + o.Security,
		Performance:     d.Performance + o.Performance,
		Maintainability: d.Maintainability + o.Maintainability,
	}
}

// Apply subtracts the delta from s without clamping.
func (s ScoreSet) Apply(d ScoreDelta) ScoreSet {
	return ScoreSet{
		Overall:         s.Overall - d.Overall,
		Security:        s.Security - d.Security,
		Performance:     s.Performance - d.Performance,
		Maintainability: s.Maintainability - d.Maintainability,
	}
}

// Clamp raises every negative dimension to zero.
func (s ScoreSet) Clamp() ScoreSet {
	return ScoreSet{
		Overall:         max(s.Overall, 0),
		Security:        max(s.Security, 0),
		Performance:     max(s.Performance, 0),
		Maintainability: max(s.Maintainability, 0),
	}
}

// Report is the result of reviewing one block of source text.
type Report struct {
	Scores      ScoreSet
	Issues      []Finding
	Suggestions []Finding
	Explanation string
	AIFeedback  string
}

// Findings returns issues followed by suggestions.
func (r Report) Findings() []Finding {
	all := make([]Finding, 0, len(r.Issues)+len(r.Suggestions))
	all = append(all, r.Issues...)
	return append(all, r.Suggestions...)
}

// SuggestionMessages returns the suggestion texts in order.
func (r Report) SuggestionMessages() []string {
	msgs := make([]string, 0, len(r.Suggestions))
	for _, s := range r.Suggestions {
		msgs = append(msgs, s.Message)
	}
	return msgs
}

// IssueJSON is the wire form of an issue.
type IssueJSON struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
}

// ReportJSON is the wire form of a Report shared by the HTTP API, the CLI
// and the MCP tools.
type ReportJSON struct {
	Score                int         `json:"score"`
	SecurityScore        int         `json:"security_score"`
	PerformanceScore     int         `json:"performance_score"`
	MaintainabilityScore int         `json:"maintainability_score"`
	Issues               []IssueJSON `json:"issues"`
	Suggestions          []string    `json:"suggestions"`
	Explanation          string      `json:"explanation"`
	AIFeedback           string      `json:"ai_feedback"`
}

// Wire converts the report to its wire form. Slices are never nil.
func (r Report) Wire() ReportJSON {
	issues := make([]IssueJSON, 0, len(r.Issues))
	for _, iss := range r.Issues {
		issues = append(issues, IssueJSON{Message: iss.Message, Line: iss.Line})
	}
	return ReportJSON{
		Score:                r.Scores.Overall,
		SecurityScore:        r.Scores.Security,
		PerformanceScore:     r.Scores.Performance,
		MaintainabilityScore: r.Scores.Maintainability,
		Issues:               issues,
		Suggestions:          r.SuggestionMessages(),
		Explanation:          r.Explanation,
		AIFeedback:           r.AIFeedback,
	}
}

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Wire())
}

// RuleInfo describes an installed rule.
type RuleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
