package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/openkraft/kraftreview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSet_ApplyAndClamp(t *testing.T) {
	s := domain.FullScores().Apply(domain.ScoreDelta{Overall: 12, Security: 3, Maintainability: 2})
	assert.Equal(t, domain.ScoreSet{Overall: -2, Security: 7, Performance: 10, Maintainability: 8}, s)

	clamped := s.Clamp()
	assert.Equal(t, 0, clamped.Overall)
	assert.Equal(t, 7, clamped.Security)
}

func TestScoreDelta_Add(t *testing.T) {
	d := domain.ScoreDelta{Overall: 2, Security: 3}
	assert.Equal(t, domain.ScoreDelta{Overall: 3, Security: 3, Performance: 2}, d.Add(domain.ScoreDelta{Overall: 1, Performance: 2}))
}

func TestReport_MarshalJSON_WireShape(t *testing.T) {
	r := domain.Report{
		Scores: domain.ScoreSet{Overall: 7, Security: 7, Performance: 10, Maintainability: 9},
		Issues: []domain.Finding{
			{Kind: domain.KindIssue, Rule: "dynamic-evaluation", Message: "eval found", Line: 3},
		},
		Suggestions: []domain.Finding{
			{Kind: domain.KindSuggestion, Rule: "missing-comments", Message: "add comments"},
		},
		Explanation: "explained",
		AIFeedback:  "feedback",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"score": 7,
		"security_score": 7,
		"performance_score": 10,
		"maintainability_score": 9,
		"issues": [{"message": "eval found", "line": 3}],
		"suggestions": ["add comments"],
		"explanation": "explained",
		"ai_feedback": "feedback"
	}`, string(data))
}

func TestReport_MarshalJSON_EmptyListsAreArrays(t *testing.T) {
	data, err := json.Marshal(domain.Report{Scores: domain.FullScores()})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"issues":[]`)
	assert.Contains(t, string(data), `"suggestions":[]`)
}

func TestReport_Findings_IssuesFirst(t *testing.T) {
	r := domain.Report{
		Issues:      []domain.Finding{{Kind: domain.KindIssue, Message: "a", Line: 1}},
		Suggestions: []domain.Finding{{Kind: domain.KindSuggestion, Message: "b"}},
	}
	all := r.Findings()
	require.Len(t, all, 2)
	assert.True(t, all[0].IsIssue())
	assert.False(t, all[1].IsIssue())
}
