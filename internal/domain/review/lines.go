package review

import (
	"strings"

	"github.com/openkraft/kraftreview/internal/domain"
)

// SplitLines breaks text on line feeds into 1-based lines. Content is kept
// verbatim, blank lines included. Empty text has no lines.
func SplitLines(text string) []domain.Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]domain.Line, len(parts))
	for i, p := range parts {
		lines[i] = domain.Line{Index: i + 1, Content: p}
	}
	return lines
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
