package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/kraftreview/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706")
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	lime    = lipgloss.Color("#A3E635")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
	info    = lipgloss.Color("#8B949E")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	bodyStyle = lipgloss.NewStyle().
			Foreground(dim).
			Width(64).
			PaddingLeft(2)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	issueTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	hintTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// ReportMeta labels a rendered report with where its text came from.
type ReportMeta struct {
	Source     string
	Revision   string
	CommitHash string
}

// RenderReport formats a review report for terminal output.
func RenderReport(report *domain.Report, meta ReportMeta) string {
	var b strings.Builder

	title := headerStyle.Render("kraftreview")
	subtitle := dimStyle.Render(sourceLabel(meta))
	overall := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(report.Scores.Overall)).
		Render(fmt.Sprintf("%d / %d", report.Scores.Overall, domain.MaxScore))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + overall))
	b.WriteString("\n\n")

	renderDimension(&b, "security", report.Scores.Security)
	renderDimension(&b, "performance", report.Scores.Performance)
	renderDimension(&b, "maintainability", report.Scores.Maintainability)

	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(report.Issues) == 0 && len(report.Suggestions) == 0 {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
	} else {
		b.WriteString("  " + titleStyle.Render("Findings") + "  ")
		if n := len(report.Issues); n > 0 {
			b.WriteString(issueTagStyle.Render(plural(n, "issue")) + "  ")
		}
		if n := len(report.Suggestions); n > 0 {
			b.WriteString(hintTagStyle.Render(plural(n, "suggestion")))
		}
		b.WriteString("\n\n")

		for _, f := range report.Issues {
			fmt.Fprintf(&b, "    %s %s %s\n",
				issueTagStyle.Render("issue"),
				faintStyle.Render(fmt.Sprintf("L%-4d", f.Line)),
				dimStyle.Render(f.Message))
		}
		for _, f := range report.Suggestions {
			fmt.Fprintf(&b, "    %s %s\n", hintTagStyle.Render("hint "), dimStyle.Render(f.Message))
		}
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	b.WriteString(bodyStyle.Render(report.Explanation) + "\n\n")
	b.WriteString(bodyStyle.Render(report.AIFeedback) + "\n\n")
	return b.String()
}

func renderDimension(b *strings.Builder, name string, score int) {
	label := dimNameStyle.Render(padRight(name, 20))
	value := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%2d", score))
	fmt.Fprintf(b, "  %s %s  %s\n", label, coloredBar(score, 20), value)
}

func sourceLabel(meta ReportMeta) string {
	src := meta.Source
	if src == "" || src == "-" {
		src = "stdin"
	}
	if meta.Revision != "" {
		src += " @ " + meta.Revision
	}
	if hash := shortHash(meta.CommitHash); hash != "" {
		src += " (" + hash + ")"
	}
	return src
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/domain.MaxScore, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 9:
		return success
	case score >= 7:
		return lime
	case score >= 4:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
