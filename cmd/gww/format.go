package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	subjectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	authorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	timestampStyle = lipgloss.NewStyle().Faint(true)
)

func sourceTag(source branchSource) string {
	switch source {
	case sourceWorktree:
		return "T"
	case sourceLocal:
		return "L"
	default:
		return "R"
	}
}

// formatBranchItem renders one picker row: a source tag with a
// current-branch marker, the name, then quoted subject, author and
// timestamp label.
func formatBranchItem(candidate branchCandidate, colored bool) string {
	marker := " "
	if candidate.IsCurrent {
		marker = "*"
	}
	tag := fmt.Sprintf("[%s%s]", sourceTag(candidate.Source), marker)

	subject := fmt.Sprintf("%q", candidate.Summary.Subject)
	author := fmt.Sprintf("[%s]", candidate.Summary.Author)
	timestamp := fmt.Sprintf("(%s)", candidate.Summary.TimestampLabel)

	if colored {
		return fmt.Sprintf("%s %s %s %s %s",
			tagStyle.Render(tag),
			candidate.Name,
			subjectStyle.Render(subject),
			authorStyle.Render(author),
			timestampStyle.Render(timestamp),
		)
	}
	return fmt.Sprintf("%-4s %s %s %s %s", tag, candidate.Name, subject, author, timestamp)
}

func candidatePickerItems(candidates []branchCandidate, colored bool) []pickerItem {
	items := make([]pickerItem, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, pickerItem{
			Label:  formatBranchItem(candidate, colored),
			Filter: candidate.Name,
		})
	}
	return items
}
