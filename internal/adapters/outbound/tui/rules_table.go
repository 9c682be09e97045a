package tui

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/openkraft/kraftreview/internal/domain"
)

// RenderRules writes the installed rules as a plain table.
func RenderRules(w io.Writer, rules []domain.RuleInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Rule", "ID", "Description"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetColumnSeparator(" ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for i, r := range rules {
		table.Append([]string{strconv.Itoa(i + 1), r.Name, r.ID, r.Description})
	}
	table.Render()
}

