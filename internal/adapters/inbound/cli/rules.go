package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/openkraft/kraftreview/internal/adapters/outbound/tui"
	"github.com/openkraft/kraftreview/internal/application"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the installed review rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := application.NewReviewService().Rules()
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rules)
			}
			tui.RenderRules(cmd.OutOrStdout(), rules)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")

	return cmd
}
