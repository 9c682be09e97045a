package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/kraftreview/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/kraftreview/internal/adapters/outbound/source"
	"github.com/openkraft/kraftreview/internal/adapters/outbound/tui"
	"github.com/openkraft/kraftreview/internal/application"
	"github.com/openkraft/kraftreview/internal/domain"
)

func newReviewCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		revision   string
		repoPath   string
	)

	cmd := &cobra.Command{
		Use:   "review [path|-]",
		Short: "Review a source file",
		Long:  "Review a file, standard input (\"-\" or no argument), or a file as it was at a git revision.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := domain.SourceRef{Path: "-", Revision: revision, RepoPath: repoPath}
			if len(args) > 0 {
				ref.Path = args[0]
			}

			git := gitinfo.New()
			loader := source.New(cmd.InOrStdin(), git)
			svc := application.NewReviewService()

			report, err := svc.ReviewSource(cmd.Context(), loader, ref)
			if err != nil {
				return fmt.Errorf("review failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				meta := tui.ReportMeta{Source: ref.Path, Revision: ref.Revision}
				if ref.Revision == "" && !ref.IsStdin() {
					if hash, err := git.CommitHash(filepath.Dir(ref.Path)); err == nil {
						meta.CommitHash = hash
					}
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, meta))
			}

			if ciMode && report.Scores.Overall < minScore {
				return fmt.Errorf("score %d is below minimum %d", report.Scores.Overall, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the overall score is below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum overall score for CI mode")
	cmd.Flags().StringVar(&revision, "rev", "", "Review the file as it was at this git revision")
	cmd.Flags().StringVar(&repoPath, "repo", "", "Git repository for --rev (defaults to the current directory)")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report.Wire())
}
