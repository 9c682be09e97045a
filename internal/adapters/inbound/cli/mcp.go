package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/openkraft/kraftreview/internal/adapters/inbound/mcp"
	"github.com/openkraft/kraftreview/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/kraftreview/internal/adapters/outbound/source"
	"github.com/openkraft/kraftreview/internal/application"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the kraftreview MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start kraftreview MCP server (stdio)",
		Long:  "Start the kraftreview MCP server using stdio transport. This lets AI coding assistants review code snippets and project files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			// stdin carries the MCP transport, so the loader gets none.
			loader := source.New(nil, gitinfo.New())
			s := mcpadapter.NewKraftReviewMCPServer(application.NewReviewService(), loader, projectPath, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
