package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/kraftreview/internal/application"
	"github.com/openkraft/kraftreview/internal/domain"
)

func registerTools(s *server.MCPServer, svc *application.ReviewService, loader domain.SourceLoader, projectPath string) {
	s.AddTool(
		mcplib.NewTool("kraftreview_review_code",
			mcplib.WithDescription("Review a block of source code. Returns scores, issues with line numbers, suggestions and a narrative summary as JSON"),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Source code to review"),
			),
		),
		handleReviewCode(svc),
	)

	s.AddTool(
		mcplib.NewTool("kraftreview_review_file",
			mcplib.WithDescription("Review a file from the project, optionally as it was at a git revision"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("File path, relative to the project root"),
			),
			mcplib.WithString("rev",
				mcplib.Description("Git revision to read the file at (e.g. HEAD~1, a branch or a commit hash)"),
			),
		),
		handleReviewFile(svc, loader, projectPath),
	)

	s.AddTool(
		mcplib.NewTool("kraftreview_list_rules",
			mcplib.WithDescription("List the installed review rules in evaluation order"),
		),
		handleListRules(svc),
	)
}

func handleReviewCode(svc *application.ReviewService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.ReviewCode(ctx, code)
		if err != nil {
			return errorResult(fmt.Sprintf("review failed: %v", err)), nil
		}
		return jsonResult(report.Wire())
	}
}

func handleReviewFile(svc *application.ReviewService, loader domain.SourceLoader, projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		ref := domain.SourceRef{
			Path:     path,
			Revision: request.GetString("rev", ""),
			RepoPath: projectPath,
		}
		if ref.Revision == "" && !filepath.IsAbs(path) {
			ref.Path = filepath.Join(projectPath, path)
		}

		report, err := svc.ReviewSource(ctx, loader, ref)
		if errors.Is(err, domain.ErrSourceNotFound) {
			return errorResult(fmt.Sprintf("file not found: %s", path)), nil
		}
		if err != nil {
			return errorResult(fmt.Sprintf("review failed: %v", err)), nil
		}
		return jsonResult(report.Wire())
	}
}

func handleListRules(svc *application.ReviewService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Rules())
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
