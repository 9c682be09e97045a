package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/kraftreview/internal/application"
	"github.com/openkraft/kraftreview/internal/domain"
)

// NewKraftReviewMCPServer creates an MCP server exposing the review tools
// and resources. Relative file paths resolve against projectPath.
func NewKraftReviewMCPServer(svc *application.ReviewService, loader domain.SourceLoader, projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"kraftreview",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, loader, projectPath)
	registerResources(s, svc)

	return s
}
