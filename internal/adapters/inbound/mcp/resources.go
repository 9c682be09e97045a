package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/kraftreview/internal/application"
)

const rulesURI = "kraftreview://rules"

func registerResources(s *server.MCPServer, svc *application.ReviewService) {
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Review Rules",
			mcplib.WithResourceDescription("Installed review rules in evaluation order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(svc),
	)
}

func handleRulesResource(svc *application.ReviewService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(svc.Rules(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      rulesURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
