package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

const uriScheme = "ecourts://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "jurisdictions",
		Name:        "jurisdictions",
		Description: "States, districts and court complexes with cause lists",
		MIMEType:    "application/json",
	}, s.handleJurisdictionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "tasks/{taskId}",
		Name:        "task",
		Description: "Status and result of a retrieval task",
		MIMEType:    "application/json",
	}, s.handleTaskResource)
}

func taskURI(id string) string {
	return uriScheme + "tasks/" + id
}

func jsonContents(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleJurisdictionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonContents(req.Params.URI, s.ports.CauseLists.Jurisdictions())
}

func (s *Server) handleTaskResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractTaskID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	task, err := s.ports.Tasks.Get(id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading task: %w", err)
	}
	return jsonContents(req.Params.URI, task)
}

// extractTaskID extracts the id from a URI like ecourts://tasks/{taskId}.
func extractTaskID(uri string) string {
	const prefix = uriScheme + "tasks/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
