package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

// Tool names.
const (
	ToolSearch = "search"
	ToolFetch  = "fetch"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"free-text query matched against project, customer and document names"`
	Type  string `json:"type,omitempty" jsonschema:"restrict results to one type: project, customer or document"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum results per type (default from server settings)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchHit `json:"results"`
	Count   int         `json:"count"`
}

// SearchHit is a search result plus the URI of its item resource.
type SearchHit struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Snippet    string              `json:"snippet"`
	SourceType domain.ResourceType `json:"source_type"`
	URL        string              `json:"url"`
	Resource   string              `json:"resource" jsonschema:"URI readable as an MCP resource"`
}

// FetchInput is the input schema for the fetch tool.
type FetchInput struct {
	ID   string `json:"id" jsonschema:"id of an item returned by search"`
	Type string `json:"type,omitempty" jsonschema:"type of the item when known: project, customer or document"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	search := &mcp.Tool{
		Name:        ToolSearch,
		Description: "Search construction projects, customers, and documents",
	}
	mcp.AddTool(s.server, search, s.handleSearch)

	fetch := &mcp.Tool{
		Name:        ToolFetch,
		Description: "Fetch detailed information about a specific construction item",
	}
	mcp.AddTool(s.server, fetch, s.handleFetch)

	s.tools = []*mcp.Tool{search, fetch}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	rt, err := parseType(input.Type)
	if err != nil {
		return nil, SearchOutput{}, toolError(err)
	}

	results, err := s.ports.Query.Search(ctx, domain.SearchQuery{
		Text:  input.Query,
		Type:  rt,
		Limit: input.Limit,
	})
	if err != nil {
		logger.Debug("search tool: %v", err)
		return nil, SearchOutput{}, toolError(err)
	}

	hits := make([]SearchHit, len(results))
	for i, r := range results {
		hits[i] = SearchHit{
			ID:         r.ID,
			Title:      r.Title,
			Snippet:    r.Snippet,
			SourceType: r.SourceType,
			URL:        r.URL,
			Resource:   ItemURI(r.SourceType, r.ID),
		}
	}
	return nil, SearchOutput{Results: hits, Count: len(hits)}, nil
}

// handleFetch handles the fetch tool invocation.
func (s *Server) handleFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, domain.FetchResult, error) {
	rt, err := parseType(input.Type)
	if err != nil {
		return nil, domain.FetchResult{}, toolError(err)
	}

	res, err := s.ports.Query.Fetch(ctx, domain.FetchRequest{ID: input.ID, Type: rt})
	if err != nil {
		logger.Debug("fetch tool: %v", err)
		return nil, domain.FetchResult{}, toolError(err)
	}

	if res.Metadata == nil {
		res.Metadata = map[string]string{}
	}
	return nil, res, nil
}

// parseType converts an optional type argument. Empty means all types.
func parseType(s string) (*domain.ResourceType, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	rt, err := domain.ParseResourceType(s)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}
