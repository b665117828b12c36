package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

const (
	// uriScheme is the URI scheme for JobTread item resources.
	uriScheme = "jobtread://"

	markdownMIME = "text/markdown"
)

// ItemURI returns the resource URI for an item.
func ItemURI(rt domain.ResourceType, id string) string {
	return uriScheme + rt.String() + "/" + url.PathEscape(id)
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "{type}/{id}",
		Name:        "item",
		Description: "Full details of a project, customer or document as Markdown",
		MIMEType:    markdownMIME,
	}, s.handleItemResource)
}

// handleItemResource returns the fetched content of one item.
func (s *Server) handleItemResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	rt, id, ok := parseItemURI(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	res, err := s.ports.Query.Fetch(ctx, domain.FetchRequest{ID: id, Type: &rt})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("fetching %s: %w", req.Params.URI, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: markdownMIME,
			Text:     res.Content,
		}},
	}, nil
}

// parseItemURI splits a URI like jobtread://project/{id}.
func parseItemURI(uri string) (domain.ResourceType, string, bool) {
	rest, found := strings.CutPrefix(uri, uriScheme)
	if !found {
		return "", "", false
	}

	kind, escaped, found := strings.Cut(rest, "/")
	if !found {
		return "", "", false
	}

	rt, err := domain.ParseResourceType(kind)
	if err != nil {
		return "", "", false
	}

	id, err := url.PathUnescape(escaped)
	if err != nil || strings.TrimSpace(id) == "" {
		return "", "", false
	}
	return rt, id, true
}
