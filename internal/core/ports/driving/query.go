package driving

import (
	"context"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// QueryService dispatches search and fetch tool calls to the upstream.
type QueryService interface {
	// Search fans the query out to the requested resource types and returns
	// results grouped in canonical type order. No matches is not an error.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)

	// Fetch resolves an id to exactly one record and returns its full content.
	Fetch(ctx context.Context, req domain.FetchRequest) (domain.FetchResult, error)
}
