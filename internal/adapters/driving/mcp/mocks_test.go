package mcp

import (
	"context"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	results []domain.SearchResult
	fetched domain.FetchResult
	err     error

	lastQuery domain.SearchQuery
	lastFetch domain.FetchRequest
}

func (m *mockQueryService) Search(_ context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	m.lastQuery = q
	return m.results, m.err
}

func (m *mockQueryService) Fetch(_ context.Context, req domain.FetchRequest) (domain.FetchResult, error) {
	m.lastFetch = req
	return m.fetched, m.err
}
