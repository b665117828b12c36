package driven

import (
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// Normaliser maps raw upstream records into uniform results.
// Both methods are pure. They substitute empty strings for missing
// optional fields and fail with domain.ErrMalformedRecord only when
// the record has no id.
type Normaliser interface {
	// SearchResult builds a search hit with a truncated snippet.
	SearchResult(raw domain.RawRecord) (domain.SearchResult, error)

	// FetchResult builds the full content and metadata of a record.
	FetchResult(raw domain.RawRecord) (domain.FetchResult, error)
}
