package driven

//go:generate mockgen -source=upstream.go -destination=mock_driven/mock_upstream.go -package=mock_driven

import (
	"context"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// Upstream issues authenticated calls to the construction-management API.
// Implementations own transport concerns (auth, throttling, decoding) and
// report failures as domain errors:
//
//   - domain.ErrAuth for rejected credentials
//   - domain.ErrNotFound when Get matches nothing
//   - domain.ErrUpstream for everything else, wrapped in
//     *domain.TransientError when a retry may succeed
type Upstream interface {
	// Search returns up to limit records of the given type matching query,
	// in upstream relevance order.
	Search(ctx context.Context, rt domain.ResourceType, query string, limit int) ([]domain.RawRecord, error)

	// Get returns the record of the given type with the given id.
	Get(ctx context.Context, rt domain.ResourceType, id string) (*domain.RawRecord, error)
}
