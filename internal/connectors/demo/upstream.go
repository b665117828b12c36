package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/ports/driven"
)

// Ensure Upstream implements the interface.
var _ driven.Upstream = (*Upstream)(nil)

// Upstream serves the sample records from memory. It is read-only and
// safe for concurrent use.
type Upstream struct {
	records []domain.RawRecord
}

// New creates an upstream over the sample records.
func New() *Upstream {
	return &Upstream{records: fixtures()}
}

// Search returns records of type rt with any text field containing query,
// ignoring case.
func (u *Upstream) Search(
	ctx context.Context, rt domain.ResourceType, query string, limit int,
) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.RawRecord, 0)
	for _, rec := range u.records {
		if limit > 0 && len(out) >= limit {
			break
		}
		if rec.Type == rt && contains(rec.Fields, needle) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Get returns the record of type rt with the given id.
func (u *Upstream) Get(ctx context.Context, rt domain.ResourceType, id string) (*domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, rec := range u.records {
		if rec.Type == rt && rec.ID() == id {
			r := rec
			return &r, nil
		}
	}
	return nil, fmt.Errorf("demo %s %q: %w", rt, id, domain.ErrNotFound)
}

// contains reports whether any scalar under v contains needle.
func contains(v any, needle string) bool {
	switch t := v.(type) {
	case map[string]any:
		for _, sub := range t {
			if contains(sub, needle) {
				return true
			}
		}
	case []any:
		for _, sub := range t {
			if contains(sub, needle) {
				return true
			}
		}
	case nil:
	default:
		return strings.Contains(strings.ToLower(fmt.Sprint(t)), needle)
	}
	return false
}
