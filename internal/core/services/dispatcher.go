package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/ports/driven"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/ports/driving"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.QueryService = (*Dispatcher)(nil)

// Dispatcher routes search and fetch calls to the upstream and normaliser.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	upstream   driven.Upstream
	normaliser driven.Normaliser
	maxResults int
	policy     callPolicy
}

// NewDispatcher creates a dispatcher. Zero settings fall back to defaults.
func NewDispatcher(upstream driven.Upstream, normaliser driven.Normaliser, settings domain.Settings) *Dispatcher {
	defaults := domain.DefaultSettings()
	if settings.MaxResultsPerType <= 0 {
		settings.MaxResultsPerType = defaults.MaxResultsPerType
	}
	if settings.CallTimeout <= 0 {
		settings.CallTimeout = defaults.CallTimeout
	}
	if settings.RetryBackoff < 0 {
		settings.RetryBackoff = defaults.RetryBackoff
	}
	return &Dispatcher{
		upstream:   upstream,
		normaliser: normaliser,
		maxResults: settings.MaxResultsPerType,
		policy: callPolicy{
			timeout: settings.CallTimeout,
			backoff: settings.RetryBackoff,
		},
	}
}

// Search fans the query out to the requested resource types concurrently.
// Results keep upstream order within a type and are grouped in canonical
// type order across types. Records without an id are skipped.
func (d *Dispatcher) Search(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	logger.Section("Search")
	if err := q.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(q.Text)
	limit := d.limit(q.Limit)
	types := q.Types()
	logger.Debug("Query: %q, types: %v, limit per type: %d", text, types, limit)

	groups := make([][]domain.SearchResult, len(types))
	g, gctx := errgroup.WithContext(ctx)
	for i, rt := range types {
		g.Go(func() error {
			var records []domain.RawRecord
			err := d.policy.do(gctx, "search "+rt.String(), func(cctx context.Context) error {
				var err error
				records, err = d.upstream.Search(cctx, rt, text, limit)
				return err
			})
			if errors.Is(err, domain.ErrNotFound) {
				logger.Debug("search %s: upstream reported no matches", rt)
				return nil
			}
			if err != nil {
				return fmt.Errorf("search %s: %w", rt, err)
			}
			groups[i] = d.searchResults(rt, records, limit)
			logger.Debug("search %s: %d records, %d results", rt, len(records), len(groups[i]))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("search: %w", ctx.Err())
		}
		logger.Warn("Search failed: %v", err)
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("search: %w", ctx.Err())
	}

	total := 0
	for _, grp := range groups {
		total += len(grp)
	}
	results := make([]domain.SearchResult, 0, total)
	for _, grp := range groups {
		results = append(results, grp...)
	}
	slices.SortStableFunc(results, func(a, b domain.SearchResult) int {
		return cmp.Compare(a.SourceType.Rank(), b.SourceType.Rank())
	})
	logger.Info("Search %q: %d results", text, len(results))
	return results, nil
}

// Fetch resolves an id to exactly one record. Without a type hint every
// resource type is queried concurrently.
func (d *Dispatcher) Fetch(ctx context.Context, req domain.FetchRequest) (domain.FetchResult, error) {
	logger.Section("Fetch")
	if err := req.Validate(); err != nil {
		return domain.FetchResult{}, err
	}

	id := strings.TrimSpace(req.ID)
	types := req.Types()
	logger.Debug("ID: %q, types: %v", id, types)

	found := make([]*domain.RawRecord, len(types))
	g, gctx := errgroup.WithContext(ctx)
	for i, rt := range types {
		g.Go(func() error {
			var rec *domain.RawRecord
			err := d.policy.do(gctx, "fetch "+rt.String(), func(cctx context.Context) error {
				var err error
				rec, err = d.upstream.Get(cctx, rt, id)
				return err
			})
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return nil
			case err != nil:
				return fmt.Errorf("fetch %s %q: %w", rt, id, err)
			case rec == nil:
				return nil
			}
			r := *rec
			r.Type = rt
			found[i] = &r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return domain.FetchResult{}, fmt.Errorf("fetch: %w", ctx.Err())
		}
		logger.Warn("Fetch failed: %v", err)
		return domain.FetchResult{}, err
	}
	if ctx.Err() != nil {
		return domain.FetchResult{}, fmt.Errorf("fetch: %w", ctx.Err())
	}

	var matches []*domain.RawRecord
	for _, rec := range found {
		if rec != nil {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 0:
		return domain.FetchResult{}, fmt.Errorf("fetch %q: %w", id, domain.ErrNotFound)
	case 1:
		res, err := d.normaliser.FetchResult(*matches[0])
		if err != nil {
			return domain.FetchResult{}, fmt.Errorf("fetch %q: %w", id, err)
		}
		logger.Info("Fetch %q: resolved as %s", id, res.SourceType)
		return res, nil
	default:
		kinds := make([]string, len(matches))
		for i, rec := range matches {
			kinds[i] = rec.Type.String()
		}
		return domain.FetchResult{}, fmt.Errorf("fetch %q: %w: matches %s",
			id, domain.ErrAmbiguousID, strings.Join(kinds, ", "))
	}
}

// searchResults normalises one type's records, skipping malformed ones.
func (d *Dispatcher) searchResults(rt domain.ResourceType, records []domain.RawRecord, limit int) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, min(len(records), limit))
	for i := range records {
		if len(results) == limit {
			break
		}
		raw := records[i]
		raw.Type = rt
		res, err := d.normaliser.SearchResult(raw)
		if err != nil {
			logger.Warn("search %s: skipping record %d: %v", rt, i, err)
			continue
		}
		results = append(results, res)
	}
	return results
}

func (d *Dispatcher) limit(requested int) int {
	if requested <= 0 || requested > d.maxResults {
		return d.maxResults
	}
	return requested
}
