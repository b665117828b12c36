package domain

import (
	"fmt"
	"strings"
)

// SearchQuery is a free-text query with an optional resource type filter.
type SearchQuery struct {
	// Text is the free-text query. Must be non-empty after trimming.
	Text string

	// Type restricts the search to one resource type. Nil means all types.
	Type *ResourceType

	// Limit caps results per resource type. Zero uses the configured default.
	Limit int
}

// Validate checks the query invariants.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: query text is empty", ErrInvalidInput)
	}
	if q.Type != nil && !q.Type.IsValid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, *q.Type)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidInput, q.Limit)
	}
	return nil
}

// Types returns the resource types the query fans out to, in canonical order.
func (q SearchQuery) Types() []ResourceType {
	if q.Type != nil {
		return []ResourceType{*q.Type}
	}
	return AllResourceTypes()
}

// SearchResult is a single normalised search hit.
type SearchResult struct {
	// ID is opaque and unique within the upstream system.
	ID string `json:"id"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// Snippet is a truncated preview of the record.
	Snippet string `json:"snippet"`

	// SourceType is the resource type the hit came from.
	SourceType ResourceType `json:"source_type"`

	// URL links to the record in the JobTread web app.
	URL string `json:"url"`
}

// FetchRequest asks for the full content of one record.
type FetchRequest struct {
	// ID must match a prior SearchResult.ID.
	ID string

	// Type narrows resolution to one resource type. Nil tries all types.
	Type *ResourceType
}

// Validate checks the request invariants.
func (r FetchRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidInput)
	}
	if r.Type != nil && !r.Type.IsValid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, *r.Type)
	}
	return nil
}

// Types returns the resource types queried to resolve the id.
func (r FetchRequest) Types() []ResourceType {
	if r.Type != nil {
		return []ResourceType{*r.Type}
	}
	return AllResourceTypes()
}

// FetchResult is the full normalised content of one record.
type FetchResult struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"text"`
	URL        string            `json:"url"`
	SourceType ResourceType      `json:"source_type"`
	Metadata   map[string]string `json:"metadata"`
}
