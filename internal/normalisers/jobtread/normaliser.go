package jobtread

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser maps JobTread records onto search and fetch results.
type Normaliser struct {
	appURL        string
	snippetLength int
}

// New creates a normaliser. appURL is the web app root used for links.
func New(appURL string, snippetLength int) *Normaliser {
	if snippetLength <= 0 {
		snippetLength = domain.DefaultSnippetLength
	}
	return &Normaliser{
		appURL:        strings.TrimRight(appURL, "/"),
		snippetLength: snippetLength,
	}
}

// SearchResult builds a search hit from a raw record.
func (n *Normaliser) SearchResult(raw domain.RawRecord) (domain.SearchResult, error) {
	sc, id, err := n.prepare(raw)
	if err != nil {
		return domain.SearchResult{}, err
	}

	parts := make([]string, 0, len(sc.snippet))
	for _, f := range sc.snippet {
		v := collapse(raw.String(f.path))
		if v == "" {
			continue
		}
		if f.label != "" {
			v = f.label + ": " + v
		}
		parts = append(parts, v)
	}

	return domain.SearchResult{
		ID:         id,
		Title:      title(sc, raw),
		Snippet:    truncate(strings.Join(parts, " | "), n.snippetLength),
		SourceType: raw.Type,
		URL:        n.url(sc, id),
	}, nil
}

// FetchResult builds the full content of a raw record.
func (n *Normaliser) FetchResult(raw domain.RawRecord) (domain.FetchResult, error) {
	sc, id, err := n.prepare(raw)
	if err != nil {
		return domain.FetchResult{}, err
	}

	t := title(sc, raw)
	meta := make(map[string]string, len(sc.metadata))

	var sb strings.Builder
	if t != "" {
		sb.WriteString(fmt.Sprintf("# %s\n\n", t))
	}

	sb.WriteString("## Overview\n\n")
	sb.WriteString(fmt.Sprintf("- **Type:** %s\n", titleCase(raw.Type.String())))
	for _, f := range sc.metadata {
		v := strings.TrimSpace(raw.String(f.path))
		meta[f.key] = v
		if v != "" {
			sb.WriteString(fmt.Sprintf("- **%s:** %s\n", f.label, v))
		}
	}
	sb.WriteString("\n## Details\n\n")
	if desc := strings.TrimSpace(raw.String(sc.description)); desc != "" {
		sb.WriteString(desc)
	} else {
		sb.WriteString("*No description provided.*")
	}
	sb.WriteString("\n")

	return domain.FetchResult{
		ID:         id,
		Title:      t,
		Content:    sb.String(),
		URL:        n.url(sc, id),
		SourceType: raw.Type,
		Metadata:   meta,
	}, nil
}

// prepare resolves the schema and the record id.
func (n *Normaliser) prepare(raw domain.RawRecord) (schema, string, error) {
	sc, ok := schemas[raw.Type]
	if !ok {
		return schema{}, "", fmt.Errorf("%w: unknown resource type %q", domain.ErrInvalidInput, raw.Type)
	}
	id := raw.ID()
	if id == "" {
		return schema{}, "", fmt.Errorf("%w: %s record has no id", domain.ErrMalformedRecord, raw.Type)
	}
	return sc, id, nil
}

func (n *Normaliser) url(sc schema, id string) string {
	return n.appURL + "/" + sc.urlSegment + "/" + url.PathEscape(id)
}

// title joins the record name with its number, e.g. "Kitchen Remodel #1042".
func title(sc schema, raw domain.RawRecord) string {
	name := collapse(raw.String(sc.titlePath))
	if sc.numberPath == "" {
		return name
	}
	if num := strings.TrimSpace(raw.String(sc.numberPath)); num != "" {
		return strings.TrimSpace(name + " #" + num)
	}
	return name
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
