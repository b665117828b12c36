package jobtread

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/ports/driven"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

const (
	// DefaultTimeout is the hard cap on one HTTP exchange. The dispatcher
	// applies a tighter per-call deadline through the context.
	DefaultTimeout = 30 * time.Second

	// PavePath is the query endpoint below the base URL.
	PavePath = "/pave"

	// HeaderRequestID carries the per-request correlation id.
	HeaderRequestID = "X-Request-ID"

	maxBodyBytes   = 8 << 20
	maxMessageRune = 200
)

// Ensure Client implements the interface.
var _ driven.Upstream = (*Client)(nil)

// Client queries the JobTread Pave API.
type Client struct {
	http        *http.Client
	endpoint    string
	creds       domain.Credentials
	rateLimiter *RateLimiter
}

// NewClient creates a client for the given credentials.
func NewClient(creds domain.Credentials, cfg Config) (*Client, error) {
	if creds.APIKey == "" || creds.OrgID == "" {
		return nil, fmt.Errorf("%w: JobTread API key and organization id are required", domain.ErrConfig)
	}
	endpoint, err := cfg.endpoint()
	if err != nil {
		return nil, err
	}

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &Client{
		http: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.APIKey}),
				Base:   base,
			},
		},
		endpoint:    endpoint,
		creds:       creds,
		rateLimiter: NewRateLimiter(cfg.rps()),
	}, nil
}

// Search lists records of one type whose name matches query.
func (c *Client) Search(
	ctx context.Context, rt domain.ResourceType, query string, limit int,
) ([]domain.RawRecord, error) {
	res, err := lookupResource(rt)
	if err != nil {
		return nil, err
	}

	op := "search " + rt.String()
	out, err := c.do(ctx, op, searchQuery(c.creds, res, query, limit))
	if err != nil {
		return nil, err
	}

	nodes, err := extractNodes(out, res.collection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := make([]domain.RawRecord, 0, len(nodes))
	for _, n := range nodes {
		// Non-object nodes become id-less records that search skips.
		fields, _ := n.(map[string]any)
		records = append(records, domain.RawRecord{Type: rt, Fields: fields})
	}
	return records, nil
}

// Get fetches one record of the given type by id.
func (c *Client) Get(ctx context.Context, rt domain.ResourceType, id string) (*domain.RawRecord, error) {
	res, err := lookupResource(rt)
	if err != nil {
		return nil, err
	}

	op := "get " + rt.String()
	out, err := c.do(ctx, op, getQuery(c.creds, res, id))
	if err != nil {
		return nil, err
	}

	v, present := out[res.node]
	if !present {
		return nil, fmt.Errorf("%w: %s: %w: missing %q", domain.ErrUpstream, op, ErrInvalidPayload, res.node)
	}
	if v == nil {
		return nil, fmt.Errorf("%s %q: %w", op, id, domain.ErrNotFound)
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w: %q is not an object", domain.ErrUpstream, op, ErrInvalidPayload, res.node)
	}
	if !res.matches(fields) {
		logger.Debug("jobtread %s: %q exists but is not a %s", op, id, rt)
		return nil, fmt.Errorf("%s %q: %w", op, id, domain.ErrNotFound)
	}
	return &domain.RawRecord{Type: rt, Fields: fields}, nil
}

// ValidateCredentials checks the key and organisation with a minimal query.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	query := map[string]any{
		"query": map[string]any{
			"$": map[string]any{"grantKey": c.creds.APIKey},
			"organization": map[string]any{
				"$":  map[string]any{"id": c.creds.OrgID},
				"id": map[string]any{},
			},
		},
	}
	out, err := c.do(ctx, "validate credentials", query)
	if IsNotFound(err) {
		return fmt.Errorf("%w: no Pave endpoint at %s: %w", domain.ErrConfig, c.endpoint, err)
	}
	if err != nil {
		return err
	}
	if org, _ := out["organization"].(map[string]any); org == nil {
		return fmt.Errorf("%w: organization %s is not accessible", domain.ErrAuth, c.creds.OrgID)
	}
	return nil
}

// do posts a Pave query and decodes the JSON object response.
func (c *Client) do(ctx context.Context, op string, query map[string]any) (map[string]any, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("%s: encode query: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.TransientError{Err: fmt.Errorf("%w: %s: %w", domain.ErrUpstream, op, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	logger.Debug("jobtread %s: status %d in %s (request %s)", op, resp.StatusCode, time.Since(start), reqID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.TransientError{Err: fmt.Errorf("%w: %s: read body: %w", domain.ErrUpstream, op, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		retryAfter := c.rateLimiter.Observe(resp)
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
			RequestID:  reqID,
		}
		return nil, fmt.Errorf("%s: %w", op, classify(apiErr, retryAfter))
	}

	var out map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s: %w: %w", domain.ErrUpstream, op, ErrInvalidPayload, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s: %w: empty response", domain.ErrUpstream, op, ErrInvalidPayload)
	}
	return out, nil
}

// extractNodes digs organization.<collection>.nodes out of a search response.
func extractNodes(out map[string]any, collection string) ([]any, error) {
	org, ok := out["organization"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %w: missing organization", domain.ErrUpstream, ErrInvalidPayload)
	}
	coll, ok := org[collection].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %w: missing %s", domain.ErrUpstream, ErrInvalidPayload, collection)
	}
	raw, present := coll["nodes"]
	if !present {
		return nil, fmt.Errorf("%w: %w: missing %s.nodes", domain.ErrUpstream, ErrInvalidPayload, collection)
	}
	if raw == nil {
		return nil, nil
	}
	nodes, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s.nodes is not a list", domain.ErrUpstream, ErrInvalidPayload, collection)
	}
	return nodes, nil
}

// errorMessage extracts a short message from an error body.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(data, &body) == nil {
		msg = body.Message
		if msg == "" {
			msg = body.Error
		}
	} else {
		msg = string(data)
	}
	msg = strings.Join(strings.Fields(msg), " ")
	if r := []rune(msg); len(r) > maxMessageRune {
		msg = string(r[:maxMessageRune]) + "…"
	}
	return msg
}
