package jobtread

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

const (
	testAPIKey = "grant-key-secret"
	testOrgID  = "org-1"
)

// newTestClient starts a server running handler and returns a client for it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(domain.NewCredentials(testAPIKey, testOrgID), Config{
		BaseURL:           srv.URL,
		RequestsPerSecond: 1000,
	})
	require.NoError(t, err)
	return client
}

// respond writes a JSON body with the given status.
func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func decodeQuery(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	query, ok := body["query"].(map[string]any)
	require.True(t, ok, "body has no query envelope")
	return query
}

func TestNewClient(t *testing.T) {
	creds := domain.NewCredentials(testAPIKey, testOrgID)

	t.Run("uses default base url", func(t *testing.T) {
		client, err := NewClient(creds, Config{})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultBaseURL+PavePath, client.endpoint)
		assert.NotNil(t, client.rateLimiter)
	})

	t.Run("trims trailing slash", func(t *testing.T) {
		client, err := NewClient(creds, Config{BaseURL: "https://example.test/"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.test/pave", client.endpoint)
	})

	t.Run("rejects invalid base url", func(t *testing.T) {
		_, err := NewClient(creds, Config{BaseURL: "ftp://example.test"})
		assert.ErrorIs(t, err, domain.ErrConfig)
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		_, err := NewClient(domain.NewCredentials("", testOrgID), Config{})
		assert.ErrorIs(t, err, domain.ErrConfig)

		_, err = NewClient(domain.NewCredentials(testAPIKey, " "), Config{})
		assert.ErrorIs(t, err, domain.ErrConfig)
	})
}

func TestClient_Search(t *testing.T) {
	t.Run("posts scoped query and returns nodes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, PavePath, r.URL.Path)
			assert.Equal(t, "Bearer "+testAPIKey, r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get(HeaderRequestID))

			query := decodeQuery(t, r)
			assert.Equal(t, map[string]any{"grantKey": testAPIKey}, query["$"])
			org := query["organization"].(map[string]any)
			assert.Equal(t, map[string]any{"id": testOrgID}, org["$"])
			jobs := org["jobs"].(map[string]any)
			params := jobs["$"].(map[string]any)
			assert.EqualValues(t, 5, params["size"])
			assert.Equal(t, []any{"name", "like", "%kitchen%"}, params["where"])

			respond(w, http.StatusOK, `{"organization":{"jobs":{"nodes":[
				{"id":"j1","name":"Kitchen Remodel","number":42},
				{"id":"j2","name":"Kitchen Addition"}
			]}}}`)
		})

		records, err := client.Search(context.Background(), domain.ResourceProject, "kitchen", 5)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, domain.ResourceProject, records[0].Type)
		assert.Equal(t, "j1", records[0].ID())
		assert.Equal(t, "42", records[0].String("number"))
		assert.Equal(t, "j2", records[1].ID())
	})

	t.Run("customer search filters account type", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := decodeQuery(t, r)
			accounts := query["organization"].(map[string]any)["accounts"].(map[string]any)
			where := accounts["$"].(map[string]any)["where"].(map[string]any)
			assert.Equal(t, []any{
				[]any{"type", "=", "customer"},
				[]any{"name", "like", "%smith%"},
			}, where["and"])
			respond(w, http.StatusOK, `{"organization":{"accounts":{"nodes":[]}}}`)
		})

		records, err := client.Search(context.Background(), domain.ResourceCustomer, "smith", 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("null nodes is empty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"organization":{"documents":{"nodes":null}}}`)
		})

		records, err := client.Search(context.Background(), domain.ResourceDocument, "x", 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("non-object node becomes id-less record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"organization":{"jobs":{"nodes":["oops",{"id":"j1"}]}}}`)
		})

		records, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Empty(t, records[0].ID())
		assert.Equal(t, "j1", records[1].ID())
	})

	t.Run("missing collection is invalid payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"organization":{}}`)
		})

		_, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.ErrorIs(t, err, ErrInvalidPayload)
		assert.False(t, domain.IsTransient(err))
	})

	t.Run("undecodable body is invalid payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `<html>nope</html>`)
		})

		_, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("unknown type is invalid input", func(t *testing.T) {
		client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Fatal("no request expected")
		})

		_, err := client.Search(context.Background(), domain.ResourceType("invoice"), "x", 10)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("returns record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := decodeQuery(t, r)
			doc := query["document"].(map[string]any)
			assert.Equal(t, map[string]any{"id": "d1"}, doc["$"])
			respond(w, http.StatusOK, `{"document":{"id":"d1","name":"Estimate","price":1250.5}}`)
		})

		rec, err := client.Get(context.Background(), domain.ResourceDocument, "d1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, domain.ResourceDocument, rec.Type)
		assert.Equal(t, "d1", rec.ID())
		assert.Equal(t, "1250.5", rec.String("price"))
	})

	t.Run("null node is not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"job":null}`)
		})

		_, err := client.Get(context.Background(), domain.ResourceProject, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("404 is not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusNotFound, `{"message":"no such job"}`)
		})

		_, err := client.Get(context.Background(), domain.ResourceProject, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.True(t, IsNotFound(err))
	})

	t.Run("missing node is invalid payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{}`)
		})

		_, err := client.Get(context.Background(), domain.ResourceCustomer, "a1")
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("customer account", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"account":{"id":"acc_1","name":"Jane Smith","type":"customer"}}`)
		})

		rec, err := client.Get(context.Background(), domain.ResourceCustomer, "acc_1")
		require.NoError(t, err)
		assert.Equal(t, "acc_1", rec.ID())
	})

	t.Run("vendor account is not a customer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"account":{"id":"acc_v1","name":"Acme Lumber","type":"vendor"}}`)
		})

		rec, err := client.Get(context.Background(), domain.ResourceCustomer, "acc_v1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, rec)
	})

	t.Run("account without type is not a customer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"account":{"id":"acc_2","name":"Unknown"}}`)
		})

		_, err := client.Get(context.Background(), domain.ResourceCustomer, "acc_2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("non-object node is invalid payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"account":"a1"}`)
		})

		_, err := client.Get(context.Background(), domain.ResourceCustomer, "a1")
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("unauthorized is auth error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusUnauthorized, `{"message":"invalid grant key"}`)
		})

		_, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
		assert.ErrorIs(t, err, domain.ErrAuth)
		assert.True(t, IsUnauthorized(err))
		assert.False(t, domain.IsTransient(err))
		assert.Contains(t, err.Error(), "invalid grant key")
	})

	t.Run("forbidden is auth error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusForbidden, `{"error":"no access"}`)
		})

		_, err := client.Get(context.Background(), domain.ResourceProject, "j1")
		assert.ErrorIs(t, err, domain.ErrAuth)
		assert.True(t, IsForbidden(err))
	})

	t.Run("server error is transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusServiceUnavailable, `down`)
		})

		_, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.True(t, domain.IsTransient(err))
	})

	t.Run("bad request is not transient", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusBadRequest, `{"message":"bad where"}`)
		})

		_, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.False(t, domain.IsTransient(err))
	})

	t.Run("rate limit is transient and blocks", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(HeaderRetryAfter, "2")
			respond(w, http.StatusTooManyRequests, `{}`)
		})

		before := time.Now()
		_, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
		assert.True(t, domain.IsTransient(err))
		assert.True(t, IsRateLimited(err))
		assert.True(t, client.rateLimiter.BlockedUntil().After(before.Add(time.Second)))
	})

	t.Run("network failure is transient", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client, err := NewClient(domain.NewCredentials(testAPIKey, testOrgID), Config{
			BaseURL:           srv.URL,
			RequestsPerSecond: 1000,
		})
		require.NoError(t, err)

		_, err = client.Search(context.Background(), domain.ResourceProject, "x", 10)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.True(t, domain.IsTransient(err))
	})

	t.Run("cancelled context returns context error", func(t *testing.T) {
		client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Search(ctx, domain.ResourceProject, "x", 10)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_RequestIDUnique(t *testing.T) {
	var first atomic.Value
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if calls.Add(1) == 1 {
			first.Store(id)
		} else {
			assert.NotEqual(t, first.Load(), id)
		}
		respond(w, http.StatusOK, `{"job":{"id":"j1"}}`)
	})

	for range 2 {
		_, err := client.Get(context.Background(), domain.ResourceProject, "j1")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotLogAPIKey(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusUnauthorized, `{"message":"denied"}`)
	})

	_, err := client.Search(context.Background(), domain.ResourceProject, "x", 10)
	require.Error(t, err)
	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), testAPIKey)
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestClient_ValidateCredentials(t *testing.T) {
	t.Run("accessible organization", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"organization":{"id":"org-1"}}`)
		})
		assert.NoError(t, client.ValidateCredentials(context.Background()))
	})

	t.Run("null organization is auth error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusOK, `{"organization":null}`)
		})
		assert.ErrorIs(t, client.ValidateCredentials(context.Background()), domain.ErrAuth)
	})

	t.Run("rejected key is auth error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusUnauthorized, ``)
		})
		assert.ErrorIs(t, client.ValidateCredentials(context.Background()), domain.ErrAuth)
	})

	t.Run("missing endpoint is config error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(w, http.StatusNotFound, `not found`)
		})
		err := client.ValidateCredentials(context.Background())
		assert.ErrorIs(t, err, domain.ErrConfig)
		assert.True(t, IsNotFound(err))
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", errorMessage([]byte(`{"message":"boom"}`)))
	assert.Equal(t, "nope", errorMessage([]byte(`{"error":"nope"}`)))
	assert.Equal(t, "plain text body", errorMessage([]byte("plain   text\nbody")))
	assert.Empty(t, errorMessage(nil))

	long := errorMessage([]byte(strings.Repeat("a", 500)))
	assert.Equal(t, maxMessageRune+1, len([]rune(long)))
	assert.True(t, strings.HasSuffix(long, "…"))
}
