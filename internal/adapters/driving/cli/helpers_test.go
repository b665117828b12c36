package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vinodesignbuild/jobtread-mcp/internal/adapters/driven/config"
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

// setupTestServices injects a mock query service with sample data.
func setupTestServices() (*mockQueryService, func()) {
	mock := &mockQueryService{
		results: []domain.SearchResult{
			{
				ID:         "j1",
				Title:      "Kitchen Remodel #42",
				Snippet:    "New cabinets | Status: Active",
				SourceType: domain.ResourceProject,
				URL:        "https://app.jobtread.com/jobs/j1",
			},
			{
				ID:         "c1",
				Title:      "John Smith",
				SourceType: domain.ResourceCustomer,
				URL:        "https://app.jobtread.com/customers/c1",
			},
		},
		fetched: domain.FetchResult{
			ID:         "j1",
			Title:      "Kitchen Remodel #42",
			Content:    "# Kitchen Remodel #42\n\n## Details\n\nNew cabinets\n",
			URL:        "https://app.jobtread.com/jobs/j1",
			SourceType: domain.ResourceProject,
			Metadata:   map[string]string{"status": "Active", "number": "42", "customer": ""},
		},
	}

	queryService = mock
	return mock, resetServices
}

// resetServices clears wired services and global flag state.
func resetServices() {
	queryService = nil
	verifyCredentials = nil
	settings = domain.DefaultSettings()
	demoMode = false
	verbose = false
	configPath = ""
	envFile = ""
	searchType = ""
	searchLimit = 0
	searchJSON = false
	fetchType = ""
	fetchJSON = false
	serveHTTP = ""
	serveSkipVerify = false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// isolateEnv clears configuration sources so tests see defaults only.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{
		config.EnvAPIKey, config.EnvOrgID, config.EnvConfigPath,
		config.EnvBaseURL, config.EnvAppURL, config.EnvHTTPAddr, config.EnvPort, config.EnvDebug,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Chdir(t.TempDir())
}
