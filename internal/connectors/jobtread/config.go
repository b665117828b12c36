package jobtread

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// Config holds the transport settings for a Client.
type Config struct {
	// BaseURL is the API root. Default: domain.DefaultBaseURL.
	BaseURL string

	// RequestsPerSecond throttles calls. Default: domain.DefaultRequestsPerSecond.
	RequestsPerSecond float64

	// Transport is the base round tripper. Default: http.DefaultTransport.
	Transport http.RoundTripper
}

// endpoint returns the Pave endpoint URL for the configured base.
func (c Config) endpoint() (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = domain.DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid JobTread base URL %q", domain.ErrConfig, c.BaseURL)
	}
	return base + PavePath, nil
}

func (c Config) rps() float64 {
	if c.RequestsPerSecond <= 0 {
		return domain.DefaultRequestsPerSecond
	}
	return c.RequestsPerSecond
}
