package domain

import "time"

// Default settings values.
const (
	DefaultBaseURL           = "https://api.jobtread.com"
	DefaultAppURL            = "https://app.jobtread.com"
	DefaultMaxResultsPerType = 10
	DefaultSnippetLength     = 200
	DefaultCallTimeout       = 10 * time.Second
	DefaultRetryBackoff      = 250 * time.Millisecond
	DefaultRequestsPerSecond = 5.0
)

// Settings holds the non-secret tunables. Loaded once at startup.
type Settings struct {
	// BaseURL is the JobTread API root.
	BaseURL string `validate:"required,url"`

	// AppURL is the web app root used to build result links.
	AppURL string `validate:"required,url"`

	// MaxResultsPerType caps results returned per resource type.
	MaxResultsPerType int `validate:"gte=1,lte=100"`

	// SnippetLength is the maximum snippet length in runes.
	SnippetLength int `validate:"gte=16,lte=2000"`

	// CallTimeout bounds each upstream call.
	CallTimeout time.Duration `validate:"gt=0"`

	// RetryBackoff is the delay before the single retry of a transient failure.
	RetryBackoff time.Duration `validate:"gte=0"`

	// RequestsPerSecond throttles upstream calls.
	RequestsPerSecond float64 `validate:"gt=0"`

	// HTTPAddr is the listen address for the HTTP transport. Empty means stdio.
	HTTPAddr string
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:           DefaultBaseURL,
		AppURL:            DefaultAppURL,
		MaxResultsPerType: DefaultMaxResultsPerType,
		SnippetLength:     DefaultSnippetLength,
		CallTimeout:       DefaultCallTimeout,
		RetryBackoff:      DefaultRetryBackoff,
		RequestsPerSecond: DefaultRequestsPerSecond,
	}
}
