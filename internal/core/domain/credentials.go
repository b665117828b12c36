package domain

import (
	"fmt"
	"strings"
)

// Credentials authenticate calls to the JobTread API.
// Built once at startup and never mutated; the key is never logged.
type Credentials struct {
	// APIKey is the JobTread grant key.
	APIKey string `validate:"required"`

	// OrgID is the JobTread organisation the key is scoped to.
	OrgID string `validate:"required"`
}

// NewCredentials returns trimmed credentials.
func NewCredentials(apiKey, orgID string) Credentials {
	return Credentials{
		APIKey: strings.TrimSpace(apiKey),
		OrgID:  strings.TrimSpace(orgID),
	}
}

// String redacts the API key.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey: %s, OrgID: %s}", redact(c.APIKey), c.OrgID)
}

// GoString redacts the API key for %#v.
func (c Credentials) GoString() string {
	return c.String()
}

func redact(secret string) string {
	if secret == "" {
		return "<empty>"
	}
	return "<redacted>"
}
