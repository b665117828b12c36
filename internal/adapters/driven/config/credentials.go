package config

import (
	"github.com/rusq/osenv/v2"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

var credentialNames = map[string]string{
	"APIKey": EnvAPIKey,
	"OrgID":  EnvOrgID,
}

// LoadCredentials reads the JobTread credentials from the environment.
// The API key variable is removed from the environment once read so it
// does not leak into child processes.
func LoadCredentials() (domain.Credentials, error) {
	creds := domain.NewCredentials(
		osenv.Secret(EnvAPIKey, ""),
		osenv.Value(EnvOrgID, ""),
	)
	if err := check(creds, credentialNames); err != nil {
		return domain.Credentials{}, err
	}
	return creds, nil
}
