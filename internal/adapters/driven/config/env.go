package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

// Environment variable names.
const (
	EnvAPIKey     = "JOBTREAD_API_KEY"
	EnvOrgID      = "JOBTREAD_ORG_ID"
	EnvBaseURL    = "JOBTREAD_BASE_URL"
	EnvAppURL     = "JOBTREAD_APP_URL"
	EnvHTTPAddr   = "JOBTREAD_MCP_HTTP"
	EnvConfigPath = "JOBTREAD_MCP_CONFIG"
	EnvDebug      = "DEBUG"

	// EnvPort is the listen port set by container hosts. It selects
	// HTTP mode on all interfaces when no address is configured.
	EnvPort = "PORT"
)

// DefaultEnvFile is loaded when present and no env file is named.
const DefaultEnvFile = ".env"

// LoadEnvFile copies variables from a .env file into the process
// environment without overriding variables that are already set.
// A missing default file is not an error; a missing named file is.
func LoadEnvFile(path string) error {
	named := path != ""
	if !named {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !named && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: load env file %s: %w", domain.ErrConfig, path, err)
	}
	logger.Debug("Loaded environment from %s", path)
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
