package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

func clearCredentials(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIKey, EnvOrgID} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Run("reads and trims", func(t *testing.T) {
		clearCredentials(t)
		t.Setenv(EnvAPIKey, "  key-123 ")
		t.Setenv(EnvOrgID, "org-9")

		creds, err := LoadCredentials()

		require.NoError(t, err)
		assert.Equal(t, "key-123", creds.APIKey)
		assert.Equal(t, "org-9", creds.OrgID)
	})

	t.Run("removes key from environment", func(t *testing.T) {
		clearCredentials(t)
		t.Setenv(EnvAPIKey, "key-123")
		t.Setenv(EnvOrgID, "org-9")

		_, err := LoadCredentials()
		require.NoError(t, err)

		_, present := os.LookupEnv(EnvAPIKey)
		assert.False(t, present)
	})

	t.Run("missing key", func(t *testing.T) {
		clearCredentials(t)
		t.Setenv(EnvOrgID, "org-9")

		_, err := LoadCredentials()

		assert.ErrorIs(t, err, domain.ErrConfig)
		assert.Contains(t, err.Error(), EnvAPIKey+" is required")
	})

	t.Run("reports every missing variable", func(t *testing.T) {
		clearCredentials(t)

		_, err := LoadCredentials()

		require.ErrorIs(t, err, domain.ErrConfig)
		assert.Contains(t, err.Error(), EnvAPIKey)
		assert.Contains(t, err.Error(), EnvOrgID)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("loads named file without overriding", func(t *testing.T) {
		clearCredentials(t)
		t.Setenv(EnvOrgID, "from-env")
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path,
			[]byte(EnvAPIKey+"=from-file\n"+EnvOrgID+"=also-from-file\n"), 0o600))

		require.NoError(t, LoadEnvFile(path))

		assert.Equal(t, "from-file", os.Getenv(EnvAPIKey))
		assert.Equal(t, "from-env", os.Getenv(EnvOrgID))
	})

	t.Run("missing named file is an error", func(t *testing.T) {
		err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, domain.ErrConfig)
	})

	t.Run("missing default file is ignored", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.NoError(t, LoadEnvFile(""))
	})
}
