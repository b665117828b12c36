package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rusq/osenv/v2"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

const (
	appDir       = "jobtread-mcp"
	settingsFile = "config.toml"
)

var settingNames = map[string]string{
	"BaseURL":           "base_url",
	"AppURL":            "app_url",
	"MaxResultsPerType": "max_results_per_type",
	"SnippetLength":     "snippet_length",
	"CallTimeout":       "call_timeout",
	"RetryBackoff":      "retry_backoff",
	"RequestsPerSecond": "requests_per_second",
	"HTTPAddr":          "http_addr",
}

// fileSettings is the on-disk shape. Unset keys keep their defaults.
type fileSettings struct {
	BaseURL           *string  `toml:"base_url"`
	AppURL            *string  `toml:"app_url"`
	MaxResultsPerType *int     `toml:"max_results_per_type"`
	SnippetLength     *int     `toml:"snippet_length"`
	CallTimeout       *string  `toml:"call_timeout"`
	RetryBackoff      *string  `toml:"retry_backoff"`
	RequestsPerSecond *float64 `toml:"requests_per_second"`
	HTTPAddr          *string  `toml:"http_addr"`
}

// DefaultSettingsPath returns the settings file location under the user
// config directory, or "" if it cannot be determined.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDir, settingsFile)
}

// LoadSettings builds settings from defaults, the settings file and
// environment overrides, then validates them.
//
// path names the settings file. If empty, JOBTREAD_MCP_CONFIG is used,
// then DefaultSettingsPath. A missing file is an error only when named
// explicitly.
func LoadSettings(path string) (domain.Settings, error) {
	s := domain.DefaultSettings()

	named := path != ""
	if !named {
		path = osenv.Value(EnvConfigPath, "")
		named = path != ""
	}
	if !named {
		path = DefaultSettingsPath()
	}

	if path != "" {
		if named || fileExists(path) {
			if err := applyFile(&s, path); err != nil {
				return domain.Settings{}, err
			}
			logger.Debug("Loaded settings from %s", path)
		}
	}

	applyEnv(&s)

	if err := check(s, settingNames); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

func applyFile(s *domain.Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read settings %s: %w", domain.ErrConfig, path, err)
	}
	if err := decodeSettings(s, data); err != nil {
		return fmt.Errorf("%w: settings %s: %w", domain.ErrConfig, path, err)
	}
	return nil
}

// decodeSettings overlays TOML data onto s.
func decodeSettings(s *domain.Settings, data []byte) error {
	var fs fileSettings
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fs); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.New(strings.TrimSpace(strict.String()))
		}
		return err
	}

	setString(&s.BaseURL, fs.BaseURL)
	setString(&s.AppURL, fs.AppURL)
	setString(&s.HTTPAddr, fs.HTTPAddr)
	if fs.MaxResultsPerType != nil {
		s.MaxResultsPerType = *fs.MaxResultsPerType
	}
	if fs.SnippetLength != nil {
		s.SnippetLength = *fs.SnippetLength
	}
	if fs.RequestsPerSecond != nil {
		s.RequestsPerSecond = *fs.RequestsPerSecond
	}
	if err := setDuration(&s.CallTimeout, "call_timeout", fs.CallTimeout); err != nil {
		return err
	}
	return setDuration(&s.RetryBackoff, "retry_backoff", fs.RetryBackoff)
}

func applyEnv(s *domain.Settings) {
	s.BaseURL = osenv.Value(EnvBaseURL, s.BaseURL)
	s.AppURL = osenv.Value(EnvAppURL, s.AppURL)
	s.HTTPAddr = osenv.Value(EnvHTTPAddr, s.HTTPAddr)
	if s.HTTPAddr == "" {
		if port := strings.TrimSpace(osenv.Value(EnvPort, "")); port != "" {
			s.HTTPAddr = ":" + port
		}
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setDuration(dst *time.Duration, key string, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(*v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
