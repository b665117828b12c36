package cli

import (
	"context"

	"github.com/rusq/osenv/v2"
	"github.com/spf13/cobra"

	"github.com/vinodesignbuild/jobtread-mcp/internal/adapters/driven/config"
	"github.com/vinodesignbuild/jobtread-mcp/internal/connectors/demo"
	"github.com/vinodesignbuild/jobtread-mcp/internal/connectors/jobtread"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/ports/driven"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/ports/driving"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/services"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
	normaliser "github.com/vinodesignbuild/jobtread-mcp/internal/normalisers/jobtread"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose    bool
	configPath string
	envFile    string
	demoMode   bool
)

// Wired services.
var (
	queryService driving.QueryService
	settings     = domain.DefaultSettings()

	// verifyCredentials checks the credentials against the live API.
	// Nil in demo mode.
	verifyCredentials func(ctx context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "jobtread-mcp",
	Short: "MCP server for JobTread construction data",
	Long: `jobtread-mcp lets AI assistants search and read JobTread projects,
customers and documents through the Model Context Protocol.

Credentials are read from JOBTREAD_API_KEY and JOBTREAD_ORG_ID, which
may be placed in a .env file. Use --demo to run against built-in sample
data without credentials.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr (environment: DEBUG)")
	pf.StringVar(&configPath, "config", "", "settings `file` (environment: "+config.EnvConfigPath+")")
	pf.StringVar(&envFile, "env-file", "", "load environment from `file` (default .env if present)")
	pf.BoolVar(&demoMode, "demo", false, "serve built-in sample data instead of the JobTread API")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup wires the services unless the command needs none or they were
// injected already.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	if verbose || osenv.Value(config.EnvDebug, false) {
		logger.SetVerbose(true)
	}

	if cmd == versionCmd || queryService != nil {
		return nil
	}
	return bootstrap()
}

// bootstrap builds the dispatcher over the configured upstream.
func bootstrap() error {
	logger.Section("Startup")

	s, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}

	var upstream driven.Upstream
	if demoMode {
		logger.Info("Demo mode: serving sample data")
		upstream = demo.New()
		verifyCredentials = nil
	} else {
		creds, err := config.LoadCredentials()
		if err != nil {
			return err
		}
		client, err := jobtread.NewClient(creds, jobtread.Config{
			BaseURL:           s.BaseURL,
			RequestsPerSecond: s.RequestsPerSecond,
		})
		if err != nil {
			return err
		}
		logger.Info("Using JobTread API at %s for organization %s", s.BaseURL, creds.OrgID)
		upstream = client
		verifyCredentials = client.ValidateCredentials
	}

	settings = s
	queryService = services.NewDispatcher(upstream, normaliser.New(s.AppURL, s.SnippetLength), s)
	return nil
}
