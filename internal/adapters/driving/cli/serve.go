package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinodesignbuild/jobtread-mcp/internal/adapters/driven/config"
	"github.com/vinodesignbuild/jobtread-mcp/internal/adapters/driving/mcp"
	"github.com/vinodesignbuild/jobtread-mcp/internal/connectors/jobtread"
	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

var (
	serveHTTP       string
	serveSkipVerify bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the search and fetch tools.

By default, the server communicates over stdio and can be used with
Claude Desktop and other MCP-compatible assistants.

Use --http to serve streamable HTTP instead, with the MCP endpoint at
/mcp and a health check at /health.

Examples:
  # Stdio mode (default)
  jobtread-mcp serve

  # HTTP mode
  jobtread-mcp serve --http :8080

  # Sample data, no credentials needed
  jobtread-mcp --demo serve

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "jobtread": {
        "command": "/path/to/jobtread-mcp",
        "args": ["serve"],
        "env": {"JOBTREAD_API_KEY": "...", "JOBTREAD_ORG_ID": "..."}
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHTTP, "http", "", "HTTP listen `address` (empty = use stdio; environment: JOBTREAD_MCP_HTTP or PORT)")
	serveCmd.Flags().BoolVar(&serveSkipVerify, "skip-verify", false, "do not check credentials against the API at startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if verifyCredentials != nil && !serveSkipVerify {
		if err := verifyCredentials(ctx); err != nil {
			if hint := startupHint(err); hint != "" {
				err = fmt.Errorf("%s: %w", hint, err)
			}
			if errors.Is(err, domain.ErrAuth) || errors.Is(err, domain.ErrConfig) {
				return fmt.Errorf("verifying credentials: %w", err)
			}
			logger.Warn("Could not verify credentials, continuing: %v", err)
		}
	}

	server, err := mcp.NewServer(&mcp.Ports{Query: queryService})
	if err != nil {
		return err
	}

	addr := serveHTTP
	if addr == "" {
		addr = settings.HTTPAddr
	}
	if addr != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s%s\n", displayAddr(addr), mcp.PathMCP)
		return server.RunHTTP(ctx, addr)
	}

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// displayAddr fills in localhost for addresses without a host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

// startupHint names the likely cause of a failed credential check.
func startupHint(err error) string {
	switch {
	case jobtread.IsUnauthorized(err):
		return "JobTread rejected the API key, check " + config.EnvAPIKey
	case jobtread.IsForbidden(err):
		return "the API key has no access to the organization, check " + config.EnvOrgID
	case jobtread.IsRateLimited(err):
		return "JobTread is rate limiting requests"
	default:
		return ""
	}
}
