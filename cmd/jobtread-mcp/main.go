// Command jobtread-mcp serves JobTread construction data to AI assistants
// over the Model Context Protocol.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vinodesignbuild/jobtread-mcp/internal/adapters/driving/cli"
	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		logger.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
