// Package serve runs an MCP server on the standard-I/O transport with
// lifecycle management.
//
// The process is spawned by an agent host that speaks MCP over stdin and
// stdout, so stdout belongs to the protocol and all logging goes to stderr.
// Serving ends when the host closes stdin, the context is cancelled, or the
// process receives SIGINT/SIGTERM.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run serves the MCP server on stdio and blocks until shutdown.
// A clean disconnect (host closed stdin) and a shutdown signal both return
// nil; anything else is a serve error.
func Run(ctx context.Context, server *mcp.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, &mcp.StdioTransport{})
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
		return nil
	case err := <-errCh:
		if err == nil || errors.Is(err, context.Canceled) {
			logger.Info("host disconnected, shutting down")
			return nil
		}
		return fmt.Errorf("mcp server error: %w", err)
	}
}
