// The lucille-mcp binary exposes the Lucille web game to MCP agent hosts.
// It registers eleven tools on a stdio transport and proxies them to the
// Brain HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lucille-world/lucille-mcp/brain"
	"github.com/lucille-world/lucille-mcp/config"
	"github.com/lucille-world/lucille-mcp/gateway"
	"github.com/lucille-world/lucille-mcp/serve"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	client := brain.NewClient(cfg, logger)
	gw := gateway.New(client, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lucille",
		Version: version,
	}, nil)
	gw.Register(server)

	logger.Info("lucille gateway started", "version", version, "base_url", client.BaseURL())

	if err := serve.Run(context.Background(), server, logger); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
