package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/framehaus/cadbridge/internal/client"
	"github.com/framehaus/cadbridge/internal/config"
	"github.com/framehaus/cadbridge/internal/tools"
)

func main() {
	// Stdout belongs to the MCP transport, all logging goes to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadbridge-mcp: %v\n", err)
		os.Exit(1)
	}

	c := client.New(cfg.Addr(), cfg.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := c.Ping(ctx); err != nil {
		log.Warn("bridge not reachable yet, tools will retry per call",
			"addr", cfg.Addr(), "error", err)
	}
	cancel()

	s := server.NewMCPServer(
		"cadbridge",
		"0.1.0",
		server.WithToolCapabilities(true),
	)
	tools.RegisterAll(s, c)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "cadbridge-mcp: %v\n", err)
		os.Exit(1)
	}
}
