package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/framehaus/cadbridge/internal/bridge"
	"github.com/framehaus/cadbridge/internal/config"
	"github.com/framehaus/cadbridge/internal/sim"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadbridge: %v\n", err)
		os.Exit(1)
	}

	model := sim.NewModel()
	dispatcher := bridge.New(model.API(), log)

	srv := bridge.NewServer(dispatcher, cfg.Timeout, log)
	if err := srv.Listen(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "cadbridge: listen on %s: %v\n", cfg.Addr(), err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "cadbridge: %v\n", err)
		os.Exit(1)
	}
}
