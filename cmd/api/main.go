package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mandalnilabja/chatproxy/internal/app"
	"github.com/mandalnilabja/chatproxy/internal/config"
	"github.com/mandalnilabja/chatproxy/internal/provider/openai"
	"github.com/mandalnilabja/chatproxy/internal/relay"
	"github.com/mandalnilabja/chatproxy/internal/transport/http/handler"
)

func main() {
	// 1. Configuration, resolved once for the process lifetime
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	printStartupBanner(cfg)

	// 2. Relay wired to the upstream
	upstream := openai.New(cfg.UpstreamURL, cfg.UpstreamTimeout)
	repo := handler.NewRepo(relay.New(cfg, upstream, logger))

	// 3. Server
	srv := app.NewServer(cfg, app.NewRouter(repo), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
