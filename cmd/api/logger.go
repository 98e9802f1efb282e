package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mandalnilabja/chatproxy/internal/config"
	"github.com/mandalnilabja/chatproxy/internal/logging"
)

func setupLogger(cfg *config.Config) *slog.Logger {
	return logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
}

func printStartupBanner(cfg *config.Config) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintln(os.Stderr, "chatproxy - OpenAI chat completions proxy")
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "Proxy:      http://localhost%s/ (POST, OPTIONS)\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Health:     http://localhost%s/api/health\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Upstream:   %s (timeout %s)\n", cfg.UpstreamURL, cfg.UpstreamTimeout)
	fmt.Fprintf(os.Stderr, "CORS:       %s\n", cfg.CORSAllowOrigin)
	if !cfg.HasAPIKey() {
		fmt.Fprintln(os.Stderr, "Warning:    OPENAI_API_KEY is not set, POST requests will fail with 500")
	}
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}
