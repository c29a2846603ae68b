// File path: cmd/handoverd/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/opsrelay/handover/internal/api"
	"github.com/opsrelay/handover/internal/common"
	"github.com/opsrelay/handover/internal/llm"
	"github.com/opsrelay/handover/internal/sqlite"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("handover: .env file not loaded", "error", err)
	} else {
		logger.Info("handover: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the session SQLite database")
	flag.Parse()

	logger.Info("handover: startup initiated", "addr", *addr, "db", *dbPath)

	var store *sqlite.Store
	if trimmed := strings.TrimSpace(*dbPath); trimmed != "" {
		if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
			logger.Warn("handover: could not create database directory", "error", err)
		}
		opened, err := sqlite.Open(trimmed)
		if err != nil {
			// Persistence is best-effort; the service still generates
			// handovers without it.
			logger.Error("handover: session store unavailable", "error", err)
		} else {
			store = opened
			defer store.Close()
			logger.Info("handover: session store ready", "path", trimmed)
		}
	}

	provider := llm.NewProvider(ctx)
	logger.Info("handover: llm provider ready", "provider", provider.Name())

	server, err := api.NewServer(ctx, store, provider)
	if err != nil {
		logger.Error("handover: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("handover: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("handover: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("handover: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDBPath() string {
	return filepath.Join("data", "handover.db")
}
