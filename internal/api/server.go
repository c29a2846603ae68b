// File path: internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/opsrelay/handover/internal/common"
	"github.com/opsrelay/handover/internal/common/telemetry"
	"github.com/opsrelay/handover/internal/handover"
	"github.com/opsrelay/handover/internal/llm"
	"github.com/opsrelay/handover/internal/sqlite"
)

const serviceName = "shift-handover-intelligence"

type Server struct {
	router    chi.Router
	store     *sqlite.Store
	provider  llm.Provider
	generator *handover.Generator
}

// NewServer wires the HTTP surface over the session store and model
// provider. The store may be nil: persistence is best-effort and its
// absence only disables session retrieval.
func NewServer(ctx context.Context, store *sqlite.Store, provider llm.Provider) (*Server, error) {
	logger := common.Logger()
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "provider", providerName, "store_available", store != nil)
	srv := &Server{
		router:    chi.NewRouter(),
		store:     store,
		provider:  provider,
		generator: handover.NewGenerator(provider),
	}
	srv.routes()
	logger.Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/", s.handleRoot)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/api/handover/generate", s.handleGenerate)
	s.router.Get("/api/handover/{sessionID}", s.handleGetSession)
	s.router.Post("/api/handover/download-pdf", s.handleDownloadPDF)
	s.router.Get("/api/handover/{sessionID}/download-pdf", s.handleSessionPDF)
	s.router.Get("/v1/sessions", s.handleRecentSessions)
	s.router.Get("/v1/logs", s.handleLogs)
	s.router.Get("/v1/stats", s.handleStats)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to Shift Handover Intelligence API",
		"service": serviceName,
		"status":  "running",
		"endpoints": map[string]string{
			"health":                  "/healthz",
			"generate_handover":       "/api/handover/generate",
			"get_handover":            "/api/handover/{sessionId}",
			"download_pdf":            "/api/handover/download-pdf",
			"download_pdf_by_session": "/api/handover/{sessionId}/download-pdf",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	checks := map[string]string{}

	if s.store != nil && s.store.DB() != nil {
		if err := s.store.DB().PingContext(r.Context()); err != nil {
			common.Logger().Error("api: database health check failed", "error", err)
			checks["database"] = "error"
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not_configured"
		status = "degraded"
	}

	if s.provider != nil {
		checks["model_provider"] = s.provider.Name()
	} else {
		checks["model_provider"] = "not_configured"
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"checks":    checks,
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"entries": common.LogEntries()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"counters": telemetry.Snapshot()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error:     http.StatusText(status),
		Detail:    err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
