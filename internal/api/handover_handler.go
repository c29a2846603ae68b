// File path: internal/api/handover_handler.go
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/opsrelay/handover/internal/common"
	"github.com/opsrelay/handover/internal/common/telemetry"
	"github.com/opsrelay/handover/internal/handover"
	"github.com/opsrelay/handover/internal/markdown"
	"github.com/opsrelay/handover/internal/report"
	"github.com/opsrelay/handover/internal/sqlite"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	req, err := decodeHandoverRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: handover generation requested",
		"notes_length", len(req.ShiftNotes),
		"has_alarms", len(req.AlarmsJSON) > 0,
		"has_trends", req.TrendsCSV != "")

	md, rec := s.generator.Generate(r.Context(), handover.Request{
		ShiftNotes: req.ShiftNotes,
		Alarms:     req.AlarmsJSON,
		TrendsCSV:  req.TrendsCSV,
	})

	sessionID := uuid.NewString()
	s.saveSession(r.Context(), sessionID, req, md, rec)

	writeJSON(w, http.StatusOK, handoverResponse{
		Markdown:  md,
		Record:    rec,
		SessionID: sessionID,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := s.loadSession(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("handover session %s not found", sessionID))
		return
	}
	var rec handover.Record
	if err := json.Unmarshal([]byte(session.RecordJSON), &rec); err != nil {
		// Stored records are repaired before persisting; a decode failure
		// here means the row was corrupted out of band.
		common.Logger().Error("api: stored record unreadable", "session", sessionID, "error", err)
		rec = handover.Repair(nil)
	}
	writeJSON(w, http.StatusOK, handoverResponse{
		Markdown:  session.MarkdownOutput,
		Record:    rec,
		SessionID: session.SessionID,
	})
}

func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	req, err := decodeHandoverRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	md, rec := s.generator.Generate(r.Context(), handover.Request{
		ShiftNotes: req.ShiftNotes,
		Alarms:     req.AlarmsJSON,
		TrendsCSV:  req.TrendsCSV,
	})
	sessionID := uuid.NewString()
	s.saveSession(r.Context(), sessionID, req, md, rec)
	s.servePDF(w, md)
}

func (s *Server) handleSessionPDF(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := s.loadSession(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("handover session %s not found", sessionID))
		return
	}
	s.servePDF(w, session.MarkdownOutput)
}

func (s *Server) handleRecentSessions(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusOK, map[string]any{"sessions": []sessionSummary{}})
		return
	}
	sessions, err := s.store.RecentSessions(r.Context(), 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	summaries := make([]sessionSummary, 0, len(sessions))
	for _, session := range sessions {
		preview := session.ShiftNotes
		if len(preview) > 140 {
			preview = preview[:140] + "..."
		}
		summaries = append(summaries, sessionSummary{
			SessionID: session.SessionID,
			CreatedAt: session.CreatedAt.UTC().Format(time.RFC3339),
			Notes:     preview,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": summaries})
}

func (s *Server) servePDF(w http.ResponseWriter, md string) {
	start := time.Now()
	blocks := markdown.Parse(md)
	pdfBytes, err := report.Render(blocks)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("render pdf: %w", err))
		return
	}
	telemetry.RecordPDFRender(time.Since(start))
	filename := fmt.Sprintf("shift-handover-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// saveSession persists best-effort: a storage failure is logged and never
// fails the request.
func (s *Server) saveSession(ctx context.Context, sessionID string, req handoverRequest, md string, rec handover.Record) {
	logger := common.Logger()
	if s.store == nil {
		logger.Debug("api: session store not configured, skipping persistence")
		return
	}
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		logger.Warn("api: record marshal failed (non-critical)", "error", err)
		return
	}
	session := &sqlite.Session{
		SessionID:      sessionID,
		ShiftNotes:     req.ShiftNotes,
		MarkdownOutput: md,
		RecordJSON:     string(recordJSON),
	}
	if len(req.AlarmsJSON) > 0 {
		if encoded, err := json.Marshal(req.AlarmsJSON); err == nil {
			session.AlarmsJSON = sql.NullString{String: string(encoded), Valid: true}
		}
	}
	if req.TrendsCSV != "" {
		session.TrendsCSV = sql.NullString{String: req.TrendsCSV, Valid: true}
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		logger.Warn("api: session save failed (non-critical)", "session", sessionID, "error", err)
		return
	}
	logger.Info("api: handover session saved", "session", sessionID)
}

func (s *Server) loadSession(ctx context.Context, sessionID string) (*sqlite.Session, error) {
	if s.store == nil {
		return nil, nil
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, nil
	}
	return s.store.GetSession(ctx, sessionID)
}

func decodeHandoverRequest(w http.ResponseWriter, r *http.Request) (handoverRequest, error) {
	var req handoverRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return handoverRequest{}, fmt.Errorf("decode request: %w", err)
	}
	if err := req.normalize(); err != nil {
		return handoverRequest{}, err
	}
	return req, nil
}
