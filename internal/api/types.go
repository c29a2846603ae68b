// File path: internal/api/types.go
package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/opsrelay/handover/internal/handover"
)

const (
	minNotesLength  = 10
	maxNotesLength  = 50000
	maxAlarmsBytes  = 1 << 20
	maxTrendsBytes  = 1 << 20
	maxRequestBytes = 4 << 20
)

// sanitizer strips all markup from operator-supplied free text.
var sanitizer = bluemonday.StrictPolicy()

type handoverRequest struct {
	ShiftNotes string         `json:"shiftNotes"`
	AlarmsJSON map[string]any `json:"alarmsJson,omitempty"`
	TrendsCSV  string         `json:"trendsCsv,omitempty"`
}

// normalize sanitises the free-text fields and enforces the request
// bounds. The core downstream tolerates arbitrary text; these checks keep
// payload sizes sane and strip markup before it reaches the prompt.
func (r *handoverRequest) normalize() error {
	r.ShiftNotes = strings.TrimSpace(sanitizer.Sanitize(strings.TrimSpace(r.ShiftNotes)))
	if r.ShiftNotes == "" {
		return fmt.Errorf("shift notes cannot be empty")
	}
	if len(r.ShiftNotes) < minNotesLength {
		return fmt.Errorf("shift notes must be at least %d characters", minNotesLength)
	}
	if len(r.ShiftNotes) > maxNotesLength {
		return fmt.Errorf("shift notes exceed maximum length (%d characters)", maxNotesLength)
	}
	if len(r.AlarmsJSON) > 0 {
		encoded, err := json.Marshal(r.AlarmsJSON)
		if err != nil {
			return fmt.Errorf("invalid alarms payload: %w", err)
		}
		if len(encoded) > maxAlarmsBytes {
			return fmt.Errorf("alarms JSON exceeds maximum size (1MB)")
		}
	}
	if len(r.TrendsCSV) > maxTrendsBytes {
		return fmt.Errorf("trend CSV exceeds maximum size (1MB)")
	}
	return nil
}

type handoverResponse struct {
	Markdown  string          `json:"markdown"`
	Record    handover.Record `json:"json"`
	SessionID string          `json:"sessionId,omitempty"`
}

type sessionSummary struct {
	SessionID string `json:"sessionId"`
	CreatedAt string `json:"createdAt"`
	Notes     string `json:"notesPreview"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"`
}
