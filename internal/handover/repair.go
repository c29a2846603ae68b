// File path: internal/handover/repair.go
package handover

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	defaultMeaning    = "No meaning provided"
	defaultConfidence = 50
)

// Repair normalises an arbitrary decoded JSON value into a fully populated
// Record. It is total: any shape mismatch is absorbed by coercion and
// defaulting, and in the worst case every field resolves to its empty
// state. Unknown fields are dropped. Applying Repair to an already valid
// record is a no-op.
func Repair(value any) Record {
	rec := emptyRecord()
	data, ok := value.(map[string]any)
	if !ok {
		return rec
	}

	rec.ShiftSummary = coerceStringList(data["shiftSummary"])
	rec.RecommendedActions = coerceStringList(data["recommendedActions"])
	rec.Questions = coerceStringList(data["questions"])

	if alarms, ok := data["criticalAlarms"].([]any); ok {
		for _, raw := range alarms {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if _, ok := entry["alarm"]; !ok {
				continue
			}
			alarm := CriticalAlarm{
				Alarm:   coerceString(entry["alarm"]),
				Meaning: defaultMeaning,
			}
			if meaning, ok := entry["meaning"]; ok && meaning != nil {
				alarm.Meaning = coerceString(meaning)
			}
			rec.CriticalAlarms = append(rec.CriticalAlarms, alarm)
		}
	}

	if issues, ok := data["openIssues"].([]any); ok {
		for _, raw := range issues {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if _, ok := entry["issue"]; !ok {
				continue
			}
			issue := OpenIssue{
				Issue:      coerceString(entry["issue"]),
				Priority:   PriorityMed,
				Confidence: coerceConfidence(entry["confidence"]),
			}
			if label, ok := entry["priority"].(string); ok && Priority(label).Valid() {
				issue.Priority = Priority(label)
			}
			rec.OpenIssues = append(rec.OpenIssues, issue)
		}
	}

	return rec
}

// coerceStringList accepts a sequence, a bare string, or anything else,
// yielding a string slice (empty for unusable input).
func coerceStringList(value any) []string {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, coerceString(item))
		}
		return out
	case string:
		return []string{v}
	default:
		return []string{}
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

func coerceConfidence(value any) float64 {
	var parsed float64
	switch v := value.(type) {
	case float64:
		parsed = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return defaultConfidence
		}
		parsed = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return defaultConfidence
		}
		parsed = f
	default:
		return defaultConfidence
	}
	if math.IsNaN(parsed) {
		return defaultConfidence
	}
	return math.Min(100, math.Max(0, parsed))
}
