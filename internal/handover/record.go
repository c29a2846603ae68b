// File path: internal/handover/record.go
package handover

// Priority is the closed severity scale for open issues.
type Priority string

const (
	PriorityHigh Priority = "High"
	PriorityMed  Priority = "Med"
	PriorityLow  Priority = "Low"
)

// Valid reports whether p is one of the three accepted labels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMed, PriorityLow:
		return true
	}
	return false
}

// CriticalAlarm pairs an alarm with its operational meaning.
type CriticalAlarm struct {
	Alarm   string `json:"alarm"`
	Meaning string `json:"meaning"`
}

// OpenIssue is an unresolved item carried over to the next shift.
// Confidence is a percentage in [0, 100].
type OpenIssue struct {
	Issue      string   `json:"issue"`
	Priority   Priority `json:"priority"`
	Confidence float64  `json:"confidence"`
}

// Record is the validated structured handover. Every field is always
// populated: slices may be empty but are never nil, so the marshalled form
// always carries all five keys as arrays.
type Record struct {
	ShiftSummary       []string        `json:"shiftSummary"`
	CriticalAlarms     []CriticalAlarm `json:"criticalAlarms"`
	OpenIssues         []OpenIssue     `json:"openIssues"`
	RecommendedActions []string        `json:"recommendedActions"`
	Questions          []string        `json:"questions"`
}

func emptyRecord() Record {
	return Record{
		ShiftSummary:       []string{},
		CriticalAlarms:     []CriticalAlarm{},
		OpenIssues:         []OpenIssue{},
		RecommendedActions: []string{},
		Questions:          []string{},
	}
}

// FallbackParseFailure is the fixed minimal record returned when no JSON
// could be recovered from the model response, even after a repair retry.
func FallbackParseFailure() Record {
	rec := emptyRecord()
	rec.ShiftSummary = []string{"Could not parse model response"}
	rec.OpenIssues = []OpenIssue{{
		Issue:      "Model response could not be parsed into a structured handover",
		Priority:   PriorityHigh,
		Confidence: 100,
	}}
	rec.RecommendedActions = []string{"Review original shift notes manually"}
	return rec
}

// FallbackProviderError is the fixed record returned when the model call
// itself failed. The request still yields a valid markdown/record pair.
func FallbackProviderError(err error) Record {
	rec := emptyRecord()
	detail := "unknown error"
	if err != nil {
		detail = err.Error()
	}
	rec.ShiftSummary = []string{
		"Error generating handover: " + detail,
		"Please review shift notes manually",
	}
	rec.OpenIssues = []OpenIssue{{
		Issue:      "Model request failed",
		Priority:   PriorityHigh,
		Confidence: 100,
	}}
	rec.RecommendedActions = []string{
		"Check API key and connection",
		"Retry the request",
	}
	return rec
}
