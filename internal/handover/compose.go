// File path: internal/handover/compose.go
package handover

import (
	"strconv"
	"strings"
)

// MinReportLength is the shortest free-text report worth keeping. Anything
// below it is replaced by the deterministic Compose rendering.
const MinReportLength = 100

// Compose renders a Record as a formatted markdown report with a fixed
// section order. It is pure and total: a Record is always fully populated,
// so every section either lists its items or carries an explicit
// placeholder.
func Compose(rec Record) string {
	var md strings.Builder
	md.WriteString("# Shift Handover Intelligence Report\n\n")

	md.WriteString("## 📋 Shift Summary\n")
	if len(rec.ShiftSummary) > 0 {
		for _, item := range rec.ShiftSummary {
			md.WriteString("- " + item + "\n")
		}
	} else {
		md.WriteString("_No summary available_\n")
	}
	md.WriteString("\n")

	md.WriteString("## 🚨 Critical Alarms & Meaning\n")
	if len(rec.CriticalAlarms) > 0 {
		for _, alarm := range rec.CriticalAlarms {
			md.WriteString("### " + alarm.Alarm + "\n")
			md.WriteString("**Meaning:** " + alarm.Meaning + "\n\n")
		}
	} else {
		md.WriteString("_No critical alarms reported_\n\n")
	}

	md.WriteString("## ⚠️ Open Issues\n")
	if len(rec.OpenIssues) > 0 {
		for _, issue := range rec.OpenIssues {
			md.WriteString("### " + priorityMarker(issue.Priority) + " " + issue.Issue + "\n")
			md.WriteString("**Priority:** " + string(issue.Priority) +
				" | **Confidence:** " + formatConfidence(issue.Confidence) + "%\n\n")
		}
	} else {
		md.WriteString("_No open issues identified_\n\n")
	}

	md.WriteString("## ✅ Recommended Actions\n")
	if len(rec.RecommendedActions) > 0 {
		for i, action := range rec.RecommendedActions {
			md.WriteString(strconv.Itoa(i+1) + ". " + action + "\n")
		}
	} else {
		md.WriteString("_No recommended actions_\n")
	}
	md.WriteString("\n")

	md.WriteString("## ❓ Questions for Next Shift\n")
	if len(rec.Questions) > 0 {
		for _, question := range rec.Questions {
			md.WriteString("- " + question + "\n")
		}
	} else {
		md.WriteString("_No questions_\n")
	}
	md.WriteString("\n")

	md.WriteString("---\n")
	md.WriteString("_Generated by Shift Handover Intelligence_\n")
	return md.String()
}

func priorityMarker(p Priority) string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMed:
		return "🟡"
	case PriorityLow:
		return "🟢"
	}
	return "⚪"
}

func formatConfidence(confidence float64) string {
	return strconv.FormatFloat(confidence, 'f', -1, 64)
}
