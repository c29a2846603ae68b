// File path: internal/handover/compose_test.go
package handover

import (
	"strings"
	"testing"
)

func TestComposeSectionOrder(t *testing.T) {
	report := Compose(emptyRecord())
	sections := []string{
		"# Shift Handover Intelligence Report",
		"## 📋 Shift Summary",
		"## 🚨 Critical Alarms & Meaning",
		"## ⚠️ Open Issues",
		"## ✅ Recommended Actions",
		"## ❓ Questions for Next Shift",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(report, section)
		if idx < 0 {
			t.Fatalf("missing section %q in:\n%s", section, report)
		}
		if idx <= last {
			t.Fatalf("section %q out of order", section)
		}
		last = idx
	}
}

func TestComposeEmptyRecordPlaceholders(t *testing.T) {
	report := Compose(emptyRecord())
	for _, placeholder := range []string{
		"_No summary available_",
		"_No critical alarms reported_",
		"_No open issues identified_",
		"_No recommended actions_",
		"_No questions_",
	} {
		if !strings.Contains(report, placeholder) {
			t.Fatalf("missing placeholder %q in:\n%s", placeholder, report)
		}
	}
}

func TestComposePopulatedRecord(t *testing.T) {
	rec := Record{
		ShiftSummary: []string{"Unit 3 stable", "Feed swapped to tank B"},
		CriticalAlarms: []CriticalAlarm{
			{Alarm: "LAH-101", Meaning: "High level in separator"},
		},
		OpenIssues: []OpenIssue{
			{Issue: "Seal leak on P-204", Priority: PriorityHigh, Confidence: 85},
			{Issue: "Drifting transmitter", Priority: PriorityLow, Confidence: 62.5},
		},
		RecommendedActions: []string{"Inspect seal", "Recalibrate FT-110"},
		Questions:          []string{"Is the spare pump available?"},
	}
	report := Compose(rec)

	for _, want := range []string{
		"- Unit 3 stable",
		"### LAH-101",
		"**Meaning:** High level in separator",
		"### 🔴 Seal leak on P-204",
		"**Priority:** High | **Confidence:** 85%",
		"### 🟢 Drifting transmitter",
		"**Confidence:** 62.5%",
		"1. Inspect seal",
		"2. Recalibrate FT-110",
		"- Is the spare pump available?",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("missing %q in:\n%s", want, report)
		}
	}
	if !strings.HasSuffix(report, "_Generated by Shift Handover Intelligence_\n") {
		t.Fatalf("missing footer:\n%s", report)
	}
}

func TestComposeAlwaysAtLeastMinLength(t *testing.T) {
	if report := Compose(emptyRecord()); len(report) < MinReportLength {
		t.Fatalf("composed report shorter than %d: %d", MinReportLength, len(report))
	}
}

func TestComposeDeterministic(t *testing.T) {
	rec := FallbackParseFailure()
	if Compose(rec) != Compose(rec) {
		t.Fatal("compose is not deterministic")
	}
}

func TestPriorityMarkers(t *testing.T) {
	cases := map[Priority]string{
		PriorityHigh:    "🔴",
		PriorityMed:     "🟡",
		PriorityLow:     "🟢",
		Priority("???"): "⚪",
	}
	for p, want := range cases {
		if got := priorityMarker(p); got != want {
			t.Fatalf("priority %q: got %q, want %q", p, got, want)
		}
	}
}
