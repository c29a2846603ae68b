// File path: internal/handover/prompt_test.go
package handover

import (
	"strings"
	"testing"
)

func TestBuildPromptNotesOnly(t *testing.T) {
	prompt, err := BuildPrompt("Reactor stable all shift.", nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(prompt, "=== SHIFT HANDOVER NOTES ===") {
		t.Fatalf("missing notes section:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Reactor stable all shift.") {
		t.Fatalf("notes not included:\n%s", prompt)
	}
	if strings.Contains(prompt, "=== ALARMS DATA (JSON) ===") {
		t.Fatalf("empty alarms should not add a section:\n%s", prompt)
	}
	if strings.Contains(prompt, "=== TREND DATA SUMMARY ===") {
		t.Fatalf("empty trends should not add a section:\n%s", prompt)
	}
}

func TestBuildPromptWithAlarmsAndTrends(t *testing.T) {
	alarms := map[string]any{"LAH-101": "active"}
	prompt, err := BuildPrompt("notes", alarms, "time,value\n10:00,1.2\n10:05,1.3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(prompt, "=== ALARMS DATA (JSON) ===") ||
		!strings.Contains(prompt, `"LAH-101": "active"`) {
		t.Fatalf("alarms section missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "=== TREND DATA SUMMARY ===") ||
		!strings.Contains(prompt, "2 records") {
		t.Fatalf("trends section missing:\n%s", prompt)
	}
}

func TestRepairPromptEmbedsResponse(t *testing.T) {
	prompt := RepairPrompt("broken {output")
	if !strings.Contains(prompt, "broken {output") {
		t.Fatalf("response not embedded:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Return ONLY the JSON object") {
		t.Fatalf("missing constraint:\n%s", prompt)
	}
}

func TestFormatAlarmsEmpty(t *testing.T) {
	if got := FormatAlarms(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := FormatAlarms(map[string]any{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSummarizeTrendsSmall(t *testing.T) {
	csv := "time,temp\n10:00,98.5\n10:05,99.1"
	summary := SummarizeTrends(csv)
	if !strings.Contains(summary, "2 records with fields: time, temp") {
		t.Fatalf("unexpected header: %q", summary)
	}
	if !strings.Contains(summary, "Record 1: time=10:00, temp=98.5") {
		t.Fatalf("missing first record: %q", summary)
	}
	if !strings.Contains(summary, "Record 2: time=10:05, temp=99.1") {
		t.Fatalf("missing second record: %q", summary)
	}
}

func TestSummarizeTrendsLargeShowsFirstAndLast(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("time,value\n")
	for i := 0; i < 10; i++ {
		sb.WriteString("t")
		sb.WriteByte(byte('0' + i))
		sb.WriteString(",1\n")
	}
	summary := SummarizeTrends(sb.String())
	if !strings.Contains(summary, "10 records") {
		t.Fatalf("unexpected count: %q", summary)
	}
	if !strings.Contains(summary, "First record: time=t0") ||
		!strings.Contains(summary, "Last record: time=t9") {
		t.Fatalf("missing sample records: %q", summary)
	}
	if strings.Contains(summary, "Record 2:") {
		t.Fatalf("should not enumerate all records: %q", summary)
	}
}

func TestSummarizeTrendsEdgeCases(t *testing.T) {
	if got := SummarizeTrends(""); got != "" {
		t.Fatalf("blank input: got %q", got)
	}
	if got := SummarizeTrends("   \n  "); got != "" {
		t.Fatalf("whitespace input: got %q", got)
	}
	if got := SummarizeTrends("time,value"); got != "Empty trend data." {
		t.Fatalf("header-only input: got %q", got)
	}
	if got := SummarizeTrends("a,\"b\nc"); !strings.HasPrefix(got, "Could not parse CSV trend data:") {
		t.Fatalf("malformed input: got %q", got)
	}
}

func TestSummarizeTrendsRaggedRows(t *testing.T) {
	summary := SummarizeTrends("time,value\n10:00,1,extra")
	if !strings.Contains(summary, "time=10:00, value=1, extra") {
		t.Fatalf("ragged row not rendered: %q", summary)
	}
}
