// File path: internal/handover/prompt.go
package handover

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"
)

const systemPrompt = `You are an industrial operations assistant specialized in AVEVA systems and manufacturing operations.

Your task is to convert shift handover notes, alarm data, and trend data into a structured, actionable handover summary.

CRITICAL REQUIREMENTS:
1. **Separate Facts from Hypotheses**: Clearly distinguish between observed facts and inferred hypotheses.
2. **Provide Confidence**: For any hypothesis or inference, provide a confidence percentage (0-100%).
3. **Be Specific and Operational**: Use precise industrial terminology. Reference specific equipment, tags, or alarm IDs when available.
4. **Ask Clarifying Questions**: If critical information is missing, ask up to 3 specific questions.
5. **Output Format**: Return BOTH:
   - A valid JSON object matching the exact schema below
   - A markdown-formatted report

JSON SCHEMA (STRICT):
{
  "shiftSummary": ["fact 1", "fact 2", ...],
  "criticalAlarms": [{"alarm": "alarm description", "meaning": "operational meaning"}],
  "openIssues": [{"issue": "description", "priority": "High|Med|Low", "confidence": 75}],
  "recommendedActions": ["action 1", "action 2", ...],
  "questions": ["question 1", "question 2", ...]
}

PRIORITY LEVELS:
- High: Immediate action required, safety/production impact
- Med: Should be addressed within 24 hours
- Low: Monitor or address when convenient

Return your response in this exact format:
` + "```json\n{...your JSON here...}\n```" + `

Then on a new line, provide the markdown report starting with # Shift Handover Intelligence Report`

var handoverTemplate = prompts.NewPromptTemplate(`{{.system}}

=== SHIFT HANDOVER NOTES ===
{{.notes}}
{{- if .alarms}}

=== ALARMS DATA (JSON) ===
{{.alarms}}
{{- end}}
{{- if .trends}}

=== TREND DATA SUMMARY ===
{{.trends}}
{{- end}}

Now generate the structured handover report as specified.`,
	[]string{"system", "notes", "alarms", "trends"})

// BuildPrompt assembles the full model prompt from shift notes plus the
// optional alarm payload and trend CSV.
func BuildPrompt(notes string, alarms map[string]any, trendsCSV string) (string, error) {
	return handoverTemplate.Format(map[string]any{
		"system": systemPrompt,
		"notes":  notes,
		"alarms": FormatAlarms(alarms),
		"trends": SummarizeTrends(trendsCSV),
	})
}

// RepairPrompt asks the model to re-emit only the JSON object from an
// earlier malformed response.
func RepairPrompt(invalidResponse string) string {
	return fmt.Sprintf(`The following response should contain valid JSON but is malformed:

%s

Please extract and return ONLY a valid JSON object that matches this schema:
{
  "shiftSummary": ["..."],
  "criticalAlarms": [{"alarm": "...", "meaning": "..."}],
  "openIssues": [{"issue": "...", "priority": "High|Med|Low", "confidence": 0-100}],
  "recommendedActions": ["..."],
  "questions": ["..."]
}

Return ONLY the JSON object, nothing else.`, invalidResponse)
}

// FormatAlarms pretty-prints the alarm payload for prompt inclusion.
// Returns the empty string when there is nothing to format.
func FormatAlarms(alarms map[string]any) string {
	if len(alarms) == 0 {
		return ""
	}
	formatted, err := json.MarshalIndent(alarms, "", "  ")
	if err != nil {
		return "Could not format alarms: " + err.Error()
	}
	return string(formatted)
}

// SummarizeTrends digests trend CSV data into a short human-readable
// summary: field list, row count, and a sample of records. Malformed CSV
// yields an explanatory line rather than an error.
func SummarizeTrends(csvContent string) string {
	if strings.TrimSpace(csvContent) == "" {
		return ""
	}
	reader := csv.NewReader(strings.NewReader(csvContent))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return "Could not parse CSV trend data: " + err.Error()
	}
	if len(rows) == 0 {
		return "Empty trend data."
	}
	fields := rows[0]
	records := rows[1:]
	if len(records) == 0 {
		return "Empty trend data."
	}

	lines := []string{fmt.Sprintf(
		"Trend data contains %d records with fields: %s",
		len(records), strings.Join(fields, ", "),
	)}
	if len(records) <= 5 {
		for i, record := range records {
			lines = append(lines, fmt.Sprintf("Record %d: %s", i+1, renderTrendRecord(fields, record)))
		}
	} else {
		lines = append(lines,
			"First record: "+renderTrendRecord(fields, records[0]),
			"Last record: "+renderTrendRecord(fields, records[len(records)-1]),
		)
	}
	return strings.Join(lines, "\n")
}

func renderTrendRecord(fields, record []string) string {
	pairs := make([]string, 0, len(record))
	for i, value := range record {
		if i < len(fields) {
			pairs = append(pairs, fields[i]+"="+value)
		} else {
			pairs = append(pairs, value)
		}
	}
	return strings.Join(pairs, ", ")
}
