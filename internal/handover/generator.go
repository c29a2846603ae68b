// File path: internal/handover/generator.go
package handover

import (
	"context"
	"strings"
	"time"

	"github.com/opsrelay/handover/internal/common"
	"github.com/opsrelay/handover/internal/common/telemetry"
	"github.com/opsrelay/handover/internal/llm"
)

// Request carries the operator inputs for one handover generation.
type Request struct {
	ShiftNotes string
	Alarms     map[string]any
	TrendsCSV  string
}

// Generator turns shift inputs into a (markdown, Record) pair via a model
// provider. It never returns an error: provider or parse failures degrade
// to the fixed fallback records so callers always get a valid pair.
type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate runs the full pipeline: prompt build, model call, JSON
// extraction and repair (with one constrained retry call on extraction
// miss), and report selection.
func (g *Generator) Generate(ctx context.Context, req Request) (string, Record) {
	logger := common.Logger()
	ctx, finish := telemetry.StartSpan(ctx, "handover.generate")
	defer func() {
		telemetry.RecordGeneration(telemetry.SpanDuration(ctx))
		finish()
	}()
	prompt, err := BuildPrompt(req.ShiftNotes, req.Alarms, req.TrendsCSV)
	if err != nil {
		logger.Error("handover: prompt build failed", "error", err)
		telemetry.RecordFallback("prompt_error")
		rec := FallbackProviderError(err)
		return Compose(rec), rec
	}

	raw, err := g.chat(ctx, prompt)
	if err != nil {
		logger.Error("handover: model call failed", "provider", g.provider.Name(), "error", err)
		telemetry.RecordFallback("provider_error")
		rec := FallbackProviderError(err)
		return Compose(rec), rec
	}

	var rec Record
	if value, ok := Extract(raw); ok {
		rec = Repair(value)
	} else {
		logger.Warn("handover: no JSON found in response, attempting repair call")
		rec = g.repairWithModel(ctx, raw)
	}

	return g.selectMarkdown(raw, rec), rec
}

// chat wraps the provider call with latency accounting.
func (g *Generator) chat(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	raw, err := g.provider.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
	telemetry.RecordModelCall(g.provider.Name(), time.Since(start))
	return raw, err
}

// repairWithModel makes a second, constrained model call asking for only
// the JSON object. On any failure it returns the fixed minimal record.
func (g *Generator) repairWithModel(ctx context.Context, invalidResponse string) Record {
	logger := common.Logger()
	raw, err := g.chat(ctx, RepairPrompt(invalidResponse))
	if err == nil {
		if value, ok := Extract(raw); ok {
			logger.Info("handover: repair call recovered structured record")
			return Repair(value)
		}
	} else {
		logger.Error("handover: repair call failed", "error", err)
	}
	logger.Warn("handover: repair unsuccessful, using minimal record")
	telemetry.RecordFallback("parse_failure")
	return FallbackParseFailure()
}

// selectMarkdown keeps the model's free-text report when the response
// carries one of useful length; the report portion is whatever follows the
// last code fence. Otherwise the record is composed deterministically.
func (g *Generator) selectMarkdown(raw string, rec Record) string {
	if strings.Contains(raw, "# Shift Handover") || strings.Contains(raw, "## ") {
		report := raw
		if parts := strings.Split(raw, "```"); len(parts) > 2 {
			report = strings.TrimSpace(parts[len(parts)-1])
		}
		if len(report) >= MinReportLength {
			return report
		}
	}
	return Compose(rec)
}
