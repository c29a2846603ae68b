// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"context"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/opsrelay/handover/internal/common"
)

type spanKey struct{}

type span struct {
	name  string
	start time.Time
}

var (
	initOnce sync.Once

	generationTotal     *expvar.Int
	generationLatencyMS *expvar.Int
	fallbackTotal       *expvar.Map

	modelCallTotal     *expvar.Map
	modelCallLatencyMS *expvar.Map

	pdfRenderTotal     *expvar.Int
	pdfRenderLatencyMS *expvar.Int
)

func ensureInit() {
	initOnce.Do(func() {
		generationTotal = expvar.NewInt("handover_generation_total")
		generationLatencyMS = expvar.NewInt("handover_generation_latency_ms")
		fallbackTotal = expvar.NewMap("handover_fallback_total")

		modelCallTotal = expvar.NewMap("handover_model_call_total")
		modelCallLatencyMS = expvar.NewMap("handover_model_call_latency_ms")

		pdfRenderTotal = expvar.NewInt("handover_pdf_render_total")
		pdfRenderLatencyMS = expvar.NewInt("handover_pdf_render_latency_ms")
	})
}

// StartSpan marks the start of a named operation, returning a finish
// callback that logs the duration with any extra attributes.
func StartSpan(ctx context.Context, name string) (context.Context, func(attrs ...interface{})) {
	ensureInit()
	sp := &span{name: name, start: time.Now()}
	ctx = context.WithValue(ctx, spanKey{}, sp)
	logger := common.Logger()
	logger.Debug("trace: start", "span", name)
	return ctx, func(attrs ...interface{}) {
		if sp == nil {
			return
		}
		duration := time.Since(sp.start)
		logger.Debug("trace: end", append([]interface{}{"span", name, "dur", duration}, attrs...)...)
	}
}

// RecordGeneration counts one completed handover generation.
func RecordGeneration(duration time.Duration) {
	ensureInit()
	generationTotal.Add(1)
	if duration > 0 {
		generationLatencyMS.Add(duration.Milliseconds())
	}
}

// RecordFallback counts a degraded outcome by kind, e.g. "provider_error"
// or "parse_failure".
func RecordFallback(kind string) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(kind))
	if key == "" {
		key = "unknown"
	}
	fallbackTotal.Add(key, 1)
}

// RecordModelCall counts one model round trip for the named provider.
func RecordModelCall(provider string, duration time.Duration) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(provider))
	if key == "" {
		key = "unknown"
	}
	modelCallTotal.Add(key, 1)
	if duration > 0 {
		modelCallLatencyMS.Add(key, duration.Milliseconds())
	}
}

// RecordPDFRender counts one rendered report document.
func RecordPDFRender(duration time.Duration) {
	ensureInit()
	pdfRenderTotal.Add(1)
	if duration > 0 {
		pdfRenderLatencyMS.Add(duration.Milliseconds())
	}
}

// Snapshot returns the current counter values for the stats endpoint.
func Snapshot() map[string]string {
	ensureInit()
	out := make(map[string]string)
	for _, name := range []string{
		"handover_generation_total",
		"handover_generation_latency_ms",
		"handover_fallback_total",
		"handover_model_call_total",
		"handover_model_call_latency_ms",
		"handover_pdf_render_total",
		"handover_pdf_render_latency_ms",
	} {
		if v := expvar.Get(name); v != nil {
			out[name] = v.String()
		}
	}
	return out
}

// SpanDuration reports time elapsed since the enclosing span started.
func SpanDuration(ctx context.Context) time.Duration {
	sp, _ := ctx.Value(spanKey{}).(*span)
	if sp == nil {
		return 0
	}
	return time.Since(sp.start)
}
