// File path: internal/handover/extract.go
package handover

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Strategy attempts to recover a decoded JSON value from raw model output.
// It reports false when the text holds nothing usable; strategies never
// error.
type Strategy func(text string) (any, bool)

// recordKeys are the fields whose presence marks an object as a handover
// record rather than an unrelated inline object.
var recordKeys = []string{"shiftSummary", "openIssues", "recommendedActions"}

var (
	fencedRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	// Balanced braces with one nesting level, which covers the record
	// shape (arrays of flat objects).
	braceRe = regexp.MustCompile(`\{(?:[^{}]|\{[^{}]*\})*\}`)
)

// WholeText parses the entire input as JSON. Succeeds only for clean,
// unwrapped model output.
func WholeText() Strategy {
	return func(text string) (any, bool) {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil, false
		}
		var value any
		if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
			return nil, false
		}
		return value, true
	}
}

// FencedBlocks scans fenced code blocks (optionally tagged json) for a
// single object, returning the first candidate that parses, in source
// order.
func FencedBlocks() Strategy {
	return func(text string) (any, bool) {
		for _, match := range fencedRe.FindAllStringSubmatch(text, -1) {
			var value map[string]any
			if err := json.Unmarshal([]byte(match[1]), &value); err == nil {
				return value, true
			}
		}
		return nil, false
	}
}

// BalancedBraces scans the raw text for {...} substrings and accepts the
// first candidate that parses as an object carrying at least one record
// key. With preferLast set, candidates are tried last-first: models tend to
// prepend commentary before the final JSON answer. The ordering is a
// heuristic policy, not a guarantee, which is why it stays overridable.
func BalancedBraces(preferLast bool) Strategy {
	return func(text string) (any, bool) {
		candidates := braceRe.FindAllString(text, -1)
		if preferLast {
			for i, j := 0, len(candidates)-1; i < j; i, j = i+1, j-1 {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
		for _, candidate := range candidates {
			var value map[string]any
			if err := json.Unmarshal([]byte(candidate), &value); err != nil {
				continue
			}
			for _, key := range recordKeys {
				if _, ok := value[key]; ok {
					return value, true
				}
			}
		}
		return nil, false
	}
}

// DefaultStrategies is the production extraction chain, tried in order.
func DefaultStrategies() []Strategy {
	return []Strategy{WholeText(), FencedBlocks(), BalancedBraces(true)}
}

// Extract recovers a decoded JSON value from unconstrained model output
// using the default strategy chain. Absence is signalled, never raised.
func Extract(text string) (any, bool) {
	return ExtractWith(text, DefaultStrategies())
}

// ExtractWith runs the given strategies in order and returns the first
// present value.
func ExtractWith(text string, strategies []Strategy) (any, bool) {
	for _, strategy := range strategies {
		if value, ok := strategy(text); ok {
			return value, true
		}
	}
	return nil, false
}
