// File path: internal/markdown/inline.go
package markdown

import (
	"regexp"
	"strings"
)

// Sentinel bytes delimit emphasis regions between the regex passes and the
// span-building walk. They are stripped from input first so source text can
// never forge a region boundary.
const (
	boldOpen    = "\x01"
	boldClose   = "\x02"
	italicOpen  = "\x03"
	italicClose = "\x04"
)

var htmlEscaper = strings.NewReplacer(
	boldOpen, "", boldClose, "", italicOpen, "", italicClose, "",
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var (
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicStarRe = regexp.MustCompile(`\*(.*?)\*`)
	italicLowRe  = regexp.MustCompile(`_(.*?)_`)
)

// StyleText resolves markdown emphasis markers in s into a StyledText.
// Escaping happens before marker substitution, so entities produced by the
// escaper are never re-interpreted as emphasis. Bold pairs are resolved
// first, then asterisk and underscore italics; unmatched markers stay
// literal.
func StyleText(s string) StyledText {
	escaped := htmlEscaper.Replace(s)
	marked := boldRe.ReplaceAllString(escaped, boldOpen+"$1"+boldClose)
	marked = italicStarRe.ReplaceAllString(marked, italicOpen+"$1"+italicClose)
	marked = italicLowRe.ReplaceAllString(marked, italicOpen+"$1"+italicClose)
	return buildSpans(marked)
}

// buildSpans walks the sentinel-marked string, stripping sentinels and
// recording one span per maximal styled run.
func buildSpans(marked string) StyledText {
	var sb strings.Builder
	var spans []Span
	var bold, italic int
	active := Style(0)
	runStart := 0

	current := func() Style {
		var st Style
		if bold > 0 {
			st |= StyleBold
		}
		if italic > 0 {
			st |= StyleItalic
		}
		return st
	}

	for i := 0; i < len(marked); i++ {
		switch marked[i] {
		case boldOpen[0]:
			bold++
		case boldClose[0]:
			bold--
		case italicOpen[0]:
			italic++
		case italicClose[0]:
			italic--
		default:
			sb.WriteByte(marked[i])
			continue
		}
		if st := current(); st != active {
			if active != 0 && sb.Len() > runStart {
				spans = append(spans, Span{Start: runStart, End: sb.Len(), Style: active})
			}
			active = st
			runStart = sb.Len()
		}
	}
	if active != 0 && sb.Len() > runStart {
		spans = append(spans, Span{Start: runStart, End: sb.Len(), Style: active})
	}
	return StyledText{Text: sb.String(), Spans: spans}
}
