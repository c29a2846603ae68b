// File path: internal/markdown/block.go
package markdown

// Style is a bitmask of inline emphasis styles applied to a span of text.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleItalic
)

// Span marks a styled run inside StyledText.Text using byte offsets.
// Spans are sorted, non-overlapping, and only cover runs whose style is
// non-zero; text between spans is unstyled.
type Span struct {
	Start int
	End   int
	Style Style
}

// StyledText is escaped text with resolved emphasis spans. The raw markdown
// emphasis markers are removed from Text; HTML-significant characters are
// entity-escaped before the markers are resolved, so source text can never
// smuggle markup past the styling step.
type StyledText struct {
	Text  string
	Spans []Span
}

// Segment is one maximal run of constant style, produced by Segments.
type Segment struct {
	Text  string
	Style Style
}

// Segments splits the styled text into consecutive runs of constant style,
// covering the whole of Text in order.
func (s StyledText) Segments() []Segment {
	if len(s.Spans) == 0 {
		if s.Text == "" {
			return nil
		}
		return []Segment{{Text: s.Text}}
	}
	segments := make([]Segment, 0, len(s.Spans)*2+1)
	pos := 0
	for _, span := range s.Spans {
		if span.Start > pos {
			segments = append(segments, Segment{Text: s.Text[pos:span.Start]})
		}
		segments = append(segments, Segment{Text: s.Text[span.Start:span.End], Style: span.Style})
		pos = span.End
	}
	if pos < len(s.Text) {
		segments = append(segments, Segment{Text: s.Text[pos:]})
	}
	return segments
}

// Block is one typed unit of renderable content. The set of implementations
// is closed; consumers type-switch over every variant so a new block kind is
// a compile-time visible change.
type Block interface {
	isBlock()
}

// Heading is a section heading with level 1, 2, or 3.
type Heading struct {
	Level int
	Text  StyledText
}

// BulletList groups consecutive "-"/"*" lines into one list.
type BulletList struct {
	Items []StyledText
}

// NumberedList groups consecutive "N." lines into one list. Rendered
// numbering always runs 1..N regardless of the digits in the source.
type NumberedList struct {
	Items []StyledText
}

// CodeBlock holds fenced content verbatim; no inline styling is applied.
type CodeBlock struct {
	Text string
}

// Paragraph is a single line of styled prose.
type Paragraph struct {
	Text StyledText
}

// Spacer marks an explicit vertical gap from a blank source line.
type Spacer struct{}

func (Heading) isBlock()      {}
func (BulletList) isBlock()   {}
func (NumberedList) isBlock() {}
func (CodeBlock) isBlock()    {}
func (Paragraph) isBlock()    {}
func (Spacer) isBlock()       {}
