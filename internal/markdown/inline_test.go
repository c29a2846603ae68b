// File path: internal/markdown/inline_test.go
package markdown

import (
	"reflect"
	"testing"
)

func TestStyleTextEscapesHTML(t *testing.T) {
	styled := StyleText(`Pump <P-101> & "spare"`)
	want := "Pump &lt;P-101&gt; &amp; &quot;spare&quot;"
	if styled.Text != want {
		t.Fatalf("unexpected escaped text: %q", styled.Text)
	}
	if len(styled.Spans) != 0 {
		t.Fatalf("expected no spans, got %#v", styled.Spans)
	}
}

func TestStyleTextBold(t *testing.T) {
	styled := StyleText("**T>100** stable")
	if styled.Text != "T&gt;100 stable" {
		t.Fatalf("unexpected text: %q", styled.Text)
	}
	want := []Span{{Start: 0, End: 8, Style: StyleBold}}
	if !reflect.DeepEqual(styled.Spans, want) {
		t.Fatalf("unexpected spans: %#v", styled.Spans)
	}
}

func TestStyleTextItalicVariants(t *testing.T) {
	for _, input := range []string{"*lead*", "_lead_"} {
		styled := StyleText(input)
		if styled.Text != "lead" {
			t.Fatalf("input %q: unexpected text %q", input, styled.Text)
		}
		want := []Span{{Start: 0, End: 4, Style: StyleItalic}}
		if !reflect.DeepEqual(styled.Spans, want) {
			t.Fatalf("input %q: unexpected spans %#v", input, styled.Spans)
		}
	}
}

func TestStyleTextMixedEmphasis(t *testing.T) {
	styled := StyleText("*a* and **b**")
	if styled.Text != "a and b" {
		t.Fatalf("unexpected text: %q", styled.Text)
	}
	want := []Span{
		{Start: 0, End: 1, Style: StyleItalic},
		{Start: 6, End: 7, Style: StyleBold},
	}
	if !reflect.DeepEqual(styled.Spans, want) {
		t.Fatalf("unexpected spans: %#v", styled.Spans)
	}
}

func TestStyleTextNestedEmphasis(t *testing.T) {
	styled := StyleText("**a _b_ c**")
	if styled.Text != "a b c" {
		t.Fatalf("unexpected text: %q", styled.Text)
	}
	want := []Span{
		{Start: 0, End: 2, Style: StyleBold},
		{Start: 2, End: 3, Style: StyleBold | StyleItalic},
		{Start: 3, End: 5, Style: StyleBold},
	}
	if !reflect.DeepEqual(styled.Spans, want) {
		t.Fatalf("unexpected spans: %#v", styled.Spans)
	}
}

func TestStyleTextUnmatchedMarkersStayLiteral(t *testing.T) {
	styled := StyleText("a * b")
	if styled.Text != "a * b" {
		t.Fatalf("unexpected text: %q", styled.Text)
	}
	if len(styled.Spans) != 0 {
		t.Fatalf("expected no spans, got %#v", styled.Spans)
	}
}

func TestSegmentsCoverWholeText(t *testing.T) {
	styled := StyleText("plain **bold** tail")
	segments := styled.Segments()
	var rebuilt string
	for _, segment := range segments {
		rebuilt += segment.Text
	}
	if rebuilt != styled.Text {
		t.Fatalf("segments %q do not rebuild text %q", rebuilt, styled.Text)
	}
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %#v", segments)
	}
	if segments[1].Style != StyleBold || segments[1].Text != "bold" {
		t.Fatalf("unexpected middle segment: %#v", segments[1])
	}
}
