// File path: internal/markdown/parser_test.go
package markdown

import (
	"reflect"
	"testing"
)

// body strips the fixed attribution footer so tests can assert on the
// content blocks alone.
func body(t *testing.T, text string) []Block {
	t.Helper()
	blocks := Parse(text)
	if len(blocks) < 2 {
		t.Fatalf("expected footer blocks, got %#v", blocks)
	}
	if _, ok := blocks[len(blocks)-2].(Spacer); !ok {
		t.Fatalf("expected spacer before footer, got %#v", blocks[len(blocks)-2])
	}
	footer, ok := blocks[len(blocks)-1].(Paragraph)
	if !ok {
		t.Fatalf("expected footer paragraph, got %#v", blocks[len(blocks)-1])
	}
	if footer.Text.Text != "Generated by the Shift Handover Intelligence service" {
		t.Fatalf("unexpected footer text: %q", footer.Text.Text)
	}
	return blocks[:len(blocks)-2]
}

func TestParseHeadingPriority(t *testing.T) {
	blocks := body(t, "## Head\n### Sub")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %#v", blocks)
	}
	h2, ok := blocks[0].(Heading)
	if !ok || h2.Level != 2 || h2.Text.Text != "Head" {
		t.Fatalf("unexpected first block: %#v", blocks[0])
	}
	h3, ok := blocks[1].(Heading)
	if !ok || h3.Level != 3 || h3.Text.Text != "Sub" {
		t.Fatalf("unexpected second block: %#v", blocks[1])
	}
}

func TestParseTitleGetsExtraSpacer(t *testing.T) {
	blocks := body(t, "# Title")
	if len(blocks) != 2 {
		t.Fatalf("expected heading plus spacer, got %#v", blocks)
	}
	h1, ok := blocks[0].(Heading)
	if !ok || h1.Level != 1 || h1.Text.Text != "Title" {
		t.Fatalf("unexpected heading: %#v", blocks[0])
	}
	if _, ok := blocks[1].(Spacer); !ok {
		t.Fatalf("expected spacer after title, got %#v", blocks[1])
	}
}

func TestParseBulletListBoundary(t *testing.T) {
	blocks := body(t, "- a\n- b\n\nNot a list")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %#v", blocks)
	}
	list, ok := blocks[0].(BulletList)
	if !ok {
		t.Fatalf("expected bullet list, got %#v", blocks[0])
	}
	items := []string{list.Items[0].Text, list.Items[1].Text}
	if !reflect.DeepEqual(items, []string{"a", "b"}) {
		t.Fatalf("unexpected items: %#v", items)
	}
	if _, ok := blocks[1].(Spacer); !ok {
		t.Fatalf("expected spacer after list, got %#v", blocks[1])
	}
	para, ok := blocks[2].(Paragraph)
	if !ok || para.Text.Text != "Not a list" {
		t.Fatalf("unexpected paragraph: %#v", blocks[2])
	}
}

func TestParseMixedBulletMarkers(t *testing.T) {
	blocks := body(t, "* one\n- two")
	list, ok := blocks[0].(BulletList)
	if !ok || len(list.Items) != 2 {
		t.Fatalf("expected one list with 2 items, got %#v", blocks)
	}
}

func TestParseNumberedListRenumbers(t *testing.T) {
	blocks := body(t, "3. first\n7. second\nplain")
	if len(blocks) != 2 {
		t.Fatalf("expected list and paragraph, got %#v", blocks)
	}
	list, ok := blocks[0].(NumberedList)
	if !ok || len(list.Items) != 2 {
		t.Fatalf("expected numbered list with 2 items, got %#v", blocks[0])
	}
	// Source digits are discarded; items carry only the text.
	if list.Items[0].Text != "first" || list.Items[1].Text != "second" {
		t.Fatalf("unexpected items: %#v", list.Items)
	}
}

func TestParseCodeBlockVerbatim(t *testing.T) {
	blocks := body(t, "```\n**not bold**\n```\n**bold**")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %#v", blocks)
	}
	code, ok := blocks[0].(CodeBlock)
	if !ok || code.Text != "**not bold**" {
		t.Fatalf("unexpected code block: %#v", blocks[0])
	}
	para, ok := blocks[1].(Paragraph)
	if !ok || para.Text.Text != "bold" {
		t.Fatalf("unexpected paragraph: %#v", blocks[1])
	}
	if len(para.Text.Spans) != 1 || para.Text.Spans[0].Style != StyleBold {
		t.Fatalf("expected bold span in paragraph, got %#v", para.Text.Spans)
	}
}

func TestParseUnterminatedFenceClosesAtEOF(t *testing.T) {
	blocks := body(t, "```json\nline one\nline two")
	code, ok := blocks[0].(CodeBlock)
	if !ok || code.Text != "line one\nline two" {
		t.Fatalf("unexpected code block: %#v", blocks[0])
	}
}

func TestParseBlankLinesBecomeSpacers(t *testing.T) {
	blocks := body(t, "a\n\nb")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %#v", blocks)
	}
	if _, ok := blocks[1].(Spacer); !ok {
		t.Fatalf("expected spacer, got %#v", blocks[1])
	}
}

func TestParseDeterministic(t *testing.T) {
	const text = "# R\n\n- **a**\n1. x\n```\ncode\n```\npara"
	first := Parse(text)
	second := Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parse is not deterministic")
	}
}
