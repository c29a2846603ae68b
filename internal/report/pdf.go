// File path: internal/report/pdf.go
package report

import (
	"bytes"
	"html"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/opsrelay/handover/internal/markdown"
)

// Page styling for the formatted report. Presentation constants only; the
// block sequence carries all content decisions.
const (
	pageMargin = 54 // 0.75in in points
	bodySize   = 11
	bodyLine   = 15
	codeSize   = 9
	codeLine   = 12
)

type headingStyle struct {
	size   float64
	color  string
	center bool
}

var headingStyles = map[int]headingStyle{
	1: {size: 28, color: "#1a3a52", center: true},
	2: {size: 18, color: "#2c5aa0"},
	3: {size: 14, color: "#34568B"},
}

// Render lays the block sequence out as a paginated PDF document.
func Render(blocks []markdown.Block) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle("Shift Handover Intelligence - Formatted Report", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, block := range blocks {
		switch b := block.(type) {
		case markdown.Heading:
			writeHeading(pdf, tr, b)
		case markdown.BulletList:
			for _, item := range b.Items {
				pdf.SetFont("Helvetica", "", bodySize)
				setColor(pdf, "#333333")
				pdf.Write(bodyLine, tr("• "))
				writeStyled(pdf, tr, item)
				pdf.Ln(bodyLine)
			}
			pdf.Ln(6)
		case markdown.NumberedList:
			for i, item := range b.Items {
				pdf.SetFont("Helvetica", "B", bodySize)
				setColor(pdf, "#333333")
				pdf.Write(bodyLine, strconv.Itoa(i+1)+". ")
				writeStyled(pdf, tr, item)
				pdf.Ln(bodyLine)
			}
			pdf.Ln(6)
		case markdown.CodeBlock:
			pdf.SetFont("Courier", "", codeSize)
			setColor(pdf, "#d9534f")
			pdf.MultiCell(0, codeLine, tr(b.Text), "", "L", false)
			pdf.Ln(4)
		case markdown.Paragraph:
			setColor(pdf, "#333333")
			writeStyled(pdf, tr, b.Text)
			pdf.Ln(bodyLine)
		case markdown.Spacer:
			pdf.Ln(8)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeHeading emits one heading line. Headings are always bold; italic
// spans in the source still switch the font per segment. The title style is
// centered by measuring the styled runs and offsetting the cursor.
func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, h markdown.Heading) {
	style, ok := headingStyles[h.Level]
	if !ok {
		style = headingStyles[3]
	}
	setColor(pdf, style.color)
	line := style.size * 1.2
	segments := h.Text.Segments()
	if style.center {
		var width float64
		for _, segment := range segments {
			pdf.SetFont("Helvetica", headingFontStyle(segment.Style), style.size)
			width += pdf.GetStringWidth(tr(html.UnescapeString(segment.Text)))
		}
		pageWidth, _ := pdf.GetPageSize()
		if offset := (pageWidth - width) / 2; offset > pageMargin {
			pdf.SetX(offset)
		}
	}
	for _, segment := range segments {
		pdf.SetFont("Helvetica", headingFontStyle(segment.Style), style.size)
		pdf.Write(line, tr(html.UnescapeString(segment.Text)))
	}
	pdf.Ln(line)
	pdf.Ln(4)
}

func headingFontStyle(st markdown.Style) string {
	fontStyle := "B"
	if st&markdown.StyleItalic != 0 {
		fontStyle += "I"
	}
	return fontStyle
}

// writeStyled emits the styled runs of one line, switching font style per
// segment. The caller finishes the line with Ln.
func writeStyled(pdf *fpdf.Fpdf, tr func(string) string, text markdown.StyledText) {
	for _, segment := range text.Segments() {
		fontStyle := ""
		if segment.Style&markdown.StyleBold != 0 {
			fontStyle += "B"
		}
		if segment.Style&markdown.StyleItalic != 0 {
			fontStyle += "I"
		}
		pdf.SetFont("Helvetica", fontStyle, bodySize)
		pdf.Write(bodyLine, tr(html.UnescapeString(segment.Text)))
	}
}

func setColor(pdf *fpdf.Fpdf, hex string) {
	r, g, b := hexColor(hex)
	pdf.SetTextColor(r, g, b)
}

func hexColor(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	value, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(value >> 16 & 0xff), int(value >> 8 & 0xff), int(value & 0xff)
}
