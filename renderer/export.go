package renderer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/orcas"
	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Format is an output format of a report.
type Format string

const (
	Markdown Format = "md"
	CSV      Format = "csv"
	HTML     Format = "html"
	PDF      Format = "pdf"
	JSON     Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{Markdown, CSV, HTML, PDF, JSON}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, want one of %v", s, Formats)
}

// Export writes r to w in the format f. Every format is built from the same
// display strings, so an exported value always reads as it does on screen.
func Export(w io.Writer, r orcas.Tabular, f Format) error {
	switch f {
	case Markdown:
		_, err := io.WriteString(w, Render(r))
		return err
	case CSV:
		return WriteCSV(w, r)
	case HTML:
		return WriteHTML(w, Render(r))
	case PDF:
		return WritePDF(w, r)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// WriteCSV writes every table of r, each preceded by its title and
// separated by an empty line.
func WriteCSV(w io.Writer, r orcas.Tabular) error {
	cw := csv.NewWriter(w)
	for i, t := range r.Tables() {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{t.Title}); err != nil {
			return err
		}
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHTML converts a markdown rendition to a standalone HTML document.
func WriteHTML(w io.Writer, markdown string) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return fmt.Errorf("converting markdown to HTML: %w", err)
	}
	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: sans-serif; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 2px 6px; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

const (
	pageWidth  = 190.0
	lineHeight = 6.0
)

// WritePDF writes r as a PDF document of plain tables.
func WritePDF(w io.Writer, r orcas.Tabular) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()
	// Core fonts are cp1252: translate the em dash and the like.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(r.Heading()), "", 1, "L", false, 0, "")

	for _, t := range r.Tables() {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, tr(t.Title), "", 1, "L", false, 0, "")
		if len(t.Columns) == 0 {
			continue
		}
		width := pageWidth / float64(len(t.Columns))

		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range t.Columns {
			pdf.CellFormat(width, lineHeight, tr(c), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 8)
		for _, row := range t.Rows {
			for i := range t.Columns {
				var cell string
				if i < len(row) {
					cell = row[i]
				}
				align := "R"
				if i == 0 {
					align = "L"
				}
				pdf.CellFormat(width, lineHeight, tr(fit(pdf, cell, width-2)), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF output: %w", err)
	}
	return nil
}

// fit truncates s so it fits in width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
