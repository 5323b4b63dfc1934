package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderPDF renders the report snapshot into a PDF document. The creation
// date is pinned so rendering the same snapshot twice produces identical
// bytes.
func RenderPDF(data Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.AddPage()

	// Core PDF fonts are cp1252; translate what we can and drop the rest.
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, Title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	for _, field := range data.Profile {
		pdf.MultiCell(0, 8, translate(sanitize(fmt.Sprintf("%s: %s", field.Name, field.Value))), "", "L", false)
	}

	writeSection(pdf, translate, "Technical Questions", data.TechnicalQuestions)
	writeSection(pdf, translate, "Coding Questions", data.CodingQuestions)
	writeSection(pdf, translate, "Recommended Jobs", data.JobRecommendations)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, translate func(string) string, heading string, items []string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)

	for _, item := range items {
		pdf.MultiCell(0, 8, translate(sanitize("- "+item)), "", "L", false)
	}
}

// sanitize replaces runes outside the cp1252-translatable range.
func sanitize(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r > 0xFF {
			runes[i] = '?'
		}
	}
	return string(runes)
}
