package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperjump/kousei/internal/models"
)

// PDF renders the summary and suggestions as a one-page(ish) PDF document.
// Layout is intentionally minimal: a title, the metric lines, and one bullet
// per suggestion.
func PDF(result *models.AnalysisResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "PDF Suggestions Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(2)

	pdf.MultiCell(0, 5, fmt.Sprintf("Words: %d", result.Summary.Words), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Sentences: %d", result.Summary.Sentences), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Avg words / sentence: %.2f", result.Summary.AvgWordsPerSentence), "", "L", false)

	if r := result.Readability; r != nil {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, "Readability", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, fmt.Sprintf("Flesch Reading Ease: %.1f", r.FleschReadingEase), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Flesch-Kincaid Grade: %.1f", r.FleschKincaidGrade), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("SMOG Index: %.1f", r.SMOGIndex), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Dale-Chall Score: %.2f", r.DaleChallScore), "", "L", false)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Suggestions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, s := range result.Suggestions {
		pdf.MultiCell(0, 5, "- "+s, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}
