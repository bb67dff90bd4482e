package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/kousei/internal/models"
)

// Workbook renders the detailed issue lists as an XLSX workbook, one sheet
// per check. Returns an error when the result has no detailed lists.
func Workbook(result *models.AnalysisResult) ([]byte, error) {
	d := result.Detailed
	if d == nil {
		return nil, fmt.Errorf("workbook: result has no detailed issue lists")
	}

	f := excelize.NewFile()
	defer f.Close()

	writeSentenceSheet(f, "Long Sentences", "Words", d.LongSentences)
	writeSentenceSheet(f, "Passive Voice", "", d.PassiveVoice)
	writeSentenceSheet(f, "Adverb Heavy", "Adverbs", d.AdverbHeavy)

	sheet := addSheet(f, "Duplicate Words", []string{"Word", "Context"})
	for i, issue := range d.DuplicateWords {
		setRow(f, sheet, i+2, issue.Word, issue.Context)
	}

	sheet = addSheet(f, "All Caps", []string{"Word", "Count"})
	for i, c := range d.AllCapsWords {
		setRow(f, sheet, i+2, c.Word, c.Count)
	}

	sheet = addSheet(f, "Long Bullets", []string{"Words", "Line"})
	for i, b := range d.LongBullets {
		setRow(f, sheet, i+2, b.WordCount, b.Line)
	}

	sheet = addSheet(f, "Spelling", []string{"Word", "Correction"})
	for i, p := range d.Spelling {
		setRow(f, sheet, i+2, p.Word, p.Correction)
	}

	// Drop the default sheet created by excelize.
	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSentenceSheet(f *excelize.File, name, countHeader string, issues []models.SentenceIssue) {
	headers := []string{"Sentence #"}
	if countHeader != "" {
		headers = append(headers, countHeader)
	}
	headers = append(headers, "Sentence")
	sheet := addSheet(f, name, headers)
	for i, issue := range issues {
		if countHeader != "" {
			setRow(f, sheet, i+2, issue.Index, issue.Count, issue.Sentence)
		} else {
			setRow(f, sheet, i+2, issue.Index, issue.Sentence)
		}
	}
}

func addSheet(f *excelize.File, name string, headers []string) string {
	_, _ = f.NewSheet(name)
	for i, h := range headers {
		cell := columnName(i) + "1"
		_ = f.SetCellValue(name, cell, h)
	}
	return name
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell := columnName(i) + strconv.Itoa(row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

// columnName returns the spreadsheet column letter for a zero-based index.
// The issue lists never exceed a handful of columns, so single letters suffice.
func columnName(i int) string {
	return string(rune('A' + i))
}
