// Package report renders an analysis result as a downloadable artifact:
// the Markdown suggestions report, a simple PDF rendering of it, and an
// XLSX workbook with the detailed issue lists.
package report

import "strings"

// MarkdownFilename is the default name of the downloadable Markdown report.
const MarkdownFilename = "pdf_suggestions_report.md"

// markdownTitle is the fixed title line of the report.
const markdownTitle = "# PDF Suggestions Report"

// Markdown renders the suggestions report: the title line followed by one
// bullet per suggestion. The bullet count always equals the suggestion count.
func Markdown(suggestions []string) string {
	lines := make([]string, 0, len(suggestions)+1)
	lines = append(lines, markdownTitle)
	for _, s := range suggestions {
		lines = append(lines, "- "+s)
	}
	return strings.Join(lines, "\n")
}
