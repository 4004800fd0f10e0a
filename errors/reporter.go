package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders errors against the declaration text they came from.
type Reporter struct {
	origin string
}

// NewReporter creates a reporter; origin names where the source came from
// (a kernel name, a file) and is shown in the location line.
func NewReporter(origin string) *Reporter {
	return &Reporter{origin: origin}
}

// Format formats an error with its code, the offending source line and a
// caret marker under the reported span.
func (r *Reporter) Format(err *Error) string {
	var result strings.Builder

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0200]: message
	result.WriteString(fmt.Sprintf("%s[%s]: %s\n", red("error"), err.Code, err.Message))

	if err.Position == nil || err.Source == "" {
		r.writeNotes(&result, err, "   ")
		result.WriteString("\n")
		return result.String()
	}

	lines := strings.Split(err.Source, "\n")
	lineNumberWidth := getLineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.origin, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if err.Position.Line > 0 && err.Position.Line <= len(lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("│"),
			lines[err.Position.Line-1]))

		marker := createMarker(err.Position.Column, err.Length)
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	r.writeNotes(&result, err, indent)
	result.WriteString("\n")
	return result.String()
}

func (r *Reporter) writeNotes(result *strings.Builder, err *Error, indent string) {
	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, noteColor("note:"), note))
	}

	helpColor := color.New(color.FgGreen).SprintFunc()
	if desc := GetErrorDescription(err.Code); desc != "Unknown error code" {
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, helpColor("help:"), desc))
	}
}

// createMarker creates the underline marker for errors
func createMarker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return spaces + markerColor(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
