package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depscout/pkg/scan"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary accents
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleName    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleCount   = lipgloss.NewStyle().Foreground(colorWhite)
	stylePath    = lipgloss.NewStyle().Foreground(colorDim)
	styleMiss    = lipgloss.NewStyle().Foreground(colorYellow)
	styleSummary = lipgloss.NewStyle().Foreground(colorDim)

	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconWarning = "!"
	iconError   = "✗"
	iconSuccess = "✓"
)

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + styleMiss.Render(msg))
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// renderResults prints the per-name query results: a count line for each
// requested dependency followed by the declaring file paths, indented.
func renderResults(requested []string, matches map[string][]string) {
	for _, name := range requested {
		paths := matches[name]
		if len(paths) == 0 {
			fmt.Printf("%s %s found in %s\n",
				styleIconWarning.Render(iconWarning),
				styleName.Render(fmt.Sprintf("%q", name)),
				styleMiss.Render("0 files"))
			continue
		}
		fmt.Printf("%s %s found in %s:\n",
			styleIconSuccess.Render(iconSuccess),
			styleName.Render(fmt.Sprintf("%q", name)),
			styleCount.Render(fmt.Sprintf("%d files", len(paths))))
		for _, p := range paths {
			fmt.Println("    " + stylePath.Render(p))
		}
	}
}

// renderSummary prints the scan counters on one dim line.
func renderSummary(report *scan.Report) {
	parts := []string{
		fmt.Sprintf("%d files scanned", report.FilesScanned),
		fmt.Sprintf("%d manifests parsed", report.FilesParsed),
		fmt.Sprintf("%d unique dependencies", report.Index.Len()),
	}
	if report.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", report.Warnings))
	}
	fmt.Println(styleSummary.Render(strings.Join(parts, " · ")))
}
