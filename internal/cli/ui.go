package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(msg))
}

func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+styleDim.Render(msg))
}

// pageSummary describes one written atlas page.
type pageSummary struct {
	image     string
	manifest  string
	width     int
	height    int
	frames    int
	occupancy float64
}

// printSummary prints the pages written by a pack run.
func printSummary(w io.Writer, textures int, pages []pageSummary) {
	fmt.Fprintln(w, styleTitle.Render("texpack"))
	printSuccess(w, "Packed %s textures into %s page(s)",
		styleNumber.Render(fmt.Sprint(textures)), styleNumber.Render(fmt.Sprint(len(pages))))

	for _, p := range pages {
		fmt.Fprintf(w, "  %s %s  %s  %s frames  %s used\n",
			iconArrow,
			styleValue.Render(p.image),
			styleNumber.Render(fmt.Sprintf("%dx%d", p.width, p.height)),
			styleNumber.Render(fmt.Sprint(p.frames)),
			styleNumber.Render(fmt.Sprintf("%.1f%%", p.occupancy*100)),
		)
		printDetail(w, "manifest %s", p.manifest)
	}
}

// vim: ts=4
