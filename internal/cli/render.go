// Package cli renders plans and payday lists for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorText   = lipgloss.Color("#FFFCF0")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	surplusStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	shortfallStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// Table is a bordered text table. The first column is left aligned,
// all others are right aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a title in a rounded box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Render(titleStyle.Render(title))
}

func (t Table) columns() int {
	columns := len(t.Headers)
	for _, row := range t.Rows {
		columns = max(columns, len(row))
	}

	return columns
}

func (t Table) widths() []int {
	widths := make([]int, t.columns())
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	return widths
}

// line renders a horizontal border line.
func line(widths []int, left, middle, right string) string {
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		parts = append(parts, strings.Repeat("─", w+2))
	}

	return borderStyle.Render(left+strings.Join(parts, middle)+right) + "\n"
}

// pad pads a cell to width. lipgloss.Width is used so that multi-byte
// currency symbols are measured correctly.
func pad(cell string, width int, right bool) string {
	fill := strings.Repeat(" ", max(width-lipgloss.Width(cell), 0))
	if right {
		return " " + fill + cell + " "
	}

	return " " + cell + fill + " "
}

func row(cells []string, widths []int, style lipgloss.Style) string {
	var b strings.Builder

	b.WriteString(borderStyle.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		b.WriteString(style.Render(pad(cell, w, i > 0)))
		b.WriteString(borderStyle.Render("│"))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderTable renders the table. A table without headers and rows renders
// as an empty string.
func RenderTable(t Table) string {
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return ""
	}

	widths := t.widths()

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(fmt.Sprintf("  %s\n", headerStyle.Render(t.Title)))
	}

	b.WriteString(line(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(row(t.Headers, widths, headerStyle))
		b.WriteString(line(widths, "├", "┼", "┤"))
	}

	for _, r := range t.Rows {
		b.WriteString(row(r, widths, valueStyle))
	}
	b.WriteString(line(widths, "╰", "┴", "╯"))

	return b.String()
}
