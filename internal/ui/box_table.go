package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one styled value in a box-table row.
type cell struct {
	text  string
	style lipgloss.Style
}

// renderBoxTable draws a bordered table with a styled header row. Every row
// must have one cell per column width.
func renderBoxTable(headers []string, widths []int, rows [][]cell) string {
	var sb strings.Builder

	border := func(left, mid, right string) {
		sb.WriteString(BorderStyle.Render(left))
		for i, w := range widths {
			sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
			if i < len(widths)-1 {
				sb.WriteString(BorderStyle.Render(mid))
			}
		}
		sb.WriteString(BorderStyle.Render(right))
		sb.WriteString("\n")
	}

	// Top border
	border(TopLeft, TopT, TopRight)

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		sb.WriteString(HeaderStyle.Render(" " + padRight(h, widths[i]) + " "))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	border(LeftT, Cross, RightT)

	// Data rows
	for _, row := range rows {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i, c := range row {
			sb.WriteString(c.style.Render(" " + padRight(c.text, widths[i]) + " "))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	// Bottom border
	border(BottomLeft, BottomT, BottomRight)

	return sb.String()
}

func printBoxTable(headers []string, widths []int, rows [][]cell, countLabel string) {
	fmt.Print(renderBoxTable(headers, widths, rows))
	fmt.Printf("  %d %s\n", len(rows), countLabel)
}
