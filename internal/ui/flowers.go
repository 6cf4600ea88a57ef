package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/florist/internal/flower"
)

// FlowerHeaders are the column headers of the printed table
func FlowerHeaders() []string {
	headers := make([]string, len(flower.Fields))
	for i, f := range flower.Fields {
		headers[i] = f.String()
	}
	return headers
}

// RenderFlowerTable renders records as a bordered table no wider than width.
// An empty list still renders the header row.
func RenderFlowerTable(records []flower.Flower, width int) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Values())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case row%2 == 0:
				return TableAltCellStyle
			default:
				return TableCellStyle
			}
		}).
		Headers(FlowerHeaders()...).
		Rows(rows...).
		Width(ClampWidth(width))

	return t.String()
}

// RenderFlowerHeader renders the one-line title above the printed table
func RenderFlowerHeader(count int, source string) string {
	noun := "records"
	if count == 1 {
		noun = "record"
	}
	return HeaderTitleStyle.Render("FLOWERS") + "  " +
		HeaderNoteStyle.Render(fmt.Sprintf("%d %s · %s", count, noun, source))
}
