package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/florist/internal/flower"
)

// ActionCell is what every row shows in the Action column
const ActionCell = "[e]dit [d]elete"

// Column titles, in display order
var ColumnTitles = []string{"Name", "Color", "Species", "Habitat", "Description", "Action"}

// Fixed column widths; Description takes whatever is left
var fixedColumnWidths = []int{12, 8, 16, 14}

const (
	actionColumnWidth   = len(ActionCell)
	minDescriptionWidth = 12
	cellPadding         = 2 // table.DefaultStyles pads every cell by one on each side
	tableChrome         = 8 // outer border, container padding, and selection slack
	minTableHeight      = 3
)

// TableModel renders the flower list through bubbles/table.
// Row i always shows store record i; rows carry no other key.
type TableModel struct {
	Table table.Model
	Width int
}

// NewTableModel creates a blurred table showing records
func NewTableModel(records []flower.Flower) TableModel {
	km := table.DefaultKeyMap()
	// d deletes rows, so half-page down keeps only its ctrl binding
	km.HalfPageDown.SetKeys("ctrl+d")
	km.HalfPageUp.SetKeys("ctrl+u")

	t := table.New(
		table.WithColumns(ColumnsForWidth(DefaultWidth)),
		table.WithRows(RowsFor(records)),
		table.WithFocused(false),
		table.WithHeight(10),
		table.WithKeyMap(km),
		table.WithStyles(TableStyles(false)),
	)

	return TableModel{
		Table: t,
		Width: DefaultWidth,
	}
}

// RowsFor builds one table row per record, in list order
func RowsFor(records []flower.Flower) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		row := append(table.Row{}, r.Values()...)
		row = append(row, ActionCell)
		rows = append(rows, row)
	}
	return rows
}

// ColumnsForWidth lays out the six columns for a terminal of the given width
func ColumnsForWidth(terminalWidth int) []table.Column {
	used := tableChrome + actionColumnWidth + cellPadding
	for _, w := range fixedColumnWidths {
		used += w + cellPadding
	}
	descWidth := SafeWidth(terminalWidth) - used - cellPadding
	if descWidth < minDescriptionWidth {
		descWidth = minDescriptionWidth
	}

	widths := append(append([]int{}, fixedColumnWidths...), descWidth, actionColumnWidth)
	columns := make([]table.Column, len(ColumnTitles))
	for i, title := range ColumnTitles {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}
	return columns
}

// SetRecords replaces every row and pulls the cursor back onto the last
// row when the list shrinks past it. SetRows leaves the cursor alone.
// An empty table keeps its cursor until rows come back.
func (m *TableModel) SetRecords(records []flower.Flower) {
	m.Table.SetRows(RowsFor(records))

	n := len(records)
	if n == 0 {
		return
	}
	if c := m.Table.Cursor(); c >= n || c < 0 {
		m.Table.SetCursor(n - 1)
	}
}

// SetSize adapts column widths and visible rows to the terminal
func (m *TableModel) SetSize(width, height int) {
	m.Width = width
	m.Table.SetColumns(ColumnsForWidth(width))
	if height < minTableHeight {
		height = minTableHeight
	}
	m.Table.SetHeight(height)
}

// Cursor returns the index of the selected row
func (m TableModel) Cursor() int {
	return m.Table.Cursor()
}

// Len returns the number of rows
func (m TableModel) Len() int {
	return len(m.Table.Rows())
}

// Focus gives the table keyboard focus and highlights the selected row
func (m *TableModel) Focus() {
	m.Table.Focus()
	m.Table.SetStyles(TableStyles(true))
}

// Blur removes keyboard focus
func (m *TableModel) Blur() {
	m.Table.Blur()
	m.Table.SetStyles(TableStyles(false))
}

// Focused reports whether the table has keyboard focus
func (m TableModel) Focused() bool {
	return m.Table.Focused()
}

// Update forwards navigation keys to bubbles/table
func (m TableModel) Update(msg tea.Msg) (TableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// View renders the table
func (m TableModel) View() string {
	return m.Table.View()
}
