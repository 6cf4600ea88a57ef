package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/florist/internal/flower"
	"github.com/muurk/florist/internal/logging"
)

// TableFocus is the focus slot of the flower table, after the submit button.
var TableFocus = SubmitFocus + 1

var focusSlots = TableFocus + 1

// Vertical space taken by everything except the table rows
const reservedHeight = 22

// AppModel owns the flower list and the edit target, and coordinates the
// form and the table. All mutations happen here, inside Update.
type AppModel struct {
	// Shared application state
	Store  *flower.Store
	Target flower.EditTarget

	// Child views
	Form  FormModel
	Table TableModel

	// Focus is 0-4 for inputs, SubmitFocus, or TableFocus
	Focus int

	// Alert is the blocking validation message; empty when no alert is showing
	Alert string

	// Status describes the last action, e.g. "Added Rose"
	Status string

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys KeyMap
}

// NewAppModel creates the application around a seeded store.
// Focus starts on the name field with no edit target.
func NewAppModel(store *flower.Store) AppModel {
	if store == nil {
		store = flower.NewStore(nil)
	}

	m := AppModel{
		Store:  store,
		Target: flower.NoTarget,
		Form:   NewFormModel(),
		Table:  NewTableModel(store.Records()),
		Help:   help.New(),
		Keys:   DefaultKeyMap(),
	}
	m.setFocus(int(flower.FieldName))

	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Table.SetSize(msg.Width, msg.Height-reservedHeight)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ForceQuit) {
			return m, tea.Quit
		}

		// The alert blocks everything until dismissed
		if m.Alert != "" {
			if key.Matches(msg, m.Keys.Alert.Dismiss) {
				m.Alert = ""
			}
			return m, nil
		}

		if m.Focus == TableFocus {
			return m.updateTable(msg)
		}
		return m.updateForm(msg)
	}

	return m, nil
}

// updateForm handles keys while an input or the submit button has focus
func (m AppModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Form.Submit):
		return m.submit()

	case key.Matches(msg, m.Keys.Form.Next):
		return m, m.setFocus(m.Focus + 1)

	case key.Matches(msg, m.Keys.Form.Prev):
		return m, m.setFocus(m.Focus - 1)
	}

	switch msg.String() {
	case "enter":
		if m.Form.OnSubmitButton() {
			return m.submit()
		}
		return m, m.setFocus(m.Focus + 1)

	case "down":
		return m, m.setFocus(m.Focus + 1)

	case "up":
		return m, m.setFocus(m.Focus - 1)
	}

	if m.Form.OnSubmitButton() {
		if msg.String() == " " {
			return m.submit()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)
	return m, cmd
}

// updateTable handles keys while the flower table has focus
func (m AppModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Table.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Table.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Table.Next):
		return m, m.setFocus(m.Focus + 1)

	case key.Matches(msg, m.Keys.Form.Prev):
		return m, m.setFocus(m.Focus - 1)

	case key.Matches(msg, m.Keys.Table.Edit):
		return m.editSelected()

	case key.Matches(msg, m.Keys.Table.Delete):
		return m.deleteSelected()
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// setFocus moves focus to slot, wrapping around the focus ring
func (m *AppModel) setFocus(slot int) tea.Cmd {
	slot = ((slot % focusSlots) + focusSlots) % focusSlots
	m.Focus = slot

	if slot == TableFocus {
		m.Form.Blur()
		m.Table.Focus()
		return nil
	}

	m.Table.Blur()
	return m.Form.FocusSlot(slot)
}

// submit turns the form values into a record and stores it.
// An incomplete form raises the alert and leaves the list and inputs untouched.
func (m AppModel) submit() (tea.Model, tea.Cmd) {
	record, err := flower.FromValues(m.Form.Values())
	if err != nil {
		logging.LogValidationFailure(err)
		m.Alert = flower.UserMessage(err)
		return m, nil
	}

	if m.Target.IsSet() {
		index := m.Target.Index()
		m.Store.AppendOrUpdate(record, m.Target)
		logging.LogMutation("update", index, m.Store.Len())
		m.Target = flower.NoTarget
		logging.LogEditTarget(m.Target)
		if index < m.Store.Len() {
			m.Status = fmt.Sprintf("Updated row %d", index+1)
		} else {
			m.Status = fmt.Sprintf("Row %d no longer exists, nothing updated", index+1)
		}
	} else {
		m.Store.AppendOrUpdate(record, flower.NoTarget)
		logging.LogMutation("append", -1, m.Store.Len())
		m.Status = "Added " + record.Name
	}

	m.Form.Reset()
	m.Table.SetRecords(m.Store.Records())

	return m, nil
}

// editSelected makes the selected row the edit target and moves focus to the form.
// The inputs are not filled with the row's current values.
func (m AppModel) editSelected() (tea.Model, tea.Cmd) {
	if m.Store.Len() == 0 {
		return m, nil
	}

	m.Target = flower.TargetAt(m.Table.Cursor())
	logging.LogEditTarget(m.Target)
	m.Status = fmt.Sprintf("Editing row %d", m.Target.Index()+1)

	return m, m.setFocus(int(flower.FieldName))
}

// deleteSelected removes the selected row. The edit target is left as is,
// even if it now points at a shifted record.
func (m AppModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.Store.Len() == 0 {
		return m, nil
	}

	index := m.Table.Cursor()
	m.Store.DeleteAt(index)
	logging.LogMutation("delete", index, m.Store.Len())
	m.Table.SetRecords(m.Store.Records())
	m.Status = fmt.Sprintf("Deleted row %d", index+1)

	return m, nil
}

// Editing reports whether the form will update an existing row
func (m AppModel) Editing() bool {
	return m.Target.IsSet()
}

// View renders the application
func (m AppModel) View() string {
	width, height := SafeWidth(m.Width), SafeHeight(m.Height)

	if m.Alert != "" {
		return RenderModal(RenderAlert(m.Alert), width, height)
	}

	return RenderApplicationContainer(m.buildContent(), m.helpView(), width, height)
}

// helpView renders the help footer for the focused area
func (m AppModel) helpView() string {
	if m.Focus == TableFocus {
		return m.Help.View(m.Keys.Table)
	}
	return m.Help.View(m.Keys.Form)
}

// buildContent renders the form, the status line, and the table
func (m AppModel) buildContent() string {
	formTitle := "Add a flower"
	tableTitle := SectionTitleStyle.Render(fmt.Sprintf("Flowers (%d)", m.Store.Len()))
	if m.Editing() {
		formTitle = "Update a flower"
		tableTitle += "  " + EditingStyle.Render(fmt.Sprintf("Editing row %d", m.Target.Index()+1))
	}

	var status string
	if m.Status != "" {
		status = StatusStyle.Render("✓ " + m.Status)
	}

	divider := lipgloss.NewStyle().
		Foreground(BorderColor).
		Render(strings.Repeat("─", 60))

	return lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render(formTitle),
		"",
		m.Form.View(m.Editing()),
		"",
		status,
		divider,
		tableTitle,
		m.Table.View(),
	)
}
