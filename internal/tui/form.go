package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/florist/internal/flower"
)

// Submit button labels
const (
	AddLabel    = "Add"
	UpdateLabel = "Update"
)

// SubmitFocus is the focus slot of the submit button, right after the five inputs.
var SubmitFocus = len(flower.Fields)

// FormModel holds the five record inputs and the submit button.
//
// The form never mutates the list itself. The parent reads Values on submit,
// builds the record, and calls Reset once the record has been stored.
type FormModel struct {
	Inputs []textinput.Model // Indexed by flower.Field
	Focus  int               // 0-4 for inputs, SubmitFocus for the button, -1 when the form is blurred
	Width  int
}

// NewFormModel creates an empty form with no field focused
func NewFormModel() FormModel {
	inputs := make([]textinput.Model, len(flower.Fields))
	for _, f := range flower.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.String() + ".."
		ti.CharLimit = 256
		ti.Width = 40
		ti.PlaceholderStyle = BlurredInputStyle
		inputs[f] = ti
	}

	return FormModel{
		Inputs: inputs,
		Focus:  -1,
	}
}

// Values returns the raw, untrimmed value of every input keyed by field
func (m FormModel) Values() map[flower.Field]string {
	values := make(map[flower.Field]string, len(m.Inputs))
	for _, f := range flower.Fields {
		values[f] = m.Inputs[f].Value()
	}
	return values
}

// Value returns the raw value of one input
func (m FormModel) Value(f flower.Field) string {
	return m.Inputs[f].Value()
}

// SetValue replaces the value of one input
func (m *FormModel) SetValue(f flower.Field, value string) {
	m.Inputs[f].SetValue(value)
}

// Reset clears all five inputs. Focus is left where it is.
func (m *FormModel) Reset() {
	for i := range m.Inputs {
		m.Inputs[i].Reset()
	}
}

// FocusSlot moves focus to an input or the submit button.
// Any other slot blurs the whole form.
func (m *FormModel) FocusSlot(slot int) tea.Cmd {
	m.Blur()
	if slot < 0 || slot > SubmitFocus {
		return nil
	}

	m.Focus = slot
	if slot < SubmitFocus {
		return m.Inputs[slot].Focus()
	}
	return nil
}

// Blur removes focus from every input and the button
func (m *FormModel) Blur() {
	for i := range m.Inputs {
		m.Inputs[i].Blur()
	}
	m.Focus = -1
}

// OnSubmitButton reports whether the submit button has focus
func (m FormModel) OnSubmitButton() bool {
	return m.Focus == SubmitFocus
}

// Focused reports whether any part of the form has focus
func (m FormModel) Focused() bool {
	return m.Focus >= 0
}

// Update forwards input to the focused text field
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if m.Focus < 0 || m.Focus >= SubmitFocus {
		return m, nil
	}

	var cmd tea.Cmd
	m.Inputs[m.Focus], cmd = m.Inputs[m.Focus].Update(msg)
	return m, cmd
}

// SubmitLabel returns the submit button text for the current mode
func SubmitLabel(editing bool) string {
	if editing {
		return UpdateLabel
	}
	return AddLabel
}

// View renders the labeled inputs and the submit button.
// editing switches the button label between Add and Update.
func (m FormModel) View(editing bool) string {
	lines := make([]string, 0, len(m.Inputs)+2)

	for _, f := range flower.Fields {
		labelStyle := LabelStyle
		arrow := "  "
		if m.Focus == int(f) {
			labelStyle = FocusedLabelStyle
			arrow = "→ "
		}

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
			arrow,
			labelStyle.Render(f.String()),
			m.Inputs[f].View(),
		))
	}

	buttonStyle := ButtonStyle
	if m.OnSubmitButton() {
		buttonStyle = FocusedButtonStyle
	}
	button := buttonStyle.Render("[ " + SubmitLabel(editing) + " ]")

	lines = append(lines, "", lipgloss.NewStyle().PaddingLeft(2+LabelWidth).Render(button))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
