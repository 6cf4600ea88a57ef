// Package tui implements the interactive flower table.
//
// The screen has two parts: a record form with five inputs and a submit
// button, and a table listing every flower with edit and delete actions.
// Built on Bubble Tea, it follows the Elm architecture; AppModel owns the
// flower.Store and the edit target and is the only place either changes.
//
// # Usage Example
//
//	store := flower.NewStore(flower.DefaultSeed())
//	program := tea.NewProgram(tui.NewAppModel(store), tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Focus
//
// Tab and shift+tab move through a single focus ring:
//
//  1. The Name, Color, Species, Habitat and Description inputs
//  2. The submit button, labelled Add or Update
//  3. The flower table
//
// Enter on an input moves to the next one; enter on the button (or ctrl+s
// anywhere in the form) submits.
//
// # Editing
//
// Pressing e on a table row makes that row the edit target and moves focus
// to the form. The inputs keep whatever they held; the next valid submit
// replaces the row and clears the target. Pressing d removes the row under
// the cursor. Deleting never clears the target, so a target can end up
// pointing at a shifted record or past the end of the list.
//
// # Validation
//
// Submitting with any input empty after trimming shows a blocking alert
// ("All fields are required!"). Every key except enter, esc and space is
// ignored until it is dismissed, and the form keeps its values.
package tui
