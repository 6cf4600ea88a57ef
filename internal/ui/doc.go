// Package ui renders the static output of non-interactive florist commands.
//
// Unlike the tui package, nothing here reads input. Output is rendered once
// with lipgloss and written through a Printer:
//
//	p := ui.NewPrinter(os.Stdout)
//	if err := p.PrintFlowers(records, ui.FormatTable, "built-in"); err != nil {
//	    return err
//	}
//
// The table format is sized to the terminal with golang.org/x/term and drawn
// with lipgloss/table. When stdout is not a terminal the width falls back to
// MinTerminalWidth. The json and yaml formats print the plain record list,
// which is also a valid seed file.
package ui
