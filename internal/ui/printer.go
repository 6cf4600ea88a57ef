package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/florist/internal/flower"
)

// Output formats for PrintFlowers
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted output formats
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// Printer provides methods for printing UI components to a writer.
// Commands that print once and exit write through it instead of running a TUI.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = ClampWidth(width)
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints an error result box
func (p *Printer) PrintError(title string, err error) {
	p.Println(NewFailureResult(title, err).SetWidth(p.width).Render())
}

// PrintFlowers writes records in the given format. The table format adds a
// title line naming source; json and yaml print the bare list so the output
// can be fed back in as a seed file.
func (p *Printer) PrintFlowers(records []flower.Flower, format, source string) error {
	if records == nil {
		records = []flower.Flower{}
	}

	switch format {
	case FormatTable, "":
		p.Println(RenderFlowerHeader(len(records), source))
		p.Println(RenderFlowerTable(records, p.width))
		return nil

	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode flowers as JSON: %w", err)
		}
		p.Println(string(data))
		return nil

	case FormatYAML:
		data, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("failed to encode flowers as YAML: %w", err)
		}
		p.Print(string(data))
		return nil

	default:
		return fmt.Errorf("unsupported format %q (expected one of %v)", format, Formats)
	}
}
