package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/florist/internal/urls"
	"github.com/muurk/florist/internal/version"
)

// Application branding constants
const (
	AppName   = "FLORIST"
	GitHubURL = urls.RepositoryDisplay
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants. The table fits without wrapping from DefaultWidth up.
const (
	DefaultWidth  = 100
	DefaultHeight = 32
	LabelWidth    = 14
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor  = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Width(LabelWidth).
			Foreground(SubtleColor)

	FocusedLabelStyle = lipgloss.NewStyle().
				Width(LabelWidth).
				Foreground(HighlightColor).
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(BackgroundColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	EditingStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	AlertBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 4)

	AlertHintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(false)

	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)
)

// TableStyles returns the bubbles/table styles for the flower list.
// The selected row is only highlighted while the table has focus.
func TableStyles(focused bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(BackgroundColor).
			Background(HighlightColor).
			Bold(true)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	return s
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-screen frame:
// header with name and version, the content, and a help footer, inside a
// bordered panel sized to the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := BuildFooterContent(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// RenderModal centers modal content on a dimmed full-screen background.
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// RenderAlert renders the blocking alert box with its dismiss hint
func RenderAlert(message string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		"⚠ "+message,
		"",
		AlertHintStyle.Render("enter/esc to dismiss"),
	)
	return AlertBoxStyle.Render(body)
}

// SafeWidth returns terminalWidth, or the default when the terminal size is
// not known yet (before the first tea.WindowSizeMsg).
func SafeWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		return DefaultWidth
	}
	return terminalWidth
}

// SafeHeight is SafeWidth for the vertical axis.
func SafeHeight(terminalHeight int) int {
	if terminalHeight <= 0 {
		return DefaultHeight
	}
	return terminalHeight
}
