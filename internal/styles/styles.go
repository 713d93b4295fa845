// Package styles holds the terminal styles of the gplay CLI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/gplay/internal/model"
)

// Colors - a pleasant color palette
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Accent    = lipgloss.Color("#F59E0B") // Amber

	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red

	Border    = lipgloss.Color("#4B5563") // Light gray
	Text      = lipgloss.Color("#F9FAFB") // White
	TextMuted = lipgloss.Color("#9CA3AF") // Gray
	TextDim   = lipgloss.Color("#6B7280") // Darker gray
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(16)

	Value = lipgloss.NewStyle().
		Foreground(Text)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Good = lipgloss.NewStyle().
		Foreground(Success)

	Bad = lipgloss.NewStyle().
		Foreground(Error)

	Store = lipgloss.NewStyle().
		Foreground(Accent)
)

// BorderStyle frames summary panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// Panel renders a titled, bordered block of lines.
func Panel(title string, lines ...string) string {
	body := strings.Join(append([]string{Title.Render(title)}, lines...), "\n")
	return BorderStyle.Render(body)
}

// KeyValue renders one aligned "label value" line.
func KeyValue(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, Label.Render(label), Value.Render(value))
}

// Unset renders the placeholder for an absent value.
func Unset() string {
	return Muted.Render("(unset)")
}

// TrackType renders the namespace of a track id.
func TrackType(t model.TrackType) string {
	if t == model.TrackTypeStore {
		return Store.Render("store")
	}
	return Muted.Render("library")
}

// ResponseCode renders a mutation response code, green when it succeeded.
func ResponseCode(code string) string {
	switch code {
	case "":
		return Unset()
	case model.ResponseCodeOK:
		return Good.Render(code)
	default:
		return Bad.Render(code)
	}
}
