package prompt

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan: question mark, cursor
	colorAccent     = lipgloss.Color("#FFD700") // Gold: notices
	colorSuccess    = lipgloss.Color("#00E676") // Green: checked boxes, answers
	colorMuted      = lipgloss.Color("#636363") // Gray: hints
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray: normal rows
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white: message text
)

// Row glyphs.
const (
	cursorIndicator = "›"
	iconChecked     = "◉"
	iconUnchecked   = "◯"
)

var (
	styleQuestion = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleMessage  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleHint     = lipgloss.NewStyle().Foreground(colorMuted)
	styleAnswer   = lipgloss.NewStyle().Foreground(colorSuccess)
	styleNotice   = lipgloss.NewStyle().Foreground(colorAccent)

	styleRowSelected = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleRowNormal   = lipgloss.NewStyle().Foreground(colorMutedLight)
	styleChecked     = lipgloss.NewStyle().Foreground(colorSuccess)
)

// header renders the "? message" line shared by all prompts.
func header(message string) string {
	return styleQuestion.Render("?") + " " + styleMessage.Render(message)
}

// answered renders the line left on screen after a prompt resolves.
func answered(message, answer string) string {
	return header(message) + " " + styleHint.Render("›") + " " + styleAnswer.Render(answer) + "\n"
}
