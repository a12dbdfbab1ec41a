package render

import "github.com/charmbracelet/lipgloss"

// Styles contains the styling for the table view
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Money     lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	CardBack  lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Push      lipgloss.Style
	Enabled   lipgloss.Style
	Disabled  lipgloss.Style
	Hint      lipgloss.Style
}

// NewStyles creates the default table styles
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Bold(true)

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Padding(0, 2).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Money: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: card.
			Foreground(lipgloss.Color("#FF6B6B")).
			BorderForeground(lipgloss.Color("#FAFAFA")),
		CardBlack: card.
			Foreground(lipgloss.Color("#FAFAFA")).
			BorderForeground(lipgloss.Color("#FAFAFA")),
		CardBack: card.
			Foreground(lipgloss.Color("#74B9FF")).
			BorderForeground(lipgloss.Color("#74B9FF")),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Enabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
	}
}
