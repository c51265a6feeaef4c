package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Danger  string

	Border      string
	BorderFocus string
	SelectionBg string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		PaneFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),
	}
}

// Styles holds resolved lipgloss styles.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	Success    lipgloss.Style
	Danger     lipgloss.Style
	Selected   lipgloss.Style
	Pane       lipgloss.Style
	PaneFocus  lipgloss.Style
}

var themes = []Theme{
	{
		Name:        "Dracula",
		Text:        "#f8f8f2",
		Muted:       "#6272a4",
		Accent:      "#bd93f9",
		Success:     "#50fa7b",
		Danger:      "#ff5555",
		Border:      "#44475a",
		BorderFocus: "#bd93f9",
		SelectionBg: "#44475a",
	},
	{
		Name:        "Slate",
		Text:        "#e2e8f0",
		Muted:       "#64748b",
		Accent:      "#38bdf8",
		Success:     "#4ade80",
		Danger:      "#f87171",
		Border:      "#334155",
		BorderFocus: "#38bdf8",
		SelectionBg: "#1e293b",
	},
	{
		Name:        "Paper",
		Text:        "#1f2328",
		Muted:       "#6e7781",
		Accent:      "#0969da",
		Success:     "#1a7f37",
		Danger:      "#cf222e",
		Border:      "#d0d7de",
		BorderFocus: "#0969da",
		SelectionBg: "#ddf4ff",
	},
}

// GetTheme returns the named theme, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, cycling.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
