// Package themes holds the color schemes of the chat interface.
package themes

import (
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	UserLabel     lipgloss.Style
	AssistantName lipgloss.Style
	Category      lipgloss.Style
	Disclaimer    lipgloss.Style
	InputBox      lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary: lipgloss.Color("#2ecc71"),
	Muted:   lipgloss.Color("#737373"),
	Border:  lipgloss.Color("#404040"),
	Error:   lipgloss.Color("#ef4444"),
	Warning: lipgloss.Color("#f59e0b"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2ecc71")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	UserLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3b82f6")),
	AssistantName: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2ecc71")),
	Category: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
	Disclaimer: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#f59e0b")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("#f59e0b")).
		PaddingLeft(1),

	// Component styles
	InputBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),

	// Status styles
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	// Colors
	Primary: lipgloss.Color("#a6e3a1"),
	Muted:   lipgloss.Color("#6c7086"),
	Border:  lipgloss.Color("#45475a"),
	Error:   lipgloss.Color("#f38ba8"),
	Warning: lipgloss.Color("#f9e2af"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a6e3a1")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	UserLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#89dceb")),
	AssistantName: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a6e3a1")),
	Category: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),
	Disclaimer: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#f9e2af")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("#f9e2af")).
		PaddingLeft(1),

	// Component styles
	InputBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(0, 1),

	// Status styles
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f9e2af")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps query categories to emoji icons.
var CategoryIcons = map[model.QueryCategory]string{
	model.CategoryStocks:    "📈",
	model.CategoryInvesting: "🌱",
	model.CategoryBudgeting: "🧾",
	model.CategorySaving:    "🏦",
	model.CategoryGeneral:   "💡",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category model.QueryCategory) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "💬"
}
