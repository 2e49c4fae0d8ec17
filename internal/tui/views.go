package tui

import (
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const assistantName = "FinWise"

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatus(),
		m.theme.InputBox.Width(max(m.width-2, 10)).Render(m.input.View()),
	}
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("💰 "+assistantName),
		m.theme.Subtitle.Render("Your personal finance assistant"),
	)
}

func (m Model) renderStatus() string {
	switch {
	case m.thinking:
		return m.spinner.View() + " " + m.theme.StatusPending.Render(assistantName+" is typing...")
	case m.status != "" && m.statusErr:
		return m.theme.StatusError.Render(m.status)
	case m.status != "":
		return m.theme.StatusWarning.Render(m.status)
	default:
		return ""
	}
}

// renderConversation renders the greeting and every exchange so far.
func (m Model) renderConversation() string {
	var b strings.Builder

	b.WriteString(m.theme.AssistantName.Render(assistantName))
	b.WriteString("\n")
	b.WriteString(m.config.Greeting)

	for _, e := range m.entries {
		b.WriteString("\n\n")
		switch e.role {
		case roleUser:
			b.WriteString(m.theme.UserLabel.Render("You"))
			b.WriteString("\n")
			b.WriteString(e.text)
		case roleAssistant:
			b.WriteString(m.renderAnswer(e))
		}
	}

	return b.String()
}

func (m Model) renderAnswer(e entry) string {
	resp := e.response

	label := m.theme.AssistantName.Render(assistantName)
	if resp.Category != "" {
		label += " " + m.theme.Category.Render(themes.GetCategoryIcon(resp.Category)+" "+resp.Category.String())
	}

	parts := []string{label, m.renderer.Markdown(resp.Content)}
	if resp.HasDisclaimer() {
		parts = append(parts, m.theme.Disclaimer.Width(max(m.width-4, 10)).Render(resp.Disclaimer))
	}
	return strings.Join(parts, "\n")
}

func longestColumn(groups [][]key.Binding) int {
	longest := 0
	for _, g := range groups {
		longest = max(longest, len(g))
	}
	return longest
}
