package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// askQuestion sends query to the conversation.
func (m Model) askQuestion(query string, seq int) tea.Cmd {
	asker := m.config.Asker
	ctx := m.ctx
	return func() tea.Msg {
		exchange, err := asker.Ask(ctx, query)
		return answerMsg{exchange: exchange, err: err, seq: seq}
	}
}

// revealAfter ends the typing indicator once delay has passed.
func revealAfter(delay time.Duration, seq int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return revealMsg{seq: seq} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return revealMsg{seq: seq}
	})
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
