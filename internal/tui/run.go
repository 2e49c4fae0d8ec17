package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the chat TUI and blocks until the user quits or ctx is canceled.
// It returns the number of questions answered.
func Run(ctx context.Context, opts ...Option) (int, error) {
	m, err := New(ctx, opts...)
	if err != nil {
		return 0, err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return answeredBy(final), nil
		}
		return answeredBy(final), fmt.Errorf("TUI error: %w", err)
	}
	return answeredBy(final), nil
}

func answeredBy(final tea.Model) int {
	if m, ok := final.(Model); ok {
		return m.Answered()
	}
	return 0
}
