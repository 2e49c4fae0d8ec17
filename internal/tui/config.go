package tui

import (
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/cli"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/tui/themes"
)

// DefaultTypingDelay is how long the typing indicator shows before an answer.
const DefaultTypingDelay = 400 * time.Millisecond

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Asker       cli.Asker
	Greeting    string
	Width       int
	Height      int
	TypingDelay time.Duration
	PlainText   bool
	ShowHelp    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Width:       80,
		Height:      24,
		TypingDelay: DefaultTypingDelay,
		ShowHelp:    true,
		Greeting: "Hi! I can help with budgeting, saving, investing and the stock market. " +
			"What would you like to know?",
	}
}

// WithAsker sets the conversation the TUI sends questions to.
func WithAsker(asker cli.Asker) Option {
	return func(c *Config) {
		c.Asker = asker
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTypingDelay sets the typing indicator duration. Zero shows answers immediately.
func WithTypingDelay(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			d = 0
		}
		c.TypingDelay = d
	}
}

// WithPlainText disables markdown styling of answers.
func WithPlainText(enabled bool) Option {
	return func(c *Config) {
		c.PlainText = enabled
	}
}

// WithHelp toggles the key binding footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
