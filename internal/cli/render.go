package cli

import (
	"fmt"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth is the word-wrap width used when the terminal width is unknown.
const DefaultWrapWidth = 80

// Renderer turns assistant responses into terminal output.
type Renderer struct {
	markdown *glamour.TermRenderer
}

// RendererOption configures NewRenderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	style string
	width int
	plain bool
}

// WithWidth sets the word-wrap width.
func WithWidth(width int) RendererOption {
	return func(c *rendererConfig) { c.width = width }
}

// WithPlain disables markdown styling; content is printed as written.
func WithPlain() RendererOption {
	return func(c *rendererConfig) { c.plain = true }
}

// WithStyle selects a glamour standard style such as "dark", "light" or "notty".
func WithStyle(style string) RendererOption {
	return func(c *rendererConfig) { c.style = style }
}

// NewRenderer creates a renderer. Without options it picks a style matching the terminal.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	cfg := rendererConfig{width: DefaultWrapWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.plain {
		return &Renderer{}, nil
	}
	if cfg.width <= 0 {
		cfg.width = DefaultWrapWidth
	}

	styleOpt := glamour.WithAutoStyle()
	if cfg.style != "" {
		styleOpt = glamour.WithStandardStyle(cfg.style)
	}

	md, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(cfg.width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{markdown: md}, nil
}

// Markdown renders markdown text, falling back to the raw text if styling fails.
func (r *Renderer) Markdown(text string) string {
	if r.markdown == nil {
		return text
	}
	out, err := r.markdown.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// Response renders an answer with its category tag and disclaimer.
func (r *Renderer) Response(resp model.AssistantResponse) string {
	var b strings.Builder

	if resp.Category != "" {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("[%s]", resp.Category)))
		b.WriteString("\n")
	}

	b.WriteString(r.Markdown(resp.Content))

	if resp.HasDisclaimer() {
		b.WriteString("\n\n")
		if r.markdown == nil {
			b.WriteString("Disclaimer: " + resp.Disclaimer)
		} else {
			b.WriteString(DisclaimerStyle.Render(WarningIcon + " " + resp.Disclaimer))
		}
	}

	return b.String()
}
