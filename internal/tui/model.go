// Package tui implements the interactive chat interface.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/cli"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrNoAsker is returned when the TUI has nothing to send questions to.
var ErrNoAsker = errors.New("tui: asker is required")

type role int

const (
	roleUser role = iota
	roleAssistant
)

type entry struct {
	text     string
	response model.AssistantResponse
	role     role
}

// Model holds the chat TUI state.
type Model struct {
	ctx       context.Context
	renderer  *cli.Renderer
	theme     themes.Theme
	status    string
	keymap    KeyMap
	pending   *answerMsg
	help      help.Model
	config    Config
	entries   []entry
	input     textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	width     int
	height    int
	seq       int
	answered  int
	statusErr bool
	thinking  bool
	quitting  bool
}

// New creates a chat model.
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Asker == nil {
		return Model{}, ErrNoAsker
	}

	input := textinput.New()
	input.Placeholder = "Ask about budgeting, saving, SIPs or stocks..."
	input.Prompt = "› "
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:      contextOrBackground(ctx),
		config:   cfg,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		input:    input,
		spinner:  spin,
		help:     help.New(),
		viewport: viewport.New(cfg.Width, cfg.Height),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.renderer = m.newRenderer()
	m.layout()
	m.refresh()
	return m, nil
}

func (m Model) newRenderer() *cli.Renderer {
	if !m.config.PlainText {
		style := "dark"
		if !lipgloss.HasDarkBackground() {
			style = "light"
		}
		r, err := cli.NewRenderer(cli.WithStyle(style), cli.WithWidth(m.width-4))
		if err == nil {
			return r
		}
		common.LogDebug("Falling back to plain rendering", common.Fields{"error": err})
	}
	r, _ := cli.NewRenderer(cli.WithPlain())
	return r
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Answered returns how many questions were answered.
func (m Model) Answered() int {
	return m.answered
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		resized := msg.Width != m.width
		m.width = msg.Width
		m.height = msg.Height
		if resized && !m.config.PlainText {
			m.renderer = m.newRenderer()
		}
		m.layout()
		m.refresh()
		return m, nil

	case answerMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.pending = &msg
		return m, revealAfter(m.config.TypingDelay, msg.seq)

	case revealMsg:
		if msg.seq != m.seq || m.pending == nil {
			return m, nil
		}
		m.reveal()
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.entries = nil
		m.status = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.ScrollUp), key.Matches(msg, m.keymap.ScrollDown),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keymap.Send):
		return m.send()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send asks the typed question. Blank input and input typed while an answer
// is pending are ignored.
func (m Model) send() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" || m.thinking {
		return m, nil
	}

	m.input.Reset()
	m.seq++
	m.thinking = true
	m.status = ""
	m.entries = append(m.entries, entry{role: roleUser, text: query})
	m.refresh()

	return m, tea.Batch(m.askQuestion(query, m.seq), m.spinner.Tick)
}

func (m *Model) reveal() {
	p := m.pending
	m.pending = nil
	m.thinking = false

	if p.exchange == nil {
		m.setStatus("Could not answer: "+common.UserMessage(p.err), true)
		m.refresh()
		return
	}

	m.answered++
	m.entries = append(m.entries, entry{role: roleAssistant, response: p.exchange.Response})
	if p.err != nil {
		m.setStatus(common.UserMessage(p.err), false)
	}
	m.refresh()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// layout sizes the viewport and input to the terminal.
func (m *Model) layout() {
	const (
		headerHeight = 2
		inputHeight  = 3
		statusHeight = 1
	)
	helpHeight := 0
	if m.config.ShowHelp {
		helpHeight = 1
		if m.help.ShowAll {
			helpHeight = longestColumn(m.keymap.FullHelp())
		}
	}

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - helpHeight
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = vpHeight
	m.input.Width = max(m.width-6, 10)
	m.help.Width = m.width
}

// refresh re-renders the conversation and scrolls to the newest message.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}
