package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
)

// Asker answers one query at a time. *chat.Session satisfies it.
type Asker interface {
	Ask(ctx context.Context, query string) (*model.Exchange, error)
}

// REPL is a line-oriented chat loop for terminals without TUI support.
type REPL struct {
	asker    Asker
	reader   *NonBlockingReader
	out      io.Writer
	renderer *Renderer
}

// NewREPL creates a chat loop reading from in and writing to out.
func NewREPL(asker Asker, in io.Reader, out io.Writer, renderer *Renderer) *REPL {
	return &REPL{
		asker:    asker,
		reader:   NewNonBlockingReader(in),
		out:      out,
		renderer: renderer,
	}
}

// IsExitCommand reports whether the line ends the conversation.
func IsExitCommand(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit", "bye", ":q":
		return true
	}
	return false
}

// Run reads questions until EOF, an exit command or cancellation. It returns
// the number of questions answered.
func (r *REPL) Run(ctx context.Context) (int, error) {
	answered := 0
	r.printf("%s\n%s\n\n", FormatTitle("FinWise Assistant"),
		SubtleStyle.Render("Ask about budgeting, saving, investing or taxes. Type 'exit' to leave."))

	for {
		r.printf("%s", FormatPrompt("You"))

		line, err := r.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInputCancelled) {
				r.printf("\n")
				return answered, nil
			}
			return answered, fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			continue
		}
		if IsExitCommand(line) {
			r.printf("%s\n", FormatInfo("Goodbye! Keep building those savings."))
			return answered, nil
		}

		exchange, err := r.asker.Ask(ctx, line)
		if exchange == nil {
			if ctx.Err() != nil {
				return answered, nil
			}
			return answered, fmt.Errorf("failed to answer query: %w", err)
		}
		if err != nil {
			r.printf("%s\n", FormatWarning(common.UserMessage(err)))
		}

		answered++
		r.printf("\n%s %s\n\n", RobotIcon, r.renderer.Response(exchange.Response))
	}
}

func (r *REPL) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
