package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/cli"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// Batch output formats.
const (
	formatMarkdown = "markdown"
	formatJSONL    = "jsonl"
)

func batchCmd() *cobra.Command {
	var (
		snapFlags snapshotFlags
		format    string
		output    string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Answer every question in a file",
		Long: `Answer one question per line from a file ("-" reads stdin). Blank lines
and lines starting with # are skipped. All answers share one conversation.

Examples:
  finwise batch questions.txt
  finwise batch --format jsonl --output answers.jsonl questions.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatMarkdown && format != formatJSONL {
				return fmt.Errorf("%w: unknown format %q (use markdown or jsonl)", common.ErrInvalidConfig, format)
			}

			queries, err := loadQueries(cmd, args[0])
			if err != nil {
				return err
			}
			if len(queries) == 0 {
				return common.NewUserError("No questions found in "+args[0]+".", common.ErrEmptyQuery)
			}

			ctx := cmd.Context()
			balance, goals := snapFlags.overrides(cmd)
			snapshots, err := buildSnapshotSource(settings, snapFlags.ofxPath, balance, goals)
			if err != nil {
				return err
			}

			var history service.HistoryStore
			if !noHistory {
				store, storeErr := initStorage(ctx, settings)
				if storeErr != nil {
					return storeErr
				}
				defer store.Close()
				history = store
			}

			session, err := newSession(snapshots, history, "")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("failed to create output file: %w", createErr)
				}
				defer f.Close()
				out = f
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx = handler.HandleInterrupts(ctx, "Answers so far have been written.")
			defer handler.Stop()

			bar := newProgressBar(len(queries), cmd.ErrOrStderr())
			writer := newResultWriter(out, format)

			answered := 0
			for _, q := range queries {
				if ctx.Err() != nil {
					break
				}
				exchange, askErr := session.Ask(ctx, q)
				if exchange == nil {
					if ctx.Err() != nil {
						break
					}
					return fmt.Errorf("failed to answer %q: %w", q, askErr)
				}
				if askErr != nil {
					slog.Warn("Answer not saved to history", "query", q, "error", askErr)
				}
				if err := writer.write(answered+1, exchange); err != nil {
					return fmt.Errorf("failed to write answer: %w", err)
				}
				answered++
				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			}

			summary := fmt.Sprintf("  • Questions: %d\n", len(queries)) +
				fmt.Sprintf("  • Answered: %d\n", answered)
			if history != nil {
				summary += fmt.Sprintf("  • Conversation: %s", session.ID())
			}
			fmt.Fprintln(cmd.ErrOrStderr(), cli.RenderBox("Batch Complete", summary))

			if handler.WasInterrupted() {
				return common.NewUserError(fmt.Sprintf("Interrupted after %d of %d questions.", answered, len(queries)), ctx.Err())
			}
			return nil
		},
	}

	addSnapshotFlags(cmd, &snapFlags)
	cmd.Flags().StringVarP(&format, "format", "f", formatMarkdown, "output format (markdown, jsonl)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write answers to this file instead of stdout")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record these exchanges")

	return cmd
}

func loadQueries(cmd *cobra.Command, path string) ([]string, error) {
	if path == "-" {
		return readQueries(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open question file: %w", err)
	}
	defer f.Close()
	return readQueries(f)
}

// readQueries returns the trimmed, non-empty, non-comment lines of r.
func readQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}
	return queries, nil
}

func newProgressBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[green][bold]Answering questions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// batchRecord is one line of jsonl output.
type batchRecord struct {
	Query string `json:"query"`
	model.AssistantResponse
}

type resultWriter struct {
	out    io.Writer
	enc    *json.Encoder
	format string
}

func newResultWriter(out io.Writer, format string) *resultWriter {
	rw := &resultWriter{out: out, format: format}
	if format == formatJSONL {
		rw.enc = json.NewEncoder(out)
	}
	return rw
}

func (rw *resultWriter) write(n int, ex *model.Exchange) error {
	if rw.enc != nil {
		return rw.enc.Encode(batchRecord{Query: ex.Query, AssistantResponse: ex.Response})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %d. %s\n\n", n, ex.Query)
	b.WriteString(ex.Response.Content)
	b.WriteString("\n\n")
	if ex.Response.HasDisclaimer() {
		fmt.Fprintf(&b, "> %s\n\n", ex.Response.Disclaimer)
	}
	_, err := io.WriteString(rw.out, b.String())
	return err
}
