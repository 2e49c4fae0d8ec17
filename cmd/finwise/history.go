package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/cli"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/config"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/spf13/cobra"
)

const historyTimeLayout = "Jan 2, 2006 15:04"

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage saved conversations",
		Long:  `List, show, back up and clear the conversations saved by 'finwise ask' and 'finwise chat'.`,
	}

	cmd.AddCommand(listHistoryCmd())
	cmd.AddCommand(showHistoryCmd())
	cmd.AddCommand(statsHistoryCmd())
	cmd.AddCommand(backupHistoryCmd())
	cmd.AddCommand(clearHistoryCmd())

	return cmd
}

func listHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent conversations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx, settings)
			if err != nil {
				return err
			}
			defer store.Close()

			if !cmd.Flags().Changed("limit") {
				limit = settings.Chat.HistoryLimit
			}
			conversations, err := store.ListConversations(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list conversations: %w", err)
			}

			if len(conversations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No conversations yet. Try 'finwise chat'."))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Conversation"),
				cli.TableHeaderStyle.Render("Last message"),
				cli.TableHeaderStyle.Render("Messages"),
				cli.TableHeaderStyle.Render("First question"))

			for _, c := range conversations {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					c.ID,
					c.LastMessageAt.Local().Format(historyTimeLayout),
					c.ExchangeCount,
					truncate(c.FirstQuery, 50))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of conversations to show")
	return cmd
}

func showHistoryCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <conversation>",
		Short: "Replay a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx, settings)
			if err != nil {
				return err
			}
			defer store.Close()

			exchanges, err := store.GetConversation(ctx, args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("No conversation with ID %s.", args[0]), err)
			}
			if err != nil {
				return fmt.Errorf("failed to load conversation: %w", err)
			}

			var opts []cli.RendererOption
			if plain {
				opts = append(opts, cli.WithPlain())
			}
			renderer, err := cli.NewRenderer(opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Conversation "+args[0]))
			for _, ex := range exchanges {
				fmt.Fprintf(out, "%s %s\n%s\n\n",
					cli.UserStyle.Render("You"),
					cli.SubtleStyle.Render(ex.CreatedAt.Local().Format(historyTimeLayout)),
					ex.Query)
				fmt.Fprintf(out, "%s %s\n\n", cli.RobotIcon, renderer.Response(ex.Response))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown without styling")
	return cmd
}

func statsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show which topics you ask about most",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx, settings)
			if err != nil {
				return err
			}
			defer store.Close()

			counts, err := store.CategoryCounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to count questions: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.ChartIcon+" Questions by topic", formatCategoryCounts(counts)))
			return nil
		},
	}
}

// formatCategoryCounts lists every category, busiest first, with
// clarification prompts last.
func formatCategoryCounts(counts map[model.QueryCategory]int) string {
	categories := model.AllCategories()
	slices.SortStableFunc(categories, func(a, b model.QueryCategory) int {
		return counts[b] - counts[a]
	})

	total := 0
	for _, n := range counts {
		total += n
	}

	var b strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&b, "%-12s %4d\n", c, counts[c])
	}
	if n := counts[""]; n > 0 {
		fmt.Fprintf(&b, "%-12s %4d\n", "unclear", n)
	}
	fmt.Fprintf(&b, "%-12s %4d", "total", total)
	return b.String()
}

func backupHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [path]",
		Short: "Copy the history database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx, settings)
			if err != nil {
				return err
			}
			defer store.Close()

			dest := store.DefaultBackupPath(time.Now())
			if len(args) == 1 {
				if dest, err = resolveBackupPath(args[0]); err != nil {
					return err
				}
			}
			if err := store.Backup(ctx, dest); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}

			cmd.Println(cli.FormatSuccess(cli.FolderIcon + " History backed up to " + dest))
			return nil
		},
	}
}

// resolveBackupPath expands ~ and environment variables and makes path absolute.
func resolveBackupPath(path string) (string, error) {
	abs, err := filepath.Abs(config.ExpandPath(path))
	if err != nil {
		return "", fmt.Errorf("invalid backup path %q: %w", path, err)
	}
	return abs, nil
}

func clearHistoryCmd() *cobra.Command {
	var (
		yes      bool
		noBackup bool
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved conversations",
		Long: `Delete every saved conversation. A backup is written next to the
database first unless --no-backup is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !yes {
				if !confirm(cmd, "Delete all saved conversations? [y/N]") {
					cmd.Println(cli.FormatInfo("Nothing deleted."))
					return nil
				}
			}

			store, err := initStorage(ctx, settings)
			if err != nil {
				return err
			}
			defer store.Close()

			if !noBackup {
				dest := store.DefaultBackupPath(time.Now())
				if err := store.Backup(ctx, dest); err != nil {
					return fmt.Errorf("backup before clearing failed: %w", err)
				}
				cmd.Println(cli.FormatInfo("Backup written to " + dest))
			}

			removed, err := store.ClearHistory(ctx)
			if err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %d saved exchanges", removed)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip the backup before clearing")
	return cmd
}

// confirm asks a yes/no question; EOF or cancellation counts as no.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), cli.FormatPrompt(prompt))

	answer, err := cli.NewNonBlockingReader(cmd.InOrStdin()).ReadLine(cmd.Context())
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
