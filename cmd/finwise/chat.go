package main

import (
	"os"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/cli"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/tui"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/tui/themes"
	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	var (
		snapFlags      snapshotFlags
		plain          bool
		noHistory      bool
		theme          string
		conversationID string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long: `Chat with the assistant. Every exchange is saved to history unless
--no-history is given. Use --plain for a line-by-line prompt on terminals
without full-screen support.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			session, err := newSession(snapshots, history, conversationID)
			if err != nil {
				return err
			}

			var answered int
			if plain {
				renderer, renderErr := cli.NewRenderer(cli.WithPlain())
				if renderErr != nil {
					return renderErr
				}
				answered, err = cli.NewREPL(session, os.Stdin, cmd.OutOrStdout(), renderer).Run(ctx)
			} else {
				answered, err = tui.Run(ctx,
					tui.WithAsker(session),
					tui.WithTheme(themes.GetTheme(theme)),
					tui.WithTypingDelay(settings.Chat.TypingDelay),
				)
			}

			common.LogInfo("Chat ended", common.Fields{
				"conversation": session.ID(),
				"answered":     answered,
			})
			if err == nil && answered > 0 && history != nil {
				cmd.Println(cli.FormatInfo("Conversation saved as " + session.ID()))
			}
			return err
		},
	}

	addSnapshotFlags(cmd, &snapFlags)
	cmd.Flags().BoolVar(&plain, "plain", false, "use a line-by-line prompt instead of the full-screen interface")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this conversation")
	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().StringVar(&conversationID, "conversation", "", "continue an existing conversation")

	return cmd
}
