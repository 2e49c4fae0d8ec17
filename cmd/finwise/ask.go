package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/cli"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
	"github.com/spf13/cobra"
)

func askCmd() *cobra.Command {
	var (
		snapFlags      snapshotFlags
		asJSON         bool
		plain          bool
		noHistory      bool
		conversationID string
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question",
		Long: `Answer one finance question and exit.

Examples:
  finwise ask "how do I start a SIP?"
  finwise ask --balance 85000 "how big should my emergency fund be?"
  finwise ask --ofx ~/statements/march.qfx "help me budget"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return common.NewUserError("Please type a question.", common.ErrEmptyQuery)
			}

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

			exchange, err := session.Ask(ctx, query)
			if exchange == nil {
				return err
			}
			if err != nil {
				cmd.PrintErrln(cli.FormatWarning(common.UserMessage(err)))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(exchange.Response)
			}

			var opts []cli.RendererOption
			if plain {
				opts = append(opts, cli.WithPlain())
			}
			renderer, err := cli.NewRenderer(opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Response(exchange.Response))
			return nil
		},
	}

	addSnapshotFlags(cmd, &snapFlags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the response as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown without styling")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this exchange")
	cmd.Flags().StringVar(&conversationID, "conversation", "", "continue an existing conversation")

	return cmd
}
