package main

import (
	"context"
	"fmt"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/chat"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/config"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/engine"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/ofx"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/plaid"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/snapshot"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/storage"
	"github.com/spf13/cobra"
)

// initStorage opens the history database and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Settings) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// snapshotFlags are the per-command overrides of the configured snapshot.
type snapshotFlags struct {
	ofxPath string
	balance float64
	goals   int
}

func addSnapshotFlags(cmd *cobra.Command, f *snapshotFlags) {
	cmd.Flags().StringVar(&f.ofxPath, "ofx", "", "personalize answers from this OFX/QFX statement")
	cmd.Flags().Float64Var(&f.balance, "balance", 0, "personalize answers with this balance in rupees")
	cmd.Flags().IntVar(&f.goals, "goals", 0, "number of savings goals you are working towards")
}

// overrides returns the flag values the user actually set.
func (f *snapshotFlags) overrides(cmd *cobra.Command) (model.Optional[float64], model.Optional[int]) {
	balance := model.None[float64]()
	if cmd.Flags().Changed("balance") {
		balance = model.Balance(f.balance)
	}
	goals := model.None[int]()
	if cmd.Flags().Changed("goals") {
		goals = model.Count(f.goals)
	}
	return balance, goals
}

// buildSnapshotSource wires the configured statement source, if any, and
// layers the flag overrides on top. It returns nil when nothing is known
// about the user's finances.
func buildSnapshotSource(cfg *config.Settings, ofxPath string, balance model.Optional[float64], goals model.Optional[int]) (service.SnapshotSource, error) {
	builder := snapshot.NewBuilder(cfg.Snapshot.RecentLimit)
	builder.Goals = model.Count(cfg.Snapshot.Goals)

	source := cfg.Snapshot.Source
	path := cfg.Snapshot.OFXPath
	if ofxPath != "" {
		source = config.SourceOFX
		path = config.ExpandPath(ofxPath)
	}

	var base service.SnapshotSource
	switch source {
	case config.SourceOFX:
		base = snapshot.NewProvider(ofx.NewFileSource(path), builder)
	case config.SourcePlaid:
		client, err := plaid.NewClient(plaid.Config{
			ClientID:    cfg.Plaid.ClientID,
			Secret:      cfg.Plaid.Secret,
			Environment: cfg.Plaid.Environment,
			AccessToken: cfg.Plaid.AccessToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Plaid client: %w", err)
		}
		base = snapshot.NewProvider(plaid.NewSource(client, plaid.DefaultLookback), builder)
	default:
		if builder.Goals.IsPresent() {
			base = snapshot.Static{Context: *builder.Build(nil)}
		}
	}

	if !balance.IsPresent() && !goals.IsPresent() {
		return base, nil
	}
	return snapshot.Overlay{Base: base, Balance: balance, Goals: goals}, nil
}

// newSession builds the assistant and a conversation around it.
func newSession(snapshots service.SnapshotSource, history service.HistoryStore, conversationID string) (*chat.Session, error) {
	assistant, err := engine.New()
	if err != nil {
		return nil, err
	}

	var opts []chat.Option
	if snapshots != nil {
		opts = append(opts, chat.WithSnapshots(snapshots))
	}
	if history != nil {
		opts = append(opts, chat.WithHistory(history))
	}
	if conversationID != "" {
		opts = append(opts, chat.WithConversationID(conversationID))
	}
	return chat.NewSession(assistant, opts...), nil
}
