package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"
	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/service"
)

// Provider fetches a statement and builds the assistant context from it.
type Provider struct {
	source  service.StatementSource
	logger  *slog.Logger
	builder Builder
}

// NewProvider creates a snapshot provider over source.
func NewProvider(source service.StatementSource, builder Builder) *Provider {
	return &Provider{
		source:  source,
		builder: builder,
		logger:  slog.Default().With("component", "snapshot"),
	}
}

// Snapshot implements service.SnapshotSource.
func (p *Provider) Snapshot(ctx context.Context) (*model.AssistantContext, error) {
	start := time.Now()

	stmt, err := p.source.FetchStatement(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSnapshotUnavailable, err)
	}

	actx := p.builder.Build(stmt)
	p.logger.Debug("Built financial snapshot",
		"source", stmt.Source,
		"has_balance", actx.Balance.IsPresent(),
		"transactions", actx.TotalTransactions.OrElse(0),
		"recent", len(actx.RecentTransactions),
		"duration", time.Since(start))

	return actx, nil
}

// Static is a snapshot source with fixed values, e.g. a balance given on the command line.
type Static struct {
	Context model.AssistantContext
}

// Snapshot implements service.SnapshotSource. Each call returns a fresh copy.
func (s Static) Snapshot(context.Context) (*model.AssistantContext, error) {
	actx := s.Context
	actx.RecentTransactions = append([]model.ContextTransaction(nil), s.Context.RecentTransactions...)
	return &actx, nil
}

// Overlay lets fixed values take precedence over another snapshot source.
type Overlay struct {
	Base    service.SnapshotSource
	Balance model.Optional[float64]
	Goals   model.Optional[int]
}

// Snapshot implements service.SnapshotSource.
func (o Overlay) Snapshot(ctx context.Context) (*model.AssistantContext, error) {
	actx := &model.AssistantContext{}
	if o.Base != nil {
		base, err := o.Base.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		actx = base
	}
	if o.Balance.IsPresent() {
		actx.Balance = o.Balance
	}
	if o.Goals.IsPresent() {
		actx.TotalGoals = o.Goals
	}
	return actx, nil
}

var (
	_ service.SnapshotSource = (*Provider)(nil)
	_ service.SnapshotSource = Static{}
	_ service.SnapshotSource = Overlay{}
)
