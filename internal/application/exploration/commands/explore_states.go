package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/services"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/types"
	"github.com/tradeworks/tradeworks-go/internal/application/mediator"
	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
)

// ExploreStatesCommand requests a full enumeration of the baskets
// reachable from Start under the rule set and the total-quantity cap
type ExploreStatesCommand struct {
	Start       shared.Basket
	MaxTotal    int
	CustomRules []trading.TradeRule
}

// ExploreStatesResponse reports the finished exploration
type ExploreStatesResponse struct {
	SessionID  uuid.UUID
	Statistics types.StatisticsDTO
	Elapsed    time.Duration
}

// ExploreStatesHandler runs explorations and registers them as sessions
type ExploreStatesHandler struct {
	sessions *services.SessionRegistry
}

// NewExploreStatesHandler creates a new handler
func NewExploreStatesHandler(sessions *services.SessionRegistry) *ExploreStatesHandler {
	return &ExploreStatesHandler{sessions: sessions}
}

// Handle executes the command
func (h *ExploreStatesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ExploreStatesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	explorer, err := trading.NewExplorer(cmd.Start, cmd.MaxTotal, cmd.CustomRules)
	if err != nil {
		return nil, fmt.Errorf("failed to create explorer: %w", err)
	}

	started := time.Now()
	explorer.Explore()
	elapsed := time.Since(started)

	stats, err := explorer.Statistics()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize exploration: %w", err)
	}

	return &ExploreStatesResponse{
		SessionID: h.sessions.Add(explorer),
		Statistics: types.StatisticsDTO{
			StateCount: stats.StateCount,
			MinTotal:   stats.MinTotal,
			MaxTotal:   stats.MaxTotal,
			MaxTrades:  stats.MaxTrades,
		},
		Elapsed: elapsed,
	}, nil
}
