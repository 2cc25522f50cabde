package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/services"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/types"
	"github.com/tradeworks/tradeworks-go/internal/application/mediator"
)

// GetStatisticsQuery requests the summary of a registered exploration session
type GetStatisticsQuery struct {
	SessionID uuid.UUID
}

// GetStatisticsResponse contains the summary
type GetStatisticsResponse struct {
	Statistics types.StatisticsDTO
}

// GetStatisticsHandler handles statistics queries
type GetStatisticsHandler struct {
	sessions *services.SessionRegistry
}

// NewGetStatisticsHandler creates a new handler
func NewGetStatisticsHandler(sessions *services.SessionRegistry) *GetStatisticsHandler {
	return &GetStatisticsHandler{sessions: sessions}
}

// Handle executes the query
func (h *GetStatisticsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetStatisticsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	explorer, err := h.sessions.Get(query.SessionID)
	if err != nil {
		return nil, err
	}

	stats, err := explorer.Statistics()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize exploration: %w", err)
	}

	return &GetStatisticsResponse{
		Statistics: types.StatisticsDTO{
			StateCount: stats.StateCount,
			MinTotal:   stats.MinTotal,
			MaxTotal:   stats.MaxTotal,
			MaxTrades:  stats.MaxTrades,
		},
	}, nil
}
