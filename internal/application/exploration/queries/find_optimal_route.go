package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/services"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/types"
	"github.com/tradeworks/tradeworks-go/internal/application/mediator"
	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
)

// FindOptimalRouteQuery asks for a trade sequence from the session's
// starting basket to an explored state covering Target
type FindOptimalRouteQuery struct {
	SessionID uuid.UUID
	Target    shared.Basket
}

// FindOptimalRouteResponse contains the reconstructed route. Found is
// false when no explored state covers the target - an expected outcome,
// not an error. An empty Steps with Found true means the start already
// covers the target.
type FindOptimalRouteResponse struct {
	Found bool
	Steps []types.TradeStepDTO
}

// FindOptimalRouteHandler handles route queries
type FindOptimalRouteHandler struct {
	sessions *services.SessionRegistry
}

// NewFindOptimalRouteHandler creates a new handler
func NewFindOptimalRouteHandler(sessions *services.SessionRegistry) *FindOptimalRouteHandler {
	return &FindOptimalRouteHandler{sessions: sessions}
}

// Handle executes the query
func (h *FindOptimalRouteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*FindOptimalRouteQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	explorer, err := h.sessions.Get(query.SessionID)
	if err != nil {
		return nil, err
	}

	route, err := explorer.FindOptimalRoute(query.Target)
	if err != nil {
		if errors.Is(err, trading.ErrRouteUnreachable) {
			return &FindOptimalRouteResponse{Found: false}, nil
		}
		return nil, fmt.Errorf("route query failed: %w", err)
	}

	steps, err := replayRoute(explorer.Start(), route)
	if err != nil {
		return nil, err
	}
	return &FindOptimalRouteResponse{Found: true, Steps: steps}, nil
}

// replayRoute applies the route to the starting basket step by step so
// each DTO carries the inventory produced by its trade
func replayRoute(start shared.Basket, route []trading.TradeRule) ([]types.TradeStepDTO, error) {
	steps := make([]types.TradeStepDTO, 0, len(route))
	basket := start
	for _, rule := range route {
		next, ok := rule.Apply(basket)
		if !ok {
			// The route came from parent-pointer reconstruction, so every
			// step must replay cleanly.
			return nil, fmt.Errorf("route replay rejected trade %v from %v", rule, basket)
		}
		steps = append(steps, types.TradeStepDTO{
			Give:    rule.Give(),
			Receive: rule.Receive(),
			After:   next,
		})
		basket = next
	}
	return steps, nil
}
