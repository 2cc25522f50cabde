package queries_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/queries"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/services"
	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
)

func exploredSession(t *testing.T, counts ...int) (*services.SessionRegistry, uuid.UUID) {
	t.Helper()
	start, err := shared.NewBasket(counts...)
	require.NoError(t, err)
	explorer, err := trading.NewExplorer(start, 5, nil)
	require.NoError(t, err)
	explorer.Explore()

	registry := services.NewSessionRegistry()
	return registry, registry.Add(explorer)
}

func TestGetStatisticsHandler_ReturnsSummary(t *testing.T) {
	registry, sessionID := exploredSession(t, 3)
	handler := queries.NewGetStatisticsHandler(registry)

	response, err := handler.Handle(context.Background(), &queries.GetStatisticsQuery{SessionID: sessionID})

	require.NoError(t, err)
	resp := response.(*queries.GetStatisticsResponse)
	assert.Equal(t, 5, resp.Statistics.StateCount)
	assert.Equal(t, 1, resp.Statistics.MaxTrades)
}

func TestGetStatisticsHandler_UnknownSession(t *testing.T) {
	handler := queries.NewGetStatisticsHandler(services.NewSessionRegistry())

	_, err := handler.Handle(context.Background(), &queries.GetStatisticsQuery{SessionID: uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFindOptimalRouteHandler_RouteFound(t *testing.T) {
	registry, sessionID := exploredSession(t, 3)
	handler := queries.NewFindOptimalRouteHandler(registry)

	target, _ := shared.NewBasket(0, 1)
	response, err := handler.Handle(context.Background(), &queries.FindOptimalRouteQuery{
		SessionID: sessionID,
		Target:    target,
	})

	require.NoError(t, err)
	resp := response.(*queries.FindOptimalRouteResponse)
	require.True(t, resp.Found)
	require.Len(t, resp.Steps, 1)
	assert.Equal(t, 3, resp.Steps[0].Give.Count(0))
	assert.Equal(t, 1, resp.Steps[0].Receive.Count(1))
	assert.Equal(t, 1, resp.Steps[0].After.Count(1))
	assert.Equal(t, 0, resp.Steps[0].After.Count(0))
}

func TestFindOptimalRouteHandler_Unreachable(t *testing.T) {
	registry, sessionID := exploredSession(t, 2)
	handler := queries.NewFindOptimalRouteHandler(registry)

	target, _ := shared.NewBasket(0, 1)
	response, err := handler.Handle(context.Background(), &queries.FindOptimalRouteQuery{
		SessionID: sessionID,
		Target:    target,
	})

	require.NoError(t, err)
	resp := response.(*queries.FindOptimalRouteResponse)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Steps)
}

func TestFindOptimalRouteHandler_EmptyRouteWhenStartCovers(t *testing.T) {
	registry, sessionID := exploredSession(t, 3, 1)
	handler := queries.NewFindOptimalRouteHandler(registry)

	target, _ := shared.NewBasket(1, 1)
	response, err := handler.Handle(context.Background(), &queries.FindOptimalRouteQuery{
		SessionID: sessionID,
		Target:    target,
	})

	require.NoError(t, err)
	resp := response.(*queries.FindOptimalRouteResponse)
	assert.True(t, resp.Found)
	assert.Empty(t, resp.Steps)
}
