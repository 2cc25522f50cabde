package types

import "github.com/tradeworks/tradeworks-go/internal/domain/shared"

// StatisticsDTO summarizes a completed exploration for presentation
type StatisticsDTO struct {
	StateCount int
	MinTotal   int
	MaxTotal   int
	MaxTrades  int
}

// TradeStepDTO is one trade of a reconstructed route. After holds the
// basket produced by replaying the trade, so presentation layers can
// print the running inventory without redoing the arithmetic.
type TradeStepDTO struct {
	Give    shared.Basket
	Receive shared.Basket
	After   shared.Basket
}
