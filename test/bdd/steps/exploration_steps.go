package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
)

type explorationContext struct {
	explorer *trading.Explorer
	route    []trading.TradeRule
	routeErr error
}

func (ec *explorationContext) reset() {
	ec.explorer = nil
	ec.route = nil
	ec.routeErr = nil
}

func (ec *explorationContext) aStartingBasketWithCap(counts string, cap int) error {
	start, err := parseCounts(counts)
	if err != nil {
		return err
	}
	ec.explorer, err = trading.NewExplorer(start, cap, nil)
	return err
}

func (ec *explorationContext) iExploreTheReachableStates() error {
	if ec.explorer == nil {
		return fmt.Errorf("no explorer set up")
	}
	ec.explorer.Explore()
	return nil
}

func (ec *explorationContext) exactlyStatesShouldBeRecorded(expected int) error {
	if got := len(ec.explorer.States()); got != expected {
		return fmt.Errorf("expected %d states, got %d", expected, got)
	}
	return nil
}

func (ec *explorationContext) statisticsShouldReportMinAndMaxTotal(minTotal, maxTotal int) error {
	stats, err := ec.explorer.Statistics()
	if err != nil {
		return err
	}
	if stats.MinTotal != minTotal || stats.MaxTotal != maxTotal {
		return fmt.Errorf("expected totals %d..%d, got %d..%d", minTotal, maxTotal, stats.MinTotal, stats.MaxTotal)
	}
	return nil
}

func (ec *explorationContext) statisticsShouldReportMaxTrades(expected int) error {
	stats, err := ec.explorer.Statistics()
	if err != nil {
		return err
	}
	if stats.MaxTrades != expected {
		return fmt.Errorf("expected max trades %d, got %d", expected, stats.MaxTrades)
	}
	return nil
}

func (ec *explorationContext) theRootStateShouldKeepTotal(expected int) error {
	states := ec.explorer.States()
	if len(states) == 0 {
		return fmt.Errorf("state table is empty")
	}
	if total := states[0].Basket.Total(); total != expected {
		return fmt.Errorf("expected root total %d, got %d", expected, total)
	}
	return nil
}

func (ec *explorationContext) everyDiscoveredStateShouldHaveTotalAtMost(cap int) error {
	for _, entry := range ec.explorer.States() {
		if entry.IsRoot() {
			continue
		}
		if total := entry.Basket.Total(); total > cap {
			return fmt.Errorf("state %v exceeds cap %d", entry.Basket, cap)
		}
	}
	return nil
}

func (ec *explorationContext) iRequestARouteTo(counts string) error {
	target, err := parseCounts(counts)
	if err != nil {
		return err
	}
	ec.route, ec.routeErr = ec.explorer.FindOptimalRoute(target)
	return nil
}

func (ec *explorationContext) theRouteShouldHaveTrades(expected int) error {
	if ec.routeErr != nil {
		return fmt.Errorf("expected a route, got error: %w", ec.routeErr)
	}
	if len(ec.route) != expected {
		return fmt.Errorf("expected %d trades, got %d", expected, len(ec.route))
	}
	return nil
}

func (ec *explorationContext) replayingTheRouteShouldCover(counts string) error {
	target, err := parseCounts(counts)
	if err != nil {
		return err
	}
	basket := ec.explorer.Start()
	for _, rule := range ec.route {
		next, ok := rule.Apply(basket)
		if !ok {
			return fmt.Errorf("route replay rejected trade %v from %v", rule, basket)
		}
		basket = next
	}
	if !basket.Contains(target) {
		return fmt.Errorf("replayed basket %v does not cover %v", basket, target)
	}
	return nil
}

func (ec *explorationContext) theRouteShouldBeUnreachable() error {
	if !errors.Is(ec.routeErr, trading.ErrRouteUnreachable) {
		return fmt.Errorf("expected unreachable, got route %v (err %v)", ec.route, ec.routeErr)
	}
	return nil
}

func (ec *explorationContext) theRouteShouldBeEmpty() error {
	if ec.routeErr != nil {
		return fmt.Errorf("expected an empty route, got error: %w", ec.routeErr)
	}
	if len(ec.route) != 0 {
		return fmt.Errorf("expected an empty route, got %d trades", len(ec.route))
	}
	return nil
}

// InitializeExplorationScenario registers explorer and route steps
func InitializeExplorationScenario(sc *godog.ScenarioContext) {
	ec := &explorationContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	sc.Step(`^a starting basket "([^"]*)" with cap (\d+)$`, ec.aStartingBasketWithCap)
	sc.Step(`^I explore the reachable states$`, ec.iExploreTheReachableStates)
	sc.Step(`^exactly (\d+) states? should be recorded$`, ec.exactlyStatesShouldBeRecorded)
	sc.Step(`^the statistics should report min total (\d+) and max total (\d+)$`, ec.statisticsShouldReportMinAndMaxTotal)
	sc.Step(`^the statistics should report max trades (\d+)$`, ec.statisticsShouldReportMaxTrades)
	sc.Step(`^the root state should keep total (\d+)$`, ec.theRootStateShouldKeepTotal)
	sc.Step(`^every discovered state should have total at most (\d+)$`, ec.everyDiscoveredStateShouldHaveTotalAtMost)
	sc.Step(`^I request a route to "([^"]*)"$`, ec.iRequestARouteTo)
	sc.Step(`^the route should have (\d+) trades?$`, ec.theRouteShouldHaveTrades)
	sc.Step(`^replaying the route should cover "([^"]*)"$`, ec.replayingTheRouteShouldCover)
	sc.Step(`^the route should be unreachable$`, ec.theRouteShouldBeUnreachable)
	sc.Step(`^the route should be empty$`, ec.theRouteShouldBeEmpty)
}
