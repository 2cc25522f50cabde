package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
)

// parseCounts turns "3,0,2,0,1" into a basket, failing the step on bad input
func parseCounts(value string) (shared.Basket, error) {
	parts := strings.Split(value, ",")
	counts := make([]int, 0, len(parts))
	for _, part := range parts {
		count, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return shared.Basket{}, fmt.Errorf("bad count %q: %w", part, err)
		}
		counts = append(counts, count)
	}
	return shared.NewBasket(counts...)
}

type basketContext struct {
	basket     shared.Basket
	boolResult bool
	err        error
}

func (bc *basketContext) reset() {
	bc.basket = shared.ZeroBasket()
	bc.boolResult = false
	bc.err = nil
}

func (bc *basketContext) aBasket(counts string) error {
	bc.basket, bc.err = parseCounts(counts)
	return bc.err
}

func (bc *basketContext) iAttemptToCreateABasket(counts string) error {
	bc.basket, bc.err = parseCounts(counts)
	return nil
}

func (bc *basketContext) itsTotalShouldBe(expected int) error {
	if total := bc.basket.Total(); total != expected {
		return fmt.Errorf("expected total %d, got %d", expected, total)
	}
	return nil
}

func (bc *basketContext) iCheckWhetherItContains(counts string) error {
	other, err := parseCounts(counts)
	if err != nil {
		return err
	}
	bc.boolResult = bc.basket.Contains(other)
	return nil
}

func (bc *basketContext) theCheckShouldBe(expected string) error {
	want := expected == "true"
	if bc.boolResult != want {
		return fmt.Errorf("expected %v, got %v", want, bc.boolResult)
	}
	return nil
}

func (bc *basketContext) basketCreationShouldFail() error {
	if bc.err == nil {
		return fmt.Errorf("expected basket creation to fail, but it succeeded")
	}
	return nil
}

// InitializeBasketScenario registers basket value object steps
func InitializeBasketScenario(sc *godog.ScenarioContext) {
	bc := &basketContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		bc.reset()
		return ctx, nil
	})

	sc.Step(`^a basket "([^"]*)"$`, bc.aBasket)
	sc.Step(`^I attempt to create a basket "([^"]*)"$`, bc.iAttemptToCreateABasket)
	sc.Step(`^its total should be (\d+)$`, bc.itsTotalShouldBe)
	sc.Step(`^I check whether it contains "([^"]*)"$`, bc.iCheckWhetherItContains)
	sc.Step(`^the check should be (true|false)$`, bc.theCheckShouldBe)
	sc.Step(`^basket creation should fail$`, bc.basketCreationShouldFail)
}
