package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
)

type tradeRuleContext struct {
	rule   trading.TradeRule
	result shared.Basket
	ok     bool
}

func (trc *tradeRuleContext) reset() {
	trc.rule = trading.TradeRule{}
	trc.result = shared.ZeroBasket()
	trc.ok = false
}

func (trc *tradeRuleContext) theStandardRuleFromKindToKind(give, receive int) error {
	rule, err := trading.StandardRule(give, receive)
	if err != nil {
		return err
	}
	trc.rule = rule
	return nil
}

func (trc *tradeRuleContext) iApplyItToBasket(counts string) error {
	basket, err := parseCounts(counts)
	if err != nil {
		return err
	}
	trc.result, trc.ok = trc.rule.Apply(basket)
	return nil
}

func (trc *tradeRuleContext) theTradeShouldProduce(counts string) error {
	expected, err := parseCounts(counts)
	if err != nil {
		return err
	}
	if !trc.ok {
		return fmt.Errorf("expected the trade to succeed, but it was rejected")
	}
	if trc.result != expected {
		return fmt.Errorf("expected %v, got %v", expected, trc.result)
	}
	return nil
}

func (trc *tradeRuleContext) theTradeShouldBeRejected() error {
	if trc.ok {
		return fmt.Errorf("expected the trade to be rejected, got %v", trc.result)
	}
	return nil
}

func (trc *tradeRuleContext) theRuleShouldDisplayAs(expected string) error {
	display := trc.rule.Format(shared.DefaultVocabulary())
	if display != expected {
		return fmt.Errorf("expected %q, got %q", expected, display)
	}
	return nil
}

// InitializeTradeRuleScenario registers trade rule steps
func InitializeTradeRuleScenario(sc *godog.ScenarioContext) {
	trc := &tradeRuleContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		trc.reset()
		return ctx, nil
	})

	sc.Step(`^the standard rule from kind (\d+) to kind (\d+)$`, trc.theStandardRuleFromKindToKind)
	sc.Step(`^I apply it to basket "([^"]*)"$`, trc.iApplyItToBasket)
	sc.Step(`^the trade should produce "([^"]*)"$`, trc.theTradeShouldProduce)
	sc.Step(`^the trade should be rejected$`, trc.theTradeShouldBeRejected)
	sc.Step(`^the rule should display as "([^"]*)"$`, trc.theRuleShouldDisplayAs)
}
