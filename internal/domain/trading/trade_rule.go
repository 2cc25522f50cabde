package trading

import (
	"fmt"

	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
)

// standardGiveUnits is the give quantity of a generated standard rule:
// 3 of one kind buys 1 of another.
const standardGiveUnits = 3

// TradeRule is an immutable exchange: give one basket amount, receive
// another. Rules are created once at setup and never mutated.
type TradeRule struct {
	give    shared.Basket
	receive shared.Basket
}

// NewTradeRule creates a rule from arbitrary give/receive baskets.
// No ratio constraint is imposed on custom rules.
func NewTradeRule(give, receive shared.Basket) TradeRule {
	return TradeRule{give: give, receive: receive}
}

// StandardRule builds the canonical 3-for-1 rule between two distinct kinds.
func StandardRule(giveKind, receiveKind int) (TradeRule, error) {
	if giveKind < 0 || giveKind >= shared.KindCount {
		return TradeRule{}, shared.NewValidationError("giveKind", fmt.Sprintf("kind index %d out of range", giveKind))
	}
	if receiveKind < 0 || receiveKind >= shared.KindCount {
		return TradeRule{}, shared.NewValidationError("receiveKind", fmt.Sprintf("kind index %d out of range", receiveKind))
	}
	if giveKind == receiveKind {
		return TradeRule{}, shared.NewValidationError("receiveKind", "standard rule needs two distinct kinds")
	}

	give := shared.ZeroBasket()
	give.AddByIndex(giveKind, standardGiveUnits)
	receive := shared.ZeroBasket()
	receive.AddByIndex(receiveKind, 1)
	return TradeRule{give: give, receive: receive}, nil
}

// StandardRules generates the full rule family: one standard rule for
// every ordered pair of distinct kinds (20 rules for 5 kinds).
func StandardRules() []TradeRule {
	rules := make([]TradeRule, 0, shared.KindCount*(shared.KindCount-1))
	for i := 0; i < shared.KindCount; i++ {
		for j := 0; j < shared.KindCount; j++ {
			if i == j {
				continue
			}
			rule, _ := StandardRule(i, j)
			rules = append(rules, rule)
		}
	}
	return rules
}

// Give returns the basket amount surrendered by the trade.
func (r TradeRule) Give() shared.Basket {
	return r.give
}

// Receive returns the basket amount gained by the trade.
func (r TradeRule) Receive() shared.Basket {
	return r.receive
}

// Apply computes basket - give + receive. The trade is rejected (ok ==
// false) iff any resulting counter would be negative. Counters are
// combined per kind, so a give that transiently overdraws a kind is
// still valid when the receive side restores it. Pure, no side effects.
func (r TradeRule) Apply(b shared.Basket) (result shared.Basket, ok bool) {
	for i := 0; i < shared.KindCount; i++ {
		count := b.Count(i) - r.give.Count(i) + r.receive.Count(i)
		if count < 0 {
			return shared.Basket{}, false
		}
		result.AddByIndex(i, count)
	}
	return result, true
}

// Format renders the rule as "<give> -> <receive>" using the vocabulary,
// non-zero counters only.
func (r TradeRule) Format(v shared.Vocabulary) string {
	return fmt.Sprintf("%s -> %s", v.FormatBasket(r.give, false), v.FormatBasket(r.receive, false))
}

func (r TradeRule) String() string {
	return fmt.Sprintf("%v -> %v", r.give, r.receive)
}
