package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/commands"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/queries"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/services"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/types"
	"github.com/tradeworks/tradeworks-go/internal/application/mediator"
	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
	"github.com/tradeworks/tradeworks-go/internal/infrastructure/config"
)

// newExplorationMediator wires the exploration handlers onto a fresh
// mediator backed by an in-memory session registry
func newExplorationMediator() (mediator.Mediator, error) {
	registry := services.NewSessionRegistry()
	m := mediator.NewMediator()

	if err := mediator.RegisterHandler[*commands.ExploreStatesCommand](m, commands.NewExploreStatesHandler(registry)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[*queries.GetStatisticsQuery](m, queries.NewGetStatisticsHandler(registry)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[*queries.FindOptimalRouteQuery](m, queries.NewFindOptimalRouteHandler(registry)); err != nil {
		return nil, err
	}
	return m, nil
}

// parseBasket parses comma-separated per-kind counts, kind 0 first:
// "3,0,0,0,1"
func parseBasket(value string) (shared.Basket, error) {
	parts := strings.Split(value, ",")
	if len(parts) != shared.KindCount {
		return shared.Basket{}, fmt.Errorf("expected %d comma-separated counts, got %d", shared.KindCount, len(parts))
	}

	counts := make([]int, 0, shared.KindCount)
	for i, part := range parts {
		count, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return shared.Basket{}, fmt.Errorf("invalid count for kind %d: %q", i, strings.TrimSpace(part))
		}
		counts = append(counts, count)
	}
	return shared.NewBasket(counts...)
}

// parseRule parses the compact rule syntax "<give>:<receive>", each side
// a string of kind-initial letters: "eee:w" gives 3 eggs for 1 worm
func parseRule(value string, vocab shared.Vocabulary) (trading.TradeRule, error) {
	sides := strings.SplitN(value, ":", 2)
	if len(sides) != 2 {
		return trading.TradeRule{}, fmt.Errorf("invalid rule %q, expected <give>:<receive>", value)
	}

	give, err := lettersToBasket(sides[0], vocab, true)
	if err != nil {
		return trading.TradeRule{}, fmt.Errorf("invalid rule %q: %w", value, err)
	}
	receive, err := lettersToBasket(sides[1], vocab, true)
	if err != nil {
		return trading.TradeRule{}, fmt.Errorf("invalid rule %q: %w", value, err)
	}
	return trading.NewTradeRule(give, receive), nil
}

// lettersToBasket counts one basket unit per kind-initial letter. In
// strict mode an unknown letter is an error; otherwise it is skipped,
// matching the forgiving interactive entry.
func lettersToBasket(letters string, vocab shared.Vocabulary, strict bool) (shared.Basket, error) {
	basket := shared.ZeroBasket()
	for _, r := range strings.ToLower(letters) {
		if r == ' ' || r == '\t' {
			continue
		}
		kind, ok := vocab.KindByInitial(r)
		if !ok {
			if strict {
				return shared.Basket{}, fmt.Errorf("unknown kind letter %q", string(r))
			}
			continue
		}
		basket.AddByIndex(kind, 1)
	}
	return basket, nil
}

// vocabularyFromConfig builds the display vocabulary from configuration
func vocabularyFromConfig(cfg *config.Config) (shared.Vocabulary, error) {
	if len(cfg.Vocabulary.Kinds) != shared.KindCount {
		return shared.Vocabulary{}, fmt.Errorf("expected %d kinds in vocabulary, got %d", shared.KindCount, len(cfg.Vocabulary.Kinds))
	}

	var names [shared.KindCount]shared.KindName
	for i, kind := range cfg.Vocabulary.Kinds {
		names[i] = shared.KindName{Singular: kind.Singular, Plural: kind.Plural}
	}
	return shared.NewVocabulary(names)
}

// rulesFromConfig converts preconfigured rule quantities to trade rules
func rulesFromConfig(cfg *config.Config) ([]trading.TradeRule, error) {
	rules := make([]trading.TradeRule, 0, len(cfg.Exploration.Rules))
	for i, rc := range cfg.Exploration.Rules {
		give, err := shared.NewBasket(rc.Give...)
		if err != nil {
			return nil, fmt.Errorf("invalid give side of configured rule %d: %w", i, err)
		}
		receive, err := shared.NewBasket(rc.Receive...)
		if err != nil {
			return nil, fmt.Errorf("invalid receive side of configured rule %d: %w", i, err)
		}
		rules = append(rules, trading.NewTradeRule(give, receive))
	}
	return rules, nil
}

// printStatistics renders an exploration summary as an aligned table
func printStatistics(w io.Writer, stats types.StatisticsDTO) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total combinations:\t%d\n", stats.StateCount)
	fmt.Fprintf(tw, "Min resources:\t%d\n", stats.MinTotal)
	fmt.Fprintf(tw, "Max resources:\t%d\n", stats.MaxTotal)
	fmt.Fprintf(tw, "Max trades:\t%d\n", stats.MaxTrades)
	tw.Flush()
}

// printRoute renders a route as one line per trade, prefixed with the
// inventory held before the trade, and closes with the final inventory
func printRoute(w io.Writer, start shared.Basket, steps []types.TradeStepDTO, vocab shared.Vocabulary) {
	current := start
	for _, step := range steps {
		fmt.Fprintf(w, "(%s) %s -> %s\n",
			vocab.FormatBasket(current, true),
			vocab.FormatBasket(step.Give, false),
			vocab.FormatBasket(step.Receive, false))
		current = step.After
	}
	fmt.Fprintf(w, "(%s)\n", vocab.FormatBasket(current, true))
}
