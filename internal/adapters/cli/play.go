package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/commands"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/queries"
	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
	"github.com/tradeworks/tradeworks-go/internal/infrastructure/config"
)

// customTradePrompts is how many custom trade rules the interactive
// session asks for before exploring.
const customTradePrompts = 3

// NewPlayCommand creates the interactive play command
func NewPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Interactive session: enter an inventory, trades and a target",
		Long: `Walk through the puzzle interactively: enter your per-kind quantities,
three custom trades (as kind-initial letter strings, e.g. "eee" for three
eggs), then a target basket to route to.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			vocab, err := vocabularyFromConfig(cfg)
			if err != nil {
				return err
			}
			return runPlaySession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, vocab)
		},
	}
	return cmd
}

// runPlaySession drives the interactive flow. Split from the command so
// tests can feed scripted input.
func runPlaySession(in io.Reader, out io.Writer, cfg *config.Config, vocab shared.Vocabulary) error {
	scanner := bufio.NewScanner(in)

	start, err := promptBasket(scanner, out, vocab, "How many %s do you have?")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, letterHint(vocab))
	rules, err := rulesFromConfig(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < customTradePrompts; i++ {
		give, err := promptLetters(scanner, out, vocab, "Trade give: ")
		if err != nil {
			return err
		}
		receive, err := promptLetters(scanner, out, vocab, "Trade receive: ")
		if err != nil {
			return err
		}
		rules = append(rules, trading.NewTradeRule(give, receive))
	}

	m, err := newExplorationMediator()
	if err != nil {
		return err
	}

	exploreResponse, err := m.Send(context.Background(), &commands.ExploreStatesCommand{
		Start:       start,
		MaxTotal:    cfg.Exploration.MaxTotal,
		CustomRules: rules,
	})
	if err != nil {
		return err
	}
	session := exploreResponse.(*commands.ExploreStatesResponse)

	fmt.Fprintf(out, "Elapsed time: %s\n", session.Elapsed)
	printStatistics(out, session.Statistics)

	target, err := promptBasket(scanner, out, vocab, "How many %s do you want?")
	if err != nil {
		return err
	}

	routeResponse, err := m.Send(context.Background(), &queries.FindOptimalRouteQuery{
		SessionID: session.SessionID,
		Target:    target,
	})
	if err != nil {
		return err
	}
	route := routeResponse.(*queries.FindOptimalRouteResponse)

	if !route.Found {
		fmt.Fprintln(out, "No route found")
		return nil
	}
	printRoute(out, start, route.Steps, vocab)
	return nil
}

// promptBasket reads one quantity per kind, re-prompting on bad input
func promptBasket(scanner *bufio.Scanner, out io.Writer, vocab shared.Vocabulary, question string) (shared.Basket, error) {
	basket := shared.ZeroBasket()
	for i := 0; i < shared.KindCount; i++ {
		fmt.Fprintf(out, question+"\n", vocab.Name(i, 2))
		for {
			fmt.Fprint(out, ">> ")
			if !scanner.Scan() {
				return shared.Basket{}, fmt.Errorf("input ended before all quantities were read: %w", scanner.Err())
			}
			value, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil || value < 0 {
				fmt.Fprintln(out, "Please enter a non-negative number")
				continue
			}
			basket.AddByIndex(i, value)
			break
		}
	}
	return basket, nil
}

// promptLetters reads one letter-string basket (lenient: unknown letters
// are ignored, as in the classic console flow)
func promptLetters(scanner *bufio.Scanner, out io.Writer, vocab shared.Vocabulary, prompt string) (shared.Basket, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		return shared.Basket{}, fmt.Errorf("input ended before the trade was read: %w", scanner.Err())
	}
	basket, _ := lettersToBasket(scanner.Text(), vocab, false)
	return basket, nil
}

// letterHint explains the letter syntax using the configured vocabulary,
// e.g. "Use E for eggs, W for worms, ..."
func letterHint(vocab shared.Vocabulary) string {
	parts := make([]string, 0, shared.KindCount)
	for i := 0; i < shared.KindCount; i++ {
		parts = append(parts, fmt.Sprintf("%c for %s", unicode.ToUpper(vocab.Initial(i)), vocab.Name(i, 2)))
	}
	return "Use " + strings.Join(parts, ", ")
}
