package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/commands"
	"github.com/tradeworks/tradeworks-go/internal/infrastructure/config"
)

// NewExploreCommand creates the explore command
func NewExploreCommand() *cobra.Command {
	var startFlag string
	var maxTotal int
	var ruleFlags []string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Enumerate every reachable inventory and print statistics",
		Long: `Run a bounded breadth-first exploration of the inventories reachable
from the starting basket. Custom rules are tried before the 20 generated
standard rules (3 of one kind for 1 of another).

Baskets are comma-separated per-kind counts, kind 0 first. Rules use the
compact letter syntax <give>:<receive> with each kind's initial letter.

Examples:
  tradeworks explore --start 3,0,0,0,0 --max 20
  tradeworks explore --start 6,0,0,0,0 --max 5 --rule eee:w --rule ww:c`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startFlag == "" {
				return fmt.Errorf("--start flag is required")
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			vocab, err := vocabularyFromConfig(cfg)
			if err != nil {
				return err
			}

			start, err := parseBasket(startFlag)
			if err != nil {
				return err
			}

			rules, err := rulesFromConfig(cfg)
			if err != nil {
				return err
			}
			for _, flag := range ruleFlags {
				rule, err := parseRule(flag, vocab)
				if err != nil {
					return err
				}
				rules = append(rules, rule)
			}

			if maxTotal == 0 {
				maxTotal = cfg.Exploration.MaxTotal
			}

			m, err := newExplorationMediator()
			if err != nil {
				return err
			}

			response, err := m.Send(context.Background(), &commands.ExploreStatesCommand{
				Start:       start,
				MaxTotal:    maxTotal,
				CustomRules: rules,
			})
			if err != nil {
				return err
			}
			resp := response.(*commands.ExploreStatesResponse)

			log.Printf("Explored %d states in %s", resp.Statistics.StateCount, resp.Elapsed)
			fmt.Fprintf(cmd.OutOrStdout(), "Starting basket: %s\n", vocab.FormatBasket(start, true))
			printStatistics(cmd.OutOrStdout(), resp.Statistics)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Starting basket, e.g. 3,0,0,0,0 (required)")
	cmd.Flags().IntVar(&maxTotal, "max", 0, "Cap on total resources of discovered states (default from config)")
	cmd.Flags().StringArrayVar(&ruleFlags, "rule", nil, "Custom trade rule <give>:<receive>, e.g. eee:w (repeatable)")

	return cmd
}
