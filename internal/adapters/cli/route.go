package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/commands"
	"github.com/tradeworks/tradeworks-go/internal/application/exploration/queries"
	"github.com/tradeworks/tradeworks-go/internal/infrastructure/config"
)

// NewRouteCommand creates the route command
func NewRouteCommand() *cobra.Command {
	var startFlag string
	var targetFlag string
	var maxTotal int
	var ruleFlags []string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a trade route to an inventory covering the target basket",
		Long: `Explore the reachable inventories, then print an ordered trade sequence
leading to an explored inventory that covers the target basket.

Among covering inventories the one with the greatest total resource count is
chosen, which may yield a longer route than the minimum trade count.

Examples:
  tradeworks route --start 3,0,0,0,0 --target 0,1,0,0,0
  tradeworks route --start 6,0,0,0,0 --max 5 --rule eee:w --target 0,1,0,0,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startFlag == "" {
				return fmt.Errorf("--start flag is required")
			}
			if targetFlag == "" {
				return fmt.Errorf("--target flag is required")
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
			target, err := parseBasket(targetFlag)
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

			exploreResponse, err := m.Send(context.Background(), &commands.ExploreStatesCommand{
				Start:       start,
				MaxTotal:    maxTotal,
				CustomRules: rules,
			})
			if err != nil {
				return err
			}
			session := exploreResponse.(*commands.ExploreStatesResponse)
			log.Printf("Explored %d states in %s", session.Statistics.StateCount, session.Elapsed)

			routeResponse, err := m.Send(context.Background(), &queries.FindOptimalRouteQuery{
				SessionID: session.SessionID,
				Target:    target,
			})
			if err != nil {
				return err
			}
			route := routeResponse.(*queries.FindOptimalRouteResponse)

			out := cmd.OutOrStdout()
			if !route.Found {
				fmt.Fprintln(out, "No route found")
				return nil
			}
			if len(route.Steps) == 0 {
				fmt.Fprintf(out, "Already satisfied: %s covers %s\n",
					vocab.FormatBasket(start, false), vocab.FormatBasket(target, false))
				return nil
			}
			printRoute(out, start, route.Steps, vocab)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Starting basket, e.g. 3,0,0,0,0 (required)")
	cmd.Flags().StringVar(&targetFlag, "target", "", "Target basket to cover, e.g. 0,1,0,0,0 (required)")
	cmd.Flags().IntVar(&maxTotal, "max", 0, "Cap on total resources of discovered states (default from config)")
	cmd.Flags().StringArrayVar(&ruleFlags, "rule", nil, "Custom trade rule <give>:<receive>, e.g. eee:w (repeatable)")

	return cmd
}
