package trading

import (
	"fmt"

	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
)

// rootParent marks the starting basket's entry, which has no discovery parent.
const rootParent = -1

// StateEntry is one row of the explored-state table: a reachable basket
// plus a back-reference to the entry it was discovered from. Parent is a
// table index, never an ownership edge; indices only ever point to
// earlier entries, so the table is a flat arena encoding the discovery
// tree.
type StateEntry struct {
	Basket shared.Basket
	Parent int       // index of the discovery parent, rootParent for the root
	Rule   TradeRule // rule applied at the parent; zero value for the root
}

// IsRoot reports whether the entry is the starting basket.
func (e StateEntry) IsRoot() bool {
	return e.Parent == rootParent
}

// Statistics summarizes a completed exploration.
type Statistics struct {
	StateCount int // total explored-state table entries
	MinTotal   int // smallest basket total across all entries
	MaxTotal   int // largest basket total across all entries
	MaxTrades  int // longest trade-count distance from the root
}

// Explorer owns a starting basket, a rule set and a cap on total
// resources, and enumerates every distinct basket reachable by applying
// rules repeatedly. It is a pure domain service: single-threaded,
// synchronous, exclusively owned by its caller.
type Explorer struct {
	start    shared.Basket
	maxTotal int
	rules    []TradeRule
	states   []StateEntry
}

// NewExplorer creates an explorer with validation. The 20 generated
// standard rules are appended after the caller's custom rules; rules
// with identical give/receive baskets are deliberately kept, the state
// dedup makes the extra attempts harmless.
func NewExplorer(start shared.Basket, maxTotal int, customRules []TradeRule) (*Explorer, error) {
	if !start.IsValid() {
		return nil, shared.NewValidationError("start", "starting basket has negative counters")
	}
	if maxTotal < 1 {
		return nil, shared.NewValidationError("maxTotal", fmt.Sprintf("cap must be positive, got %d", maxTotal))
	}

	rules := make([]TradeRule, 0, len(customRules)+shared.KindCount*(shared.KindCount-1))
	rules = append(rules, customRules...)
	rules = append(rules, StandardRules()...)

	return &Explorer{
		start:    start,
		maxTotal: maxTotal,
		rules:    rules,
	}, nil
}

// Start returns the starting basket.
func (e *Explorer) Start() shared.Basket {
	return e.start
}

// Rules returns the full rule list, custom rules first.
func (e *Explorer) Rules() []TradeRule {
	return e.rules
}

// States returns the explored-state table. Index 0 is always the root.
// The table is read-only after Explore returns; callers must not mutate it.
func (e *Explorer) States() []StateEntry {
	return e.states
}

// Explore runs a bounded breadth-first search over the state graph
// induced by the rule set and fills the explored-state table. Any prior
// table is discarded, so calling again restarts from scratch.
//
// FIFO expansion guarantees the parent chain recorded for a state is a
// minimum-trade-count path: closer states are discovered and fixed
// before farther ones. The cap bounds newly discovered states only; the
// root is recorded even when its total already exceeds the cap.
func (e *Explorer) Explore() {
	states := []StateEntry{{Basket: e.start, Parent: rootParent}}
	seen := map[shared.Basket]struct{}{e.start: {}}
	frontier := []int{0}

	for len(frontier) > 0 {
		index := frontier[0]
		frontier = frontier[1:]
		current := states[index].Basket

		for _, rule := range e.rules {
			next, ok := rule.Apply(current)
			if !ok {
				continue
			}
			if next.Total() > e.maxTotal {
				continue
			}
			if _, known := seen[next]; known {
				continue
			}
			seen[next] = struct{}{}
			frontier = append(frontier, len(states))
			states = append(states, StateEntry{Basket: next, Parent: index, Rule: rule})
		}
	}

	e.states = states
}

// Statistics summarizes the explored-state table. Returns ErrNotExplored
// when the table is empty (Explore has not run).
func (e *Explorer) Statistics() (Statistics, error) {
	if len(e.states) == 0 {
		return Statistics{}, ErrNotExplored
	}

	stats := Statistics{
		StateCount: len(e.states),
		MinTotal:   e.states[0].Basket.Total(),
		MaxTotal:   e.states[0].Basket.Total(),
	}
	for i, entry := range e.states {
		total := entry.Basket.Total()
		if total < stats.MinTotal {
			stats.MinTotal = total
		}
		if total > stats.MaxTotal {
			stats.MaxTotal = total
		}
		if entry.IsRoot() {
			continue
		}
		if length := e.ChainLength(i); length > stats.MaxTrades {
			stats.MaxTrades = length
		}
	}
	return stats, nil
}

// ChainLength counts the trades separating a table entry from the root
// along its discovery path. The root is at distance 0, a direct child at
// 1. A missing index counts as 0.
func (e *Explorer) ChainLength(index int) int {
	length := 0
	for index >= 0 && index < len(e.states) {
		parent := e.states[index].Parent
		if parent == rootParent {
			break
		}
		length++
		index = parent
	}
	return length
}

// FindOptimalRoute returns an ordered trade sequence leading from the
// starting basket to an explored state that covers the target, or
// ErrRouteUnreachable when no explored state qualifies. An empty route
// means the start already covers the target.
//
// Among qualifying states the one with the greatest basket total wins,
// first table entry on ties. The greatest-total policy can pick a route
// longer than the minimum trade count; it favors the richest covering
// inventory, not the shortest path.
func (e *Explorer) FindOptimalRoute(target shared.Basket) ([]TradeRule, error) {
	if e.start.Contains(target) {
		return []TradeRule{}, nil
	}

	best, bestTotal := -1, -1
	for i, entry := range e.states {
		if !entry.Basket.Contains(target) {
			continue
		}
		if total := entry.Basket.Total(); total > bestTotal {
			best, bestTotal = i, total
		}
	}
	if best < 0 {
		return nil, ErrRouteUnreachable
	}

	var route []TradeRule
	for index := best; !e.states[index].IsRoot(); index = e.states[index].Parent {
		route = append(route, e.states[index].Rule)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, nil
}
