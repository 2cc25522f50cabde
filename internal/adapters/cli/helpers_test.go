package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeworks/tradeworks-go/internal/application/exploration/types"
	"github.com/tradeworks/tradeworks-go/internal/domain/shared"
	"github.com/tradeworks/tradeworks-go/internal/infrastructure/config"
)

func TestParseBasket(t *testing.T) {
	b, err := parseBasket("3, 0,0,0,1")

	require.NoError(t, err)
	assert.Equal(t, 3, b.Count(0))
	assert.Equal(t, 1, b.Count(4))
}

func TestParseBasket_WrongLength(t *testing.T) {
	_, err := parseBasket("1,2,3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "comma-separated")
}

func TestParseBasket_NonNumeric(t *testing.T) {
	_, err := parseBasket("1,2,x,4,5")

	require.Error(t, err)
}

func TestParseBasket_NegativeCount(t *testing.T) {
	_, err := parseBasket("1,-2,3,4,5")

	require.Error(t, err)
}

func TestParseRule(t *testing.T) {
	rule, err := parseRule("eee:w", shared.DefaultVocabulary())

	require.NoError(t, err)
	assert.Equal(t, 3, rule.Give().Count(0))
	assert.Equal(t, 1, rule.Receive().Count(1))
}

func TestParseRule_UnknownLetterRejected(t *testing.T) {
	_, err := parseRule("xxx:w", shared.DefaultVocabulary())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind letter")
}

func TestParseRule_MissingSeparator(t *testing.T) {
	_, err := parseRule("eeew", shared.DefaultVocabulary())

	require.Error(t, err)
}

func TestLettersToBasket_LenientSkipsUnknown(t *testing.T) {
	b, err := lettersToBasket("e?E w", shared.DefaultVocabulary(), false)

	require.NoError(t, err)
	assert.Equal(t, 2, b.Count(0))
	assert.Equal(t, 1, b.Count(1))
}

func TestVocabularyFromConfig(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	vocab, err := vocabularyFromConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, "worm", vocab.Name(1, 1))
}

func TestRulesFromConfig(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Exploration.Rules = []config.RuleConfig{
		{Give: []int{1, 0, 0, 0, 0}, Receive: []int{0, 1, 0, 0, 0}},
	}

	rules, err := rulesFromConfig(cfg)

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 1, rules[0].Give().Count(0))
	assert.Equal(t, 1, rules[0].Receive().Count(1))
}

func TestPrintRoute(t *testing.T) {
	vocab := shared.DefaultVocabulary()
	start, _ := shared.NewBasket(3)
	after, _ := shared.NewBasket(0, 1)
	give, _ := shared.NewBasket(3)
	receive, _ := shared.NewBasket(0, 1)

	var sb strings.Builder
	printRoute(&sb, start, []types.TradeStepDTO{{Give: give, Receive: receive, After: after}}, vocab)

	output := sb.String()
	assert.Contains(t, output, "3 eggs -> 1 worm")
	assert.Contains(t, output, "(3 eggs, 0 worms, 0 cakes, 0 fishes, 0 meats)")
	assert.Contains(t, output, "(0 eggs, 1 worm, 0 cakes, 0 fishes, 0 meats)")
}

func TestPrintStatistics(t *testing.T) {
	var sb strings.Builder

	printStatistics(&sb, types.StatisticsDTO{StateCount: 5, MinTotal: 1, MaxTotal: 3, MaxTrades: 1})

	assert.Contains(t, sb.String(), "Total combinations:")
	assert.Contains(t, sb.String(), "5")
}
