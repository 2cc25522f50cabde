package config

// ExplorationConfig holds exploration settings
type ExplorationConfig struct {
	// Inclusive cap on the total resource count of newly discovered states
	MaxTotal int `mapstructure:"max_total" validate:"min=1"`

	// Preconfigured custom trade rules, applied before the generated
	// standard rules
	Rules []RuleConfig `mapstructure:"rules" validate:"dive"`
}

// RuleConfig describes one custom trade rule as per-kind quantities
// (kind 0 first)
type RuleConfig struct {
	Give    []int `mapstructure:"give" validate:"max=5,dive,min=0"`
	Receive []int `mapstructure:"receive" validate:"max=5,dive,min=0"`
}
