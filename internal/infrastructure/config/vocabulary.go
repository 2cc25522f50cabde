package config

// VocabularyConfig holds the display names for the five resource kinds
type VocabularyConfig struct {
	Kinds []KindConfig `mapstructure:"kinds" validate:"len=5,dive"`
}

// KindConfig holds one kind's display forms. A missing plural defaults
// to singular + "s".
type KindConfig struct {
	Singular string `mapstructure:"singular" validate:"required"`
	Plural   string `mapstructure:"plural"`
}
