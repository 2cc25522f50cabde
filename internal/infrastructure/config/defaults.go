package config

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Exploration defaults
	if cfg.Exploration.MaxTotal == 0 {
		cfg.Exploration.MaxTotal = 20
	}

	// Vocabulary defaults
	if len(cfg.Vocabulary.Kinds) == 0 {
		cfg.Vocabulary.Kinds = []KindConfig{
			{Singular: "egg", Plural: "eggs"},
			{Singular: "worm", Plural: "worms"},
			{Singular: "cake", Plural: "cakes"},
			{Singular: "fish", Plural: "fishes"},
			{Singular: "meat", Plural: "meats"},
		}
	}
}
