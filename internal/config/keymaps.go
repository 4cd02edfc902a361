package config

// KeyMappings defines all configurable key bindings.
// Arrow keys are always bound to previous/next in addition to these.
type KeyMappings struct {
	// Navigation
	PrevEntity string `yaml:"prev_entity" koanf:"prev_entity"`
	NextEntity string `yaml:"next_entity" koanf:"next_entity"`

	// Assignment
	Assign string `yaml:"assign" koanf:"assign"`

	// Other
	ShowHelp string `yaml:"show_help" koanf:"show_help"`
	Quit     string `yaml:"quit" koanf:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevEntity: "k",
		NextEntity: "j",
		Assign:     "enter",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PrevEntity == "" {
		k.PrevEntity = defaults.PrevEntity
	}
	if k.NextEntity == "" {
		k.NextEntity = defaults.NextEntity
	}
	if k.Assign == "" {
		k.Assign = defaults.Assign
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}

// all returns every binding, for duplicate detection
func (k KeyMappings) all() map[string]string {
	return map[string]string{
		"prev_entity": k.PrevEntity,
		"next_entity": k.NextEntity,
		"assign":      k.Assign,
		"show_help":   k.ShowHelp,
		"quit":        k.Quit,
	}
}
