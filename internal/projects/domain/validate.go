package domain

// Validate checks the three required enumerated fields. Presence is checked for
// all of them before membership, each pass in the order project_type, timeline,
// difficulty, and the first violation is returned.
func Validate(cfg ProjectConfig) error {
	fields := []struct {
		name  string
		value string
		legal []string
	}{
		{"project_type", cfg.ProjectType, ProjectTypes},
		{"timeline", cfg.Timeline, Timelines},
		{"difficulty", cfg.Difficulty, Difficulties},
	}

	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name, Missing: true}
		}
	}
	for _, f := range fields {
		if !contains(f.legal, f.value) {
			return &ValidationError{Field: f.name, Value: f.value}
		}
	}
	return nil
}
