package config

// Merge layers configs from lowest to highest precedence. A non-zero field in
// a later layer overrides the same field in earlier ones. Nil layers are
// skipped.
func Merge(layers ...*Config) *Config {
	merged := &Config{}
	for _, c := range layers {
		if c == nil {
			continue
		}
		if c.Title != "" {
			merged.Title = c.Title
		}
		if c.Strict != nil {
			v := *c.Strict
			merged.Strict = &v
		}
		mergeString(&merged.Generate.Input, c.Generate.Input)
		mergeString(&merged.Generate.Output, c.Generate.Output)
		mergeString(&merged.Refresh.Input, c.Refresh.Input)
		mergeString(&merged.Refresh.Dashboard, c.Refresh.Dashboard)
		mergeString(&merged.Stats.Format, c.Stats.Format)
		mergeString(&merged.Export.Dir, c.Export.Dir)
	}
	return merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
