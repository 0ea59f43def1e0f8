package config

// Merge layers upper over lower and returns a new Config. Non-zero upper
// fields win; zero-value upper fields fall through to lower. Neither input
// is modified.
func Merge(lower, upper *Config) *Config {
	var merged Config
	if lower != nil {
		merged = *lower
	}
	if upper == nil {
		return &merged
	}

	setString(&merged.Source.BaseURL, upper.Source.BaseURL)
	setString(&merged.Source.Dir, upper.Source.Dir)
	setString(&merged.Source.PathPattern, upper.Source.PathPattern)
	setString(&merged.Source.Timeout, upper.Source.Timeout)
	setString(&merged.Source.CacheTTL, upper.Source.CacheTTL)

	// A base URL in the upper layer replaces a lower directory and vice versa.
	if upper.Source.BaseURL != "" && upper.Source.Dir == "" {
		merged.Source.Dir = ""
	}
	if upper.Source.Dir != "" && upper.Source.BaseURL == "" {
		merged.Source.BaseURL = ""
	}

	if upper.Concurrency != 0 {
		merged.Concurrency = upper.Concurrency
	}
	if upper.Capacity != 0 {
		merged.Capacity = upper.Capacity
	}
	setString(&merged.FallbackFile, upper.FallbackFile)
	setString(&merged.District, upper.District)
	setString(&merged.OutputFormat, upper.OutputFormat)
	if upper.ColorSeed != nil {
		seed := *upper.ColorSeed
		merged.ColorSeed = &seed
	}
	return &merged
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
