package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout:     0,
		ValidateSSL: BoolPtr(true),
		Proxy:       "",
		Headers:     nil,
		Timezone:    "",
		TimeLayout:  "",
		LogLevel:    "info",
		LogFormat:   "json",
		NoColor:     BoolPtr(false),
	}
}
