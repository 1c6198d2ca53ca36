package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Color:           "auto",
		Timeout:         "", // none
		FollowRedirects: BoolPtr(true),
		MaxRedirects:    10,
		ValidateSSL:     BoolPtr(true),
		Compressed:      BoolPtr(false),
		LogLevel:        "warn",
	}
}
