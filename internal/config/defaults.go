package config

import "time"

// defaults returns the built-in baseline configuration. Values from the
// environment are merged on top, so every field here is only a fallback.
func defaults() *Config {
	return &Config{
		Supabase: Supabase{
			StorageBucket:      "note-images",
			RequestTimeout:     15 * time.Second,
			ConfirmRedirectURL: "http://localhost:8000/auth/confirm",
		},
		OpenAI: OpenAI{
			BaseURL:        "https://api.openai.com/v1",
			Model:          "gpt-3.5-turbo",
			RequestTimeout: 30 * time.Second,
		},
		Server: Server{
			Address: ":8000",
		},
		Environment: "development",
	}
}
