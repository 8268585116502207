// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Config is the top-level configuration container for the notes API. It is
// populated by merging values from environment variables on top of built-in
// defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Supabase holds the connection settings for the backend-as-a-service
	// provider that owns authentication, the notes table, and file storage.
	Supabase Supabase `envPrefix:"SUPABASE_"`

	// OpenAI holds the settings of the optional LLM summarization client.
	OpenAI OpenAI `envPrefix:"OPENAI_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Environment is the deployment environment name (e.g. "development",
	// "production"). Informational; it does not change behavior.
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// FrontendURL is an optional operator-supplied origin added to the CORS
	// allowlist (e.g. the deployed frontend).
	// Env: FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`

	// VercelURL is the host assigned by the Vercel platform, added to the
	// CORS allowlist as an https origin when present.
	// Env: VERCEL_URL
	VercelURL string `env:"VERCEL_URL"`

	// Vercel is set (to any non-empty value) by the Vercel platform. When
	// present the CORS allowlist collapses to "allow all".
	// Env: VERCEL
	Vercel string `env:"VERCEL"`
}

// Supabase holds credentials and endpoints of the remote data provider.
// URL, Key, and ServiceKey are all required; the process refuses to start
// without them.
type Supabase struct {
	// URL is the provider project base URL (e.g. "https://xyz.supabase.co").
	// Env: SUPABASE_URL
	URL string `env:"URL"`

	// Key is the anonymous (publishable) API key used for user-level calls
	// such as sign-up and sign-in.
	// Env: SUPABASE_KEY
	Key string `env:"KEY"`

	// ServiceKey is the service-role API key used for administrative calls
	// that bypass row-level security. Must be kept confidential.
	// Env: SUPABASE_SERVICE_KEY
	ServiceKey string `env:"SERVICE_KEY"`

	// StorageBucket is the storage bucket that holds uploaded note images.
	// The bucket must exist and be public.
	// Env: SUPABASE_STORAGE_BUCKET
	StorageBucket string `env:"STORAGE_BUCKET"`

	// RequestTimeout bounds every outbound call to the provider.
	// Env: SUPABASE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfirmRedirectURL is the callback URL embedded in sign-up requests
	// for the provider's email-confirmation flow.
	// Env: SUPABASE_CONFIRM_REDIRECT_URL
	ConfirmRedirectURL string `env:"CONFIRM_REDIRECT_URL"`
}

// OpenAI holds the settings of the LLM completion endpoint used for note
// summarization. APIKey is optional; when empty, summarization is disabled
// and notes are stored without summaries.
type OpenAI struct {
	// APIKey authenticates against the LLM provider.
	// Env: OPENAI_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the completions endpoint base. Overridable for tests and
	// OpenAI-compatible providers.
	// Env: OPENAI_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Model is the chat model used for summarization.
	// Env: OPENAI_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout bounds every summarization call.
	// Env: OPENAI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetConfig loads, merges, and validates the application configuration:
// environment variables take priority, built-in defaults fill the gaps.
//
// Returns a fully populated *Config or an error if loading fails or the
// final config fails validation (e.g. missing provider credentials).
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

// CORSOrigins returns the list of allowed cross-origin callers: the fixed
// localhost development origins plus any operator-supplied frontend origin
// and the platform-assigned host. Under the Vercel platform flag the list
// collapses to a single "*" entry (allow all).
func (cfg *Config) CORSOrigins() []string {
	if cfg.Vercel != "" {
		return []string{"*"}
	}

	origins := []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	if cfg.VercelURL != "" {
		origins = append(origins, "https://"+cfg.VercelURL)
	}

	return origins
}

// SummarizationEnabled reports whether the optional LLM capability is
// configured. Its absence disables summarization but is never fatal.
func (cfg *Config) SummarizationEnabled() bool {
	return cfg.OpenAI.APIKey != ""
}
