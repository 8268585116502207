package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingProviderConfigs indicates that one or more of the required
	// provider credentials (URL, anonymous key, service key) are absent from
	// the environment. Startup is fatal in that case.
	ErrMissingProviderConfigs = errors.New("missing required environment variables")
)
