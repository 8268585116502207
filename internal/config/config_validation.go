// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// The three provider credentials are required; there is no partial or
// degraded startup mode without them. The error names every missing
// environment variable so the operator can fix the deployment in one pass.
// The LLM key is deliberately not checked: its absence only disables
// summarization.
func (cfg *Config) validate() error {
	var missing []string
	if cfg.Supabase.URL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if cfg.Supabase.Key == "" {
		missing = append(missing, "SUPABASE_KEY")
	}
	if cfg.Supabase.ServiceKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (set them in the process environment and restart)",
			ErrMissingProviderConfigs, strings.Join(missing, ", "))
	}

	return nil
}
