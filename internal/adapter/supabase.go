// Package adapter implements the outbound boundary of the notes API: resty
// clients for the remote data provider (auth, notes table, object storage)
// and for the LLM completion endpoint.
//
// Two provider handles exist: one configured with the anonymous key for
// user-level calls, one with the service-role key for administrative calls
// that bypass row-level security. Both are stateless, constructed once at
// process start, and injected into services explicitly.
package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/utils"
)

// supabaseClient is a provider handle bound to one API key. The key is sent
// both as the "apikey" header and as the bearer token, which is how the
// provider distinguishes anonymous from service-role access.
type supabaseClient struct {
	http    *utils.HTTPClient
	baseURL string
}

func newSupabaseClient(cfg config.Supabase, apiKey string) (*supabaseClient, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey)

	return &supabaseClient{http: client, baseURL: baseURL}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url has no host: %q", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
