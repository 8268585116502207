package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapProviderError converts a non-2xx provider response into a
// [*ProviderError]. The provider's error bodies are not uniform; the known
// shapes are tried in order and the first non-empty message wins:
//
//	{"msg": "..."}                           (GoTrue)
//	{"message": "..."}                       (PostgREST, Storage)
//	{"error_description": "..."}             (OAuth-style token endpoint)
//	{"error": "..."}                         (string variant)
//	{"error": {"message": "..."}}            (object variant)
//
// When no shape matches, the raw body (or the status text for an empty body)
// becomes the message.
func mapProviderError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ProviderError{
		StatusCode: resp.StatusCode(),
		Message:    extractProviderMessage(resp.Body(), resp.StatusCode()),
	}
}

func extractProviderMessage(body []byte, statusCode int) string {
	var payload struct {
		Msg              string          `json:"msg"`
		Message          string          `json:"message"`
		ErrorDescription string          `json:"error_description"`
		Error            json.RawMessage `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		for _, msg := range []string{payload.Msg, payload.Message, payload.ErrorDescription} {
			if msg != "" {
				return msg
			}
		}

		if len(payload.Error) > 0 {
			var errStr string
			if err := json.Unmarshal(payload.Error, &errStr); err == nil && errStr != "" {
				return errStr
			}
			var errObj struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(payload.Error, &errObj); err == nil && errObj.Message != "" {
				return errObj.Message
			}
		}
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}

	return http.StatusText(statusCode)
}
