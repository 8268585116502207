package http

import (
	"errors"
	"net/http"

	"github.com/aognev/go-notes-api/internal/service"
)

// errorStatusMap is the error→status lookup table shared by all handlers.
// Anything not listed maps to 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrSignupDisabled:          http.StatusBadRequest,
	service.ErrAlreadyRegistered:       http.StatusBadRequest,
	service.ErrInvalidEmail:            http.StatusBadRequest,
	service.ErrWeakPassword:            http.StatusBadRequest,
	service.ErrRegistrationFailed:      http.StatusBadRequest,
	service.ErrLoginFailed:             http.StatusUnauthorized,
	service.ErrNoteNotFound:            http.StatusNotFound,
	service.ErrInvalidContentType:      http.StatusBadRequest,
	service.ErrFileTooLarge:            http.StatusBadRequest,
	service.ErrSummarizerNotConfigured: http.StatusInternalServerError,
	service.ErrSummarizationFailed:     http.StatusInternalServerError,
	service.ErrUploadFailed:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var rateLimitErr *service.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return http.StatusTooManyRequests
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
