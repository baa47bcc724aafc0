package api

import (
	"net/http"

	"github.com/linguaflow/scorereport/internal/errors"
	"github.com/linguaflow/scorereport/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error().Err(appErr).Msg("server error")
	} else {
		log.Warn().Err(appErr).Msg("client error")
	}

	writeErrorBody(w, appErr.Status, appErr.Code, appErr.Message)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
