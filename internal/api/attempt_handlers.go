package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/linguaflow/scorereport/internal/errors"
	"github.com/linguaflow/scorereport/internal/models"
)

func (s *Server) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromContext(r.Context())
	if !ok {
		handleError(w, r, errors.NewUnauthorizedError())
		return
	}

	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			handleError(w, r, errors.NewInvalidParameterError("page", "must be a positive integer"))
			return
		}
		page = p
	}

	perPage := 25
	switch q.Get("per_page") {
	case "", "25":
	case "10":
		perPage = 10
	case "50":
		perPage = 50
	case "100":
		perPage = 100
	default:
		handleError(w, r, errors.NewInvalidParameterError("per_page", "must be 10, 25, 50 or 100"))
		return
	}

	dateFrom, dateTo, err := resolveDateRange(r, s.Config.DefaultRangeDays)
	if err != nil {
		handleError(w, r, err)
		return
	}

	status := q.Get("status")
	if status != "" && !validStatus(status) {
		handleError(w, r, errors.NewInvalidParameterError("status", "must be queued, processing, scored or failed"))
		return
	}

	filter := models.AttemptFilter{
		UserID:        q.Get("user_id"),
		SessionID:     q.Get("exam_session_id"),
		Provider:      q.Get("provider"),
		Level:         q.Get("level"),
		TaskType:      q.Get("task"),
		Status:        status,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		IncludeFailed: boolParam(r, "include_failed") || status == string(models.StatusFailed),
		Limit:         perPage,
		Offset:        (page - 1) * perPage,
	}

	attempts, totalCount, err := s.AttemptService.ListAttempts(r.Context(), caller, filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if attempts == nil {
		attempts = []models.ScoringAttempt{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"attempts":    attempts,
		"total_count": totalCount,
		"page":        page,
		"per_page":    perPage,
	})
}

func (s *Server) handleGetAttempt(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromContext(r.Context())
	if !ok {
		handleError(w, r, errors.NewUnauthorizedError())
		return
	}

	id := chi.URLParam(r, "id")
	attempt, err := s.AttemptService.GetAttempt(r.Context(), caller, id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"attempt": attempt,
	})
}

func validStatus(s string) bool {
	for _, st := range models.Statuses {
		if s == string(st) {
			return true
		}
	}
	return false
}
