package api

import (
	"fmt"
	"net/http"

	"github.com/linguaflow/scorereport/internal/errors"
	"github.com/linguaflow/scorereport/internal/models"
)

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromContext(r.Context())
	if !ok {
		handleError(w, r, errors.NewUnauthorizedError())
		return
	}

	q := r.URL.Query()

	format := models.ReportFormat(q.Get("format"))
	if format == "" {
		format = models.FormatJSON
	}
	if !models.ValidFormat(format) {
		handleError(w, r, errors.NewInvalidParameterError("format", "must be json, csv or pdf"))
		return
	}

	reportType := models.ReportType(q.Get("type"))
	if reportType == "" {
		reportType = models.ReportSummary
	}
	if !models.ValidReportType(reportType) {
		handleError(w, r, errors.NewInvalidParameterError("type", "must be summary, detailed, performance, quality or user_progress"))
		return
	}

	dateFrom, dateTo, err := resolveDateRange(r, s.Config.DefaultRangeDays)
	if err != nil {
		handleError(w, r, err)
		return
	}

	query := models.ReportQuery{
		Format:          format,
		Type:            reportType,
		DateFrom:        dateFrom,
		DateTo:          dateTo,
		Provider:        q.Get("provider"),
		Level:           q.Get("level"),
		TaskType:        q.Get("task"),
		UserID:          q.Get("user_id"),
		SessionID:       q.Get("exam_session_id"),
		IncludeFailed:   boolParam(r, "include_failed"),
		IncludeMetadata: boolParam(r, "include_metadata"),
	}

	rendered, err := s.ReportService.GenerateReport(r.Context(), caller, query)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	if rendered.Filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Filename))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(rendered.Body)
}
