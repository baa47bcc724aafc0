package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/linguaflow/scorereport/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func boolParam(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "true"
}

// dateLayouts accepted for date_from/date_to, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses a query date. Date-only values mark the start of the day;
// endOfDay expands them to 23:59:59 so date_to bounds stay inclusive.
func parseDate(param, value string, endOfDay bool) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" && endOfDay {
			t = t.Add(24*time.Hour - time.Second)
		}
		return t.UTC(), nil
	}
	return time.Time{}, errors.NewInvalidParameterError(param, "expected YYYY-MM-DD or RFC3339, got "+value)
}

// resolveDateRange applies the trailing default window when the caller omits
// bounds. date_from > date_to is always rejected.
func resolveDateRange(r *http.Request, defaultRangeDays int) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	dateTo := now
	if v := r.URL.Query().Get("date_to"); v != "" {
		t, err := parseDate("date_to", v, true)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		dateTo = t
	}

	dateFrom := dateTo.AddDate(0, 0, -defaultRangeDays)
	if v := r.URL.Query().Get("date_from"); v != "" {
		t, err := parseDate("date_from", v, false)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		dateFrom = t
	}

	if dateFrom.After(dateTo) {
		return time.Time{}, time.Time{}, errors.NewInvalidParameterError("date_from", "date_from must not be after date_to")
	}
	return dateFrom, dateTo, nil
}
