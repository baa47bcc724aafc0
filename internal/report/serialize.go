package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/linguaflow/scorereport/internal/errors"
	"github.com/linguaflow/scorereport/internal/models"
)

// Render serializes a built report in the requested format.
func Render(format models.ReportFormat, report any, meta models.ReportMeta) (*models.RenderedReport, error) {
	switch format {
	case models.FormatJSON:
		return renderJSON(report, meta)
	case models.FormatCSV:
		return renderCSV(report, meta)
	case models.FormatPDF:
		return renderPDF(report, meta)
	default:
		return nil, errors.NewInvalidParameterError("format", fmt.Sprintf("unknown format %q", format))
	}
}

func renderJSON(report any, meta models.ReportMeta) (*models.RenderedReport, error) {
	body, err := json.Marshal(models.ReportEnvelope{
		Success: true,
		Report:  report,
		Meta:    meta,
	})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return &models.RenderedReport{
		ContentType: "application/json",
		Body:        body,
	}, nil
}

// renderCSV supports the summary provider breakdown and the detailed attempt
// list. Every cell is quoted; embedded quotes are not escaped - a known
// limitation of the format consumers already parse.
func renderCSV(report any, meta models.ReportMeta) (*models.RenderedReport, error) {
	var rows [][]string
	switch rep := report.(type) {
	case models.SummaryReport:
		rows = append(rows, []string{"provider", "count", "success_rate"})
		for _, g := range rep.ByProvider {
			rows = append(rows, []string{
				g.Key,
				strconv.Itoa(g.Count),
				formatFloat(g.SuccessRate),
			})
		}
	case models.DetailedReport:
		rows = append(rows, []string{
			"id", "created_at", "user_id", "provider", "level", "task_type",
			"status", "processing_time_ms", "total_score", "max_score",
			"percentage", "pass",
		})
		for _, a := range rep.Attempts {
			rows = append(rows, []string{
				a.ID,
				a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
				a.UserID,
				a.Provider,
				a.Level,
				a.TaskType,
				string(a.Status),
				formatInt64Ptr(a.ProcessingTimeMS),
				formatFloatPtr(a.TotalScore),
				formatFloatPtr(a.MaxScore),
				formatFloatPtr(a.Percentage),
				formatBoolPtr(a.Pass),
			})
		}
	default:
		return nil, errors.NewUnsupportedFormatError("csv", string(meta.ReportType))
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(cell)
			sb.WriteByte('"')
		}
		sb.WriteByte('\n')
	}

	return &models.RenderedReport{
		ContentType: "text/csv",
		Filename:    attachmentName(meta, "csv"),
		Body:        []byte(sb.String()),
	}, nil
}

// renderPDF is a placeholder: a label line followed by the pretty-printed
// report, served under the PDF content type the dashboard expects.
func renderPDF(report any, meta models.ReportMeta) (*models.RenderedReport, error) {
	pretty, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Scoring Report: %s\n", meta.ReportType)
	fmt.Fprintf(&sb, "Generated: %s\n\n", meta.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"))
	sb.Write(pretty)
	sb.WriteByte('\n')

	return &models.RenderedReport{
		ContentType: "application/pdf",
		Filename:    attachmentName(meta, "pdf"),
		Body:        []byte(sb.String()),
	}, nil
}

func attachmentName(meta models.ReportMeta, ext string) string {
	return fmt.Sprintf("scoring_report_%s_%s.%s", meta.ReportType, meta.GeneratedAt.UTC().Format("20060102"), ext)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatInt64Ptr(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatBoolPtr(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
