package export

import (
	"time"

	"github.com/hrpulse/hrpulse/internal/analytics"
)

// Format identifies one export sink.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// Report is the plain-data payload every sink serializes: the computed KPI
// set, the extended headcount structure and the roll-up narrative. No
// functions, no cycles.
type Report struct {
	GeneratedAt   time.Time                 `json:"generated_at"`
	Filters       analytics.FilterOptions   `json:"filters"`
	KPIs          []analytics.KPIData       `json:"kpis"`
	Headcount     analytics.HeadcountDetail `json:"headcount"`
	GlobalInsight string                    `json:"global_insight"`
}

var contentTypes = map[Format]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// ContentType returns the MIME type for a format, empty for an unknown one.
func ContentType(f Format) string {
	return contentTypes[f]
}

// Filename builds the download name for a report generated at t.
func Filename(f Format, t time.Time) string {
	return "indicateurs-rh-" + t.Format("2006-01-02") + "." + string(f)
}

func trendLabel(k analytics.KPIData) string {
	if k.Trend == nil {
		return "-"
	}
	return formatSigned(*k.Trend) + " %"
}

func formatSigned(v float64) string {
	if v > 0 {
		return "+" + trimFloat(v)
	}
	return trimFloat(v)
}
