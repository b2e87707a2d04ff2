package export

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/hrpulse/hrpulse/internal"
	"github.com/hrpulse/hrpulse/internal/analytics"
	"github.com/hrpulse/hrpulse/internal/hrdata"
	"github.com/hrpulse/hrpulse/internal/transport"
)

// AnalyticsAPI is the slice of the analytics engine the exports consume.
type AnalyticsAPI interface {
	GetAllKPIs(filters analytics.FilterOptions) []analytics.KPIData
	GetHeadcountDetail(filters analytics.FilterOptions) analytics.HeadcountDetail
	GenerateGlobalInsight(kpis []analytics.KPIData, filters analytics.FilterOptions) string
	Data() *hrdata.HRData
}

type Handler struct {
	*transport.BaseHandler
	Analytics AnalyticsAPI
}

func NewHandler(analyticsAPI AnalyticsAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Analytics:   analyticsAPI,
	}
}

var writers = map[Format]func(io.Writer, Report) error{
	FormatCSV:  WriteCSV,
	FormatXLSX: WriteXLSX,
	FormatPDF:  WritePDF,
	FormatJSON: WriteJSON,
}

// ExportKPIs streams the current KPI set in the requested format. Sink
// failures surface here as HTTP errors and never reach the engine.
func (h *Handler) ExportKPIs(w http.ResponseWriter, r *http.Request) {
	format := Format(chi.URLParam(r, "format"))
	write, ok := writers[format]
	if !ok {
		h.HandleServiceError(w, internal.NewValidationError(
			"unknown export format, must be one of csv, xlsx, pdf, json",
			internal.ErrCodeUnknownExportKind))
		return
	}

	filters, err := analytics.ParseFilterOptions(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	kpis := h.Analytics.GetAllKPIs(filters)
	report := Report{
		GeneratedAt:   time.Now(),
		Filters:       filters,
		KPIs:          kpis,
		Headcount:     h.Analytics.GetHeadcountDetail(filters),
		GlobalInsight: h.Analytics.GenerateGlobalInsight(kpis, filters),
	}

	w.Header().Set("Content-Type", ContentType(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+Filename(format, report.GeneratedAt)+`"`)

	if err := write(w, report); err != nil {
		// headers may already be gone; log and report what we can
		h.Logger.Error("export failed", "format", format, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "export failed")
	}
}

// ExportDemographics streams the gender split per department as CSV.
func (h *Handler) ExportDemographics(w http.ResponseWriter, r *http.Request) {
	data := h.Analytics.Data()

	w.Header().Set("Content-Type", ContentType(FormatCSV))
	w.Header().Set("Content-Disposition", `attachment; filename="demographie-`+time.Now().Format("2006-01-02")+`.csv"`)

	if err := WriteDemographicsCSV(w, data.Employees); err != nil {
		h.Logger.Error("demographics export failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "export failed")
	}
}
