package analytics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/hrpulse/hrpulse/internal"
	"github.com/hrpulse/hrpulse/internal/hrdata"
	"github.com/hrpulse/hrpulse/internal/transport"
)

type ServiceAPI interface {
	GetAllKPIs(filters FilterOptions) []KPIData
	GetKPI(id string, filters FilterOptions) (KPIData, bool)
	GetKPIChartData(id string, filters FilterOptions) *KPIChartData
	GenerateGlobalInsight(kpis []KPIData, filters FilterOptions) string
	GetHeadcountDetail(filters FilterOptions) HeadcountDetail
	Regenerate() *hrdata.HRData
}

// AIToggleAPI reports whether the fabricated AI narrative is enabled in
// the persisted dashboard preferences.
type AIToggleAPI interface {
	AIInsightEnabled() (bool, error)
}

type Handler struct {
	*transport.BaseHandler
	Service  ServiceAPI
	AIToggle AIToggleAPI
}

func NewHandler(service ServiceAPI, aiToggle AIToggleAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
		AIToggle:    aiToggle,
	}
}

// ParseFilterOptions reads FilterOptions from query parameters. Missing
// fields mean "no restriction" and never fail; only a malformed value does.
func ParseFilterOptions(r *http.Request) (FilterOptions, error) {
	q := r.URL.Query()
	f := FilterOptions{
		Period:      Period(q.Get("period")),
		CompareWith: CompareWith(q.Get("compare_with")),
	}

	if v := q.Get("department"); v != "" {
		d := hrdata.Department(v)
		f.Department = &d
	}
	if v := q.Get("agency"); v != "" {
		a := hrdata.Agency(v)
		f.Agency = &a
	}
	if v := q.Get("remote_work"); v != "" {
		remote, err := strconv.ParseBool(v)
		if err != nil {
			return f, internal.NewValidationError("remote_work must be a boolean", internal.ErrCodeValidationFailed)
		}
		f.RemoteWork = &remote
	}
	for param, field := range map[string]**time.Time{
		"start_date": &f.StartDate,
		"end_date":   &f.EndDate,
	} {
		if v := q.Get(param); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return f, internal.ErrInvalidDateRange
			}
			*field = &t
		}
	}

	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

func (h *Handler) GetAllKPIs(w http.ResponseWriter, r *http.Request) {
	filters, err := ParseFilterOptions(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Service.GetAllKPIs(filters))
}

func (h *Handler) GetKPI(w http.ResponseWriter, r *http.Request) {
	filters, err := ParseFilterOptions(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	kpi, ok := h.Service.GetKPI(chi.URLParam(r, "id"), filters)
	if !ok {
		h.HandleServiceError(w, internal.ErrUnknownKPI)
		return
	}
	h.WriteJSON(w, http.StatusOK, kpi)
}

func (h *Handler) GetKPIChartData(w http.ResponseWriter, r *http.Request) {
	filters, err := ParseFilterOptions(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	chart := h.Service.GetKPIChartData(chi.URLParam(r, "id"), filters)
	if chart == nil {
		h.HandleServiceError(w, internal.ErrUnknownKPI)
		return
	}
	h.WriteJSON(w, http.StatusOK, chart)
}

func (h *Handler) GetHeadcountDetail(w http.ResponseWriter, r *http.Request) {
	filters, err := ParseFilterOptions(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Service.GetHeadcountDetail(filters))
}

type insightResponse struct {
	Insight   string `json:"insight"`
	AIEnabled bool   `json:"ai_enabled"`
}

func (h *Handler) GetGlobalInsight(w http.ResponseWriter, r *http.Request) {
	filters, err := ParseFilterOptions(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	enabled, err := h.AIToggle.AIInsightEnabled()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if !enabled {
		h.WriteJSON(w, http.StatusOK, insightResponse{Insight: "Analyse désactivée.", AIEnabled: false})
		return
	}

	kpis := h.Service.GetAllKPIs(filters)
	h.WriteJSON(w, http.StatusOK, insightResponse{
		Insight:   h.Service.GenerateGlobalInsight(kpis, filters),
		AIEnabled: true,
	})
}

func (h *Handler) RegenerateDataset(w http.ResponseWriter, r *http.Request) {
	data := h.Service.Regenerate()
	h.Logger.Info("dataset regenerated",
		"employees", len(data.Employees),
		"expenses", len(data.Expenses))
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employees":    len(data.Employees),
		"expenses":     len(data.Expenses),
		"generated_at": data.GeneratedAt,
	})
}
