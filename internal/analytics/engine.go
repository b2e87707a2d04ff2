package analytics

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrpulse/hrpulse/internal/core/events"
	"github.com/hrpulse/hrpulse/internal/hrdata"
)

// EventDatasetRegenerated is published whenever the snapshot is replaced.
const EventDatasetRegenerated = "dataset.regenerated"

// Engine is the single source of truth turning (HRData, FilterOptions)
// into the KPI catalogue. The snapshot is immutable once installed; only
// Replace swaps it, so computations read it without copying.
type Engine struct {
	mu     sync.RWMutex
	data   *hrdata.HRData
	source func() *hrdata.HRData

	demoMode bool
	now      func() time.Time
	rng      *rand.Rand
	bus      *events.EventBus
	logger   *slog.Logger
}

type Option func(*Engine)

// WithDemoMode keeps the legacy randomized trend figures instead of
// recomputing each KPI over the prior comparison window.
func WithDemoMode(enabled bool) Option {
	return func(e *Engine) { e.demoMode = enabled }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithDatasetSource(source func() *hrdata.HRData) Option {
	return func(e *Engine) { e.source = source }
}

func WithEventBus(bus *events.EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

func NewEngine(data *hrdata.HRData, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		data:   data,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	e.source = func() *hrdata.HRData {
		return hrdata.Normalize(hrdata.NewGenerator().Generate())
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.data == nil {
		e.data = e.source()
	}
	return e
}

// Data returns the current snapshot. Callers must treat it as read-only.
func (e *Engine) Data() *hrdata.HRData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.data
}

// Replace installs a new snapshot atomically.
func (e *Engine) Replace(data *hrdata.HRData) {
	e.mu.Lock()
	e.data = data
	e.mu.Unlock()

	e.logger.Info("dataset replaced",
		"employees", len(data.Employees),
		"expenses", len(data.Expenses))

	if e.bus != nil {
		_ = e.bus.PublishSync(context.Background(), events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      EventDatasetRegenerated,
			Timestamp: e.now(),
			Data: map[string]interface{}{
				"employees": len(data.Employees),
				"expenses":  len(data.Expenses),
			},
		})
	}
}

// Regenerate produces and installs a fresh synthetic snapshot, the server
// side equivalent of a page reload.
func (e *Engine) Regenerate() *hrdata.HRData {
	data := e.source()
	e.Replace(data)
	return data
}

// GetAllKPIs evaluates the full catalogue in its fixed enumeration order.
// The order is part of the contract: it drives default board composition.
func (e *Engine) GetAllKPIs(filters FilterOptions) []KPIData {
	out := make([]KPIData, 0, len(kpiCatalogue))
	for i := range kpiCatalogue {
		out = append(out, e.evaluate(&kpiCatalogue[i], filters))
	}
	return out
}

// GetKPI evaluates a single KPI by identifier. The boolean is false for an
// unknown id; this is an expected outcome, not an error.
func (e *Engine) GetKPI(id string, filters FilterOptions) (KPIData, bool) {
	def, ok := kpiIndex[id]
	if !ok {
		return KPIData{}, false
	}
	return e.evaluate(def, filters), true
}

func (e *Engine) GetAbsenteeismRate(filters FilterOptions) KPIData {
	return e.mustKPI(KPIAbsenteeism, filters)
}

func (e *Engine) GetTurnoverRate(filters FilterOptions) KPIData {
	return e.mustKPI(KPITurnover, filters)
}

func (e *Engine) GetHeadcount(filters FilterOptions) KPIData {
	return e.mustKPI(KPIHeadcount, filters)
}

func (e *Engine) GetWorkforceUtilization(filters FilterOptions) KPIData {
	return e.mustKPI(KPIWorkforceUtilization, filters)
}

func (e *Engine) GetRemoteWorkAdoption(filters FilterOptions) KPIData {
	return e.mustKPI(KPIRemoteWork, filters)
}

func (e *Engine) GetOnboardingDuration(filters FilterOptions) KPIData {
	return e.mustKPI(KPIOnboarding, filters)
}

func (e *Engine) GetHRExpenses(filters FilterOptions) KPIData {
	return e.mustKPI(KPIHRExpenses, filters)
}

func (e *Engine) GetAgeAndSeniority(filters FilterOptions) KPIData {
	return e.mustKPI(KPIAgeSeniority, filters)
}

func (e *Engine) GetTaskCompletionRate(filters FilterOptions) KPIData {
	return e.mustKPI(KPITaskCompletion, filters)
}

func (e *Engine) GetDocumentCompletionRate(filters FilterOptions) KPIData {
	return e.mustKPI(KPIDocumentCompletion, filters)
}

func (e *Engine) mustKPI(id string, filters FilterOptions) KPIData {
	k, _ := e.GetKPI(id, filters)
	return k
}

// GetHeadcountDetail builds the extended headcount structure used by the
// spreadsheet and PDF exports.
func (e *Engine) GetHeadcountDetail(filters FilterOptions) HeadcountDetail {
	data := e.Data()
	now := e.now()
	_ = filters.Validate()
	w := resolveWindow(filters, now)
	emps := employeesAsOf(filterEmployees(data.Employees, filters), w.end)

	detail := HeadcountDetail{Total: len(emps)}
	byDept := map[hrdata.Department]float64{}
	seniority := 0.0
	for i := range emps {
		emp := &emps[i]
		switch statusAsOf(emp, w.end) {
		case hrdata.StatusActive:
			detail.Active++
			detail.FullTimeEquivalent += emp.WorkingTimeRate
			seniority += emp.SeniorityYears(w.end)
			byDept[emp.Department]++
		case hrdata.StatusInactive:
			detail.Inactive++
		case hrdata.StatusTerminated:
			detail.Terminated++
		}
		if emp.RemoteWork {
			detail.Remote++
		}
	}
	detail.FullTimeEquivalent = round1(detail.FullTimeEquivalent)
	if detail.Active > 0 {
		detail.AverageSeniority = round1(seniority / float64(detail.Active))
	}
	for _, dept := range hrdata.Departments {
		if count, ok := byDept[dept]; ok {
			detail.ByDepartment = append(detail.ByDepartment, DepartmentPoint{
				Department: string(dept),
				Value:      count,
			})
		}
	}
	return detail
}

// evaluate runs one catalogue entry against the current snapshot.
func (e *Engine) evaluate(def *kpiDefinition, filters FilterOptions) KPIData {
	data := e.Data()
	now := e.now()
	_ = filters.Validate()
	w := resolveWindow(filters, now)

	k := KPIData{
		ID:         def.ID,
		Name:       def.Name,
		Unit:       def.Unit,
		Comparison: ComparisonStable,
	}

	raw, ok := rawValue(data, def, filters, w)
	if !ok {
		// degenerate filtered set: a defined zero with a neutral
		// classification instead of NaN
		k.Value = formatValue(0, def.Decimals)
		k.Category = CategoryNeutral
		k.Insight = def.EmptyInsight
		return k
	}

	k.RawValue = raw
	k.Value = formatValue(raw, def.Decimals)
	k.Trend = e.trendFor(data, def, filters, w, raw)
	k.Comparison = comparisonFor(k.Trend)
	k.Category = def.Classify(raw, k.Trend)
	k.Insight = def.Insight(k)
	return k
}

// trendFor derives the percentage delta against the comparison window, or
// a random figure in demo mode. Nil when no comparison applies or the
// prior value is zero.
func (e *Engine) trendFor(data *hrdata.HRData, def *kpiDefinition, filters FilterOptions, w timeWindow, current float64) *float64 {
	if filters.CompareWith == "" {
		return nil
	}
	if e.demoMode {
		e.mu.Lock()
		t := round1(e.rng.Float64()*30 - 15)
		e.mu.Unlock()
		return &t
	}
	prev, ok := rawValue(data, def, filters, priorWindow(w, filters.CompareWith))
	if !ok || prev == 0 {
		return nil
	}
	t := round1((current - prev) / prev * 100)
	return &t
}

func rawValue(data *hrdata.HRData, def *kpiDefinition, filters FilterOptions, w timeWindow) (float64, bool) {
	in := computeInput{
		data:      data,
		employees: employeesAsOf(filterEmployees(data.Employees, filters), w.end),
		expenses:  filterExpenses(data.Expenses, w),
		window:    w,
		filters:   filters,
	}
	return def.Compute(in)
}

func comparisonFor(trend *float64) Comparison {
	switch {
	case trend == nil || *trend == 0:
		return ComparisonStable
	case *trend > 0:
		return ComparisonHigher
	default:
		return ComparisonLower
	}
}

func formatValue(v float64, decimals int) string {
	return strconv.FormatFloat(round(v, decimals), 'f', decimals, 64)
}

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func round1(v float64) float64 {
	return round(v, 1)
}
