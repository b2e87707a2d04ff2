package analytics

import "github.com/hrpulse/hrpulse/internal/hrdata"

// KPI identifiers double as route segments on the dashboard side and must
// stay stable across releases.
const (
	KPIAbsenteeism          = "absenteeism"
	KPITurnover             = "turnover"
	KPIHeadcount            = "headcount"
	KPIWorkforceUtilization = "workforce-utilization"
	KPIRemoteWork           = "remote-work"
	KPIOnboarding           = "onboarding"
	KPIHRExpenses           = "hr-expenses"
	KPIAgeSeniority         = "age-seniority"
	KPITaskCompletion       = "task-completion"
	KPIDocumentCompletion   = "document-completion"
)

// computeInput carries everything a KPI computation reads: the filtered
// employee subset as of the window end, the window-scoped expenses and the
// full snapshot for the few splits that need it.
type computeInput struct {
	data      *hrdata.HRData
	employees []hrdata.Employee
	expenses  []hrdata.Expense
	window    timeWindow
	filters   FilterOptions
}

// kpiDefinition is one registry entry: the KPI is entirely described by
// data, so the engine can enumerate and evaluate the catalogue without a
// dispatch switch.
type kpiDefinition struct {
	ID       string
	Name     string
	Unit     string
	Decimals int

	// Compute returns the raw value; false marks a degenerate filtered
	// set (typically a zero denominator), mapped to a neutral zero.
	Compute func(in computeInput) (float64, bool)

	// Classify is the documented threshold policy. It must be a pure
	// function of the value (and trend, for the expense KPI).
	Classify func(value float64, trend *float64) Category

	// Insight renders the narrative string from the finished KPIData.
	Insight func(k KPIData) string

	// Breakdown builds the KPI-specific categorical split.
	Breakdown func(in computeInput) CategoricalBreakdown

	// EmptyInsight is emitted for the degenerate case.
	EmptyInsight string
}

var kpiIndex = map[string]*kpiDefinition{}

func init() {
	for i := range kpiCatalogue {
		kpiIndex[kpiCatalogue[i].ID] = &kpiCatalogue[i]
	}
}

// KPIIDs returns the catalogue identifiers in their fixed enumeration
// order.
func KPIIDs() []string {
	ids := make([]string, 0, len(kpiCatalogue))
	for i := range kpiCatalogue {
		ids = append(ids, kpiCatalogue[i].ID)
	}
	return ids
}

// KnownKPI reports whether the identifier is part of the catalogue.
func KnownKPI(id string) bool {
	_, ok := kpiIndex[id]
	return ok
}

// KPIName returns the display label for an identifier, or the identifier
// itself when unknown.
func KPIName(id string) string {
	if def, ok := kpiIndex[id]; ok {
		return def.Name
	}
	return id
}
