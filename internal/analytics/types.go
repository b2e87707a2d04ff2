package analytics

import (
	"time"

	"github.com/hrpulse/hrpulse/internal"
	"github.com/hrpulse/hrpulse/internal/hrdata"
)

type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodCustom  Period = "custom"
)

type CompareWith string

const (
	ComparePrevious CompareWith = "previous"
	CompareYearAgo  CompareWith = "year-ago"
)

type Comparison string

const (
	ComparisonHigher Comparison = "higher"
	ComparisonLower  Comparison = "lower"
	ComparisonStable Comparison = "stable"
)

type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// FilterOptions is the query every KPI computation is evaluated against.
// Absent optional fields mean "no restriction", never an error.
type FilterOptions struct {
	Period      Period             `json:"period"`
	Department  *hrdata.Department `json:"department,omitempty"`
	Agency      *hrdata.Agency     `json:"agency,omitempty"`
	RemoteWork  *bool              `json:"remote_work,omitempty"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
	CompareWith CompareWith        `json:"compare_with,omitempty"`
}

// Validate normalizes and checks the filter. An empty period falls back to
// the dashboard default rather than failing.
func (f *FilterOptions) Validate() error {
	if f.Period == "" {
		f.Period = PeriodYear
	}
	switch f.Period {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
	case PeriodCustom:
		if f.StartDate == nil || f.EndDate == nil || !f.StartDate.Before(*f.EndDate) {
			return internal.ErrInvalidDateRange
		}
	default:
		return internal.ErrInvalidPeriod
	}
	switch f.CompareWith {
	case "", ComparePrevious, CompareYearAgo:
	default:
		return internal.ErrInvalidComparison
	}
	return nil
}

// KPIData is the output unit of the analytics engine: a plain data object
// ready for JSON serialization and file exports.
type KPIData struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Value      string     `json:"value"`
	RawValue   float64    `json:"raw_value"`
	Unit       string     `json:"unit"`
	Trend      *float64   `json:"trend,omitempty"`
	Comparison Comparison `json:"comparison"`
	Category   Category   `json:"category"`
	Insight    string     `json:"insight"`
}

// TimePoint is one bucket of a KPI time series.
type TimePoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DepartmentPoint is the KPI value restricted to one department.
type DepartmentPoint struct {
	Department string  `json:"department"`
	Value      float64 `json:"value"`
}

// CategoryPoint is one slice of a KPI-specific categorical split.
type CategoryPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// CategoricalBreakdown is a named KPI-specific split, e.g. absence types
// for absenteeism or contract end reasons for turnover.
type CategoricalBreakdown struct {
	Name   string          `json:"name"`
	Points []CategoryPoint `json:"points"`
}

// KPIChartData carries the chart-ready breakdowns for a single KPI.
type KPIChartData struct {
	KPIID               string               `json:"kpi_id"`
	TimeEvolution       []TimePoint          `json:"time_evolution"`
	DepartmentBreakdown []DepartmentPoint    `json:"department_breakdown"`
	SpecificBreakdown   CategoricalBreakdown `json:"specific_breakdown"`
}

// HeadcountDetail is the extended headcount structure consumed by exports.
type HeadcountDetail struct {
	Total              int               `json:"total"`
	Active             int               `json:"active"`
	Inactive           int               `json:"inactive"`
	Terminated         int               `json:"terminated"`
	Remote             int               `json:"remote"`
	FullTimeEquivalent float64           `json:"full_time_equivalent"`
	AverageSeniority   float64           `json:"average_seniority"`
	ByDepartment       []DepartmentPoint `json:"by_department"`
}
