package analytics

import (
	"fmt"
	"time"

	"github.com/hrpulse/hrpulse/internal/hrdata"
)

var monthLabels = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// GetKPIChartData builds the chart-ready breakdowns for one KPI, or nil
// when the identifier is not in the catalogue. The nil result is an
// expected outcome for callers probing ids, not an error.
func (e *Engine) GetKPIChartData(id string, filters FilterOptions) *KPIChartData {
	def, ok := kpiIndex[id]
	if !ok {
		return nil
	}

	data := e.Data()
	now := e.now()
	_ = filters.Validate()
	w := resolveWindow(filters, now)

	chart := &KPIChartData{
		KPIID:         def.ID,
		TimeEvolution: e.timeEvolution(data, def, filters, w),
	}

	// one entry per department present in the dataset, in the fixed
	// department order so repeated calls stay stable
	present := map[hrdata.Department]bool{}
	for i := range data.Employees {
		present[data.Employees[i].Department] = true
	}
	for _, dept := range hrdata.Departments {
		if !present[dept] {
			continue
		}
		scoped := filters
		d := dept
		scoped.Department = &d
		value, _ := rawValue(data, def, scoped, w)
		chart.DepartmentBreakdown = append(chart.DepartmentBreakdown, DepartmentPoint{
			Department: string(dept),
			Value:      round1(value),
		})
	}

	chart.SpecificBreakdown = def.Breakdown(computeInput{
		data:      data,
		employees: employeesAsOf(filterEmployees(data.Employees, filters), w.end),
		expenses:  filterExpenses(data.Expenses, w),
		window:    w,
		filters:   filters,
	})

	return chart
}

type timeBucket struct {
	label  string
	window timeWindow
}

// timeEvolution evaluates the KPI once per bucket, each bucket being a
// sub-window ending inside the filtered period. Bucket count follows the
// period: quarter yields 3 labels, year 12, month 4, anything else 6.
func (e *Engine) timeEvolution(data *hrdata.HRData, def *kpiDefinition, filters FilterOptions, w timeWindow) []TimePoint {
	buckets := bucketsFor(filters.Period, w)
	points := make([]TimePoint, 0, len(buckets))
	for _, b := range buckets {
		value, _ := rawValue(data, def, filters, b.window)
		points = append(points, TimePoint{Label: b.label, Value: round1(value)})
	}
	return points
}

func bucketsFor(period Period, w timeWindow) []timeBucket {
	switch period {
	case PeriodQuarter:
		return monthlyBuckets(w.end, 3)
	case PeriodYear:
		return monthlyBuckets(w.end, 12)
	case PeriodMonth:
		return namedBuckets(w, 4, func(i int) string {
			return fmt.Sprintf("Semaine %d", i+1)
		})
	default:
		return namedBuckets(w, 6, func(i int) string {
			return ""
		})
	}
}

// monthlyBuckets slices the trailing n months, labeled with French month
// abbreviations, oldest first.
func monthlyBuckets(end time.Time, n int) []timeBucket {
	buckets := make([]timeBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		bucketEnd := end.AddDate(0, -i, 0)
		bucketStart := bucketEnd.AddDate(0, -1, 0)
		buckets = append(buckets, timeBucket{
			label:  monthLabels[bucketEnd.Month()-1],
			window: timeWindow{start: bucketStart, end: bucketEnd},
		})
	}
	return buckets
}

// namedBuckets divides the window into n equal sub-intervals, oldest
// first. An empty label from the namer falls back to the bucket end date.
func namedBuckets(w timeWindow, n int, name func(i int) string) []timeBucket {
	step := w.duration() / time.Duration(n)
	buckets := make([]timeBucket, 0, n)
	for i := 0; i < n; i++ {
		start := w.start.Add(step * time.Duration(i))
		end := w.start.Add(step * time.Duration(i+1))
		label := name(i)
		if label == "" {
			label = end.Format("02/01")
		}
		buckets = append(buckets, timeBucket{
			label:  label,
			window: timeWindow{start: start, end: end},
		})
	}
	return buckets
}
