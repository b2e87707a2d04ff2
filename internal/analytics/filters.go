package analytics

import (
	"time"

	"github.com/hrpulse/hrpulse/internal/hrdata"
)

// timeWindow is the half-open interval (start, end] a KPI is evaluated over.
type timeWindow struct {
	start time.Time
	end   time.Time
}

func (w timeWindow) duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w timeWindow) contains(t time.Time) bool {
	return t.After(w.start) && !t.After(w.end)
}

// resolveWindow maps the filter period onto a concrete interval ending now.
func resolveWindow(f FilterOptions, now time.Time) timeWindow {
	switch f.Period {
	case PeriodWeek:
		return timeWindow{start: now.AddDate(0, 0, -7), end: now}
	case PeriodMonth:
		return timeWindow{start: now.AddDate(0, -1, 0), end: now}
	case PeriodQuarter:
		return timeWindow{start: now.AddDate(0, -3, 0), end: now}
	case PeriodCustom:
		if f.StartDate != nil && f.EndDate != nil {
			return timeWindow{start: *f.StartDate, end: *f.EndDate}
		}
		fallthrough
	default: // year
		return timeWindow{start: now.AddDate(-1, 0, 0), end: now}
	}
}

// priorWindow returns the comparison interval implied by compareWith: the
// window shifted back by its own length, or the same window one year ago.
func priorWindow(w timeWindow, compareWith CompareWith) timeWindow {
	if compareWith == CompareYearAgo {
		return timeWindow{start: w.start.AddDate(-1, 0, 0), end: w.end.AddDate(-1, 0, 0)}
	}
	d := w.duration()
	return timeWindow{start: w.start.Add(-d), end: w.start}
}

// filterEmployees applies the optional filters in a fixed order:
// department equality first, then agency, then the remote work flag.
// An unset field never restricts.
func filterEmployees(employees []hrdata.Employee, f FilterOptions) []hrdata.Employee {
	out := make([]hrdata.Employee, 0, len(employees))
	for _, e := range employees {
		if f.Department != nil && e.Department != *f.Department {
			continue
		}
		if f.Agency != nil && e.Agency != *f.Agency {
			continue
		}
		if f.RemoteWork != nil && e.RemoteWork != *f.RemoteWork {
			continue
		}
		out = append(out, e)
	}
	return out
}

// employeesAsOf restricts to employees already hired at t, keeping the
// terminated ones whose termination falls after t active at that instant.
// This is what makes prior-window trend recomputation meaningful for
// stock KPIs such as headcount.
func employeesAsOf(employees []hrdata.Employee, t time.Time) []hrdata.Employee {
	out := make([]hrdata.Employee, 0, len(employees))
	for _, e := range employees {
		if e.HireDate.After(t) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// statusAsOf reconstructs an employee status at an instant: a record
// terminated after t still counted as active then.
func statusAsOf(e *hrdata.Employee, t time.Time) hrdata.EmployeeStatus {
	if e.Status == hrdata.StatusTerminated && e.TerminationDate != nil && e.TerminationDate.After(t) {
		return hrdata.StatusActive
	}
	return e.Status
}

// filterExpenses keeps the expenses dated inside the window.
func filterExpenses(expenses []hrdata.Expense, w timeWindow) []hrdata.Expense {
	out := make([]hrdata.Expense, 0, len(expenses))
	for _, e := range expenses {
		if w.contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
