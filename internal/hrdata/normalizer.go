package hrdata

import (
	"strings"
	"time"
)

// RemoteWorkThreshold is the minimum number of remote days per week for an
// employee to count as a remote worker.
const RemoteWorkThreshold = 2

const emailDomain = "hrpulse.example"

// Normalize maps the generator's raw record shape into the analytics
// shape: name split, email derivation, the remote flag and default fill of
// missing optional fields. The boundary is one-directional; feeding an
// already-normalized dataset back in is out of contract.
func Normalize(raw *RawDataset) *HRData {
	data := &HRData{
		Employees:   make([]Employee, 0, len(raw.Employees)),
		Expenses:    make([]Expense, 0, len(raw.Expenses)),
		GeneratedAt: time.Now(),
	}

	for i := range raw.Employees {
		data.Employees = append(data.Employees, normalizeEmployee(&raw.Employees[i]))
	}
	for i := range raw.Expenses {
		e := &raw.Expenses[i]
		data.Expenses = append(data.Expenses, Expense{
			ID:          e.ID,
			Category:    e.Category,
			Amount:      e.Amount,
			Date:        e.SpentOn,
			Description: e.Label,
		})
	}

	return data
}

func normalizeEmployee(raw *RawEmployee) Employee {
	first, last := splitName(raw.FullName)

	agency := raw.Site
	if agency == "" {
		agency = AgencyParis
	}

	rate := raw.ContractRate
	if !validRate(rate) {
		rate = 1.0
	}

	return Employee{
		ID:               raw.ID,
		FirstName:        first,
		LastName:         last,
		Email:            deriveEmail(first, last),
		Department:       raw.Unit,
		Agency:           agency,
		Position:         raw.Role,
		Salary:           raw.AnnualSalary,
		HireDate:         raw.HiredOn,
		TerminationDate:  raw.LeftOn,
		Status:           raw.State,
		PerformanceScore: raw.Rating,
		TrainingHours:    raw.TrainingHours,
		RemoteWork:       raw.RemoteDaysPerWeek >= RemoteWorkThreshold,
		WorkingTimeRate:  rate,
		Gender:           raw.Gender,
		BirthDate:        raw.BornOn,

		AbsenceDays:       raw.AbsenceDays,
		OnboardingDays:    raw.OnboardingDays,
		TasksAssigned:     raw.TasksAssigned,
		TasksCompleted:    raw.TasksDone,
		DocumentsRequired: raw.DocsRequired,
		DocumentsProvided: raw.DocsProvided,
	}
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "Inconnu", "Inconnu"
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func deriveEmail(first, last string) string {
	sanitize := func(s string) string {
		s = strings.ToLower(s)
		replacer := strings.NewReplacer(
			" ", "-",
			"é", "e", "è", "e", "ê", "e", "ë", "e",
			"à", "a", "â", "a",
			"î", "i", "ï", "i",
			"ô", "o", "ö", "o",
			"ù", "u", "û", "u", "ü", "u",
			"ç", "c",
		)
		return replacer.Replace(s)
	}
	return sanitize(first) + "." + sanitize(last) + "@" + emailDomain
}

func validRate(rate float64) bool {
	for _, r := range WorkingTimeRates {
		if rate == r {
			return true
		}
	}
	return false
}
