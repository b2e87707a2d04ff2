package hrdata

import "time"

// Department is one of the fixed organizational units.
type Department string

const (
	DepartmentRH         Department = "Ressources Humaines"
	DepartmentIT         Department = "Informatique"
	DepartmentFinance    Department = "Finance"
	DepartmentMarketing  Department = "Marketing"
	DepartmentCommercial Department = "Commercial"
	DepartmentOperations Department = "Opérations"
)

// Departments lists every organizational unit in a fixed order.
var Departments = []Department{
	DepartmentRH,
	DepartmentIT,
	DepartmentFinance,
	DepartmentMarketing,
	DepartmentCommercial,
	DepartmentOperations,
}

// Agency is one of the fixed physical locations.
type Agency string

const (
	AgencyParis     Agency = "Paris"
	AgencyLyon      Agency = "Lyon"
	AgencyMarseille Agency = "Marseille"
	AgencyBordeaux  Agency = "Bordeaux"
	AgencyLille     Agency = "Lille"
)

var Agencies = []Agency{AgencyParis, AgencyLyon, AgencyMarseille, AgencyBordeaux, AgencyLille}

type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusInactive   EmployeeStatus = "inactive"
	StatusTerminated EmployeeStatus = "terminated"
)

// WorkingTimeRates are the allowed part-time fractions.
var WorkingTimeRates = []float64{1.0, 0.8, 0.6, 0.5}

// Employee is one normalized worker record. Records are immutable after
// generation; the whole dataset is replaced on regeneration.
type Employee struct {
	ID               string         `json:"id"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Email            string         `json:"email"`
	Department       Department     `json:"department"`
	Agency           Agency         `json:"agency"`
	Position         string         `json:"position"`
	Salary           int            `json:"salary"`
	HireDate         time.Time      `json:"hire_date"`
	TerminationDate  *time.Time     `json:"termination_date,omitempty"`
	Status           EmployeeStatus `json:"status"`
	PerformanceScore int            `json:"performance_score"`
	TrainingHours    int            `json:"training_hours"`
	RemoteWork       bool           `json:"remote_work"`
	WorkingTimeRate  float64        `json:"working_time_rate"`
	Gender           string         `json:"gender,omitempty"`
	BirthDate        *time.Time     `json:"birth_date,omitempty"`

	AbsenceDays       int `json:"absence_days"`
	OnboardingDays    int `json:"onboarding_days"`
	TasksAssigned     int `json:"tasks_assigned"`
	TasksCompleted    int `json:"tasks_completed"`
	DocumentsRequired int `json:"documents_required"`
	DocumentsProvided int `json:"documents_provided"`
}

// Age returns the employee age in whole years at the given time, or 0 when
// no birth date is known.
func (e *Employee) Age(at time.Time) int {
	if e.BirthDate == nil {
		return 0
	}
	years := at.Year() - e.BirthDate.Year()
	anniversary := time.Date(at.Year(), e.BirthDate.Month(), e.BirthDate.Day(), 0, 0, 0, 0, time.UTC)
	if at.Before(anniversary) {
		years--
	}
	return years
}

// SeniorityYears returns completed years since hire at the given time.
func (e *Employee) SeniorityYears(at time.Time) float64 {
	return at.Sub(e.HireDate).Hours() / 24 / 365.25
}

// ExpenseCategory is one of the fixed HR cost categories.
type ExpenseCategory string

const (
	ExpenseFormation   ExpenseCategory = "Formation"
	ExpenseRecrutement ExpenseCategory = "Recrutement"
	ExpenseMateriel    ExpenseCategory = "Matériel"
	ExpenseLogiciel    ExpenseCategory = "Logiciel"
	ExpenseRepas       ExpenseCategory = "Repas"
	ExpenseDeplacement ExpenseCategory = "Déplacement"
)

var ExpenseCategories = []ExpenseCategory{
	ExpenseFormation,
	ExpenseRecrutement,
	ExpenseMateriel,
	ExpenseLogiciel,
	ExpenseRepas,
	ExpenseDeplacement,
}

// Expense is one HR-related cost entry.
type Expense struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// HRData is the immutable in-memory snapshot every KPI computation reads.
type HRData struct {
	Employees   []Employee `json:"employees"`
	Expenses    []Expense  `json:"expenses"`
	GeneratedAt time.Time  `json:"generated_at"`
}
