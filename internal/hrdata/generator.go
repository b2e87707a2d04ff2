package hrdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// Dataset size is fixed: the dashboard always works over the same
	// synthetic population.
	EmployeeCount = 250
	ExpenseCount  = 500
)

// RawEmployee is the shape produced by the generator before normalization.
// Field names deliberately differ from Employee; the normalizer owns the
// mapping between the two.
type RawEmployee struct {
	ID                string
	FullName          string
	Unit              Department
	Site              Agency
	Role              string
	AnnualSalary      int
	HiredOn           time.Time
	LeftOn            *time.Time
	State             EmployeeStatus
	Rating            int
	TrainingHours     int
	RemoteDaysPerWeek int
	ContractRate      float64
	Gender            string
	BornOn            *time.Time
	AbsenceDays       int
	OnboardingDays    int
	TasksAssigned     int
	TasksDone         int
	DocsRequired      int
	DocsProvided      int
}

// RawExpense is the generator-side expense shape.
type RawExpense struct {
	ID       string
	Category ExpenseCategory
	Amount   float64
	SpentOn  time.Time
	Label    string
}

// RawDataset is the full generator output, consumed by Normalize.
type RawDataset struct {
	Employees []RawEmployee
	Expenses  []RawExpense
}

var firstNames = []string{
	"Camille", "Julien", "Sophie", "Nicolas", "Claire", "Thomas", "Émilie",
	"Antoine", "Laura", "Maxime", "Chloé", "Lucas", "Manon", "Hugo",
	"Léa", "Romain", "Sarah", "Alexandre", "Pauline", "Mathieu",
}

var lastNames = []string{
	"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit",
	"Durand", "Leroy", "Moreau", "Simon", "Laurent", "Lefebvre", "Michel",
	"Garcia", "David", "Bertrand", "Roux", "Vincent", "Fournier",
}

var positionsByDepartment = map[Department][]string{
	DepartmentRH:         {"Chargé RH", "Responsable RH", "Gestionnaire de paie", "Chargé de recrutement"},
	DepartmentIT:         {"Développeur", "Administrateur système", "Chef de projet", "Ingénieur QA"},
	DepartmentFinance:    {"Comptable", "Contrôleur de gestion", "Analyste financier", "Trésorier"},
	DepartmentMarketing:  {"Chargé de communication", "Responsable marketing", "Graphiste", "Community manager"},
	DepartmentCommercial: {"Commercial", "Responsable grands comptes", "Assistant commercial", "Directeur des ventes"},
	DepartmentOperations: {"Responsable logistique", "Chef d'équipe", "Technicien", "Coordinateur"},
}

// expenseBuckets ties the amount range to the category so that KPI
// narratives stay internally consistent (a meal stays small, a training
// stays large).
var expenseBuckets = map[ExpenseCategory][2]float64{
	ExpenseFormation:   {500, 5000},
	ExpenseRecrutement: {200, 3000},
	ExpenseMateriel:    {100, 2000},
	ExpenseLogiciel:    {50, 1500},
	ExpenseRepas:       {10, 100},
	ExpenseDeplacement: {50, 800},
}

var expenseLabels = map[ExpenseCategory][]string{
	ExpenseFormation:   {"Formation management", "Formation sécurité", "Certification technique", "Séminaire métier"},
	ExpenseRecrutement: {"Annonce emploi", "Cabinet de recrutement", "Salon de l'emploi", "Tests d'évaluation"},
	ExpenseMateriel:    {"Poste de travail", "Écran", "Mobilier de bureau", "Téléphone"},
	ExpenseLogiciel:    {"Licence SIRH", "Licence bureautique", "Outil de paie", "Abonnement SaaS"},
	ExpenseRepas:       {"Déjeuner d'équipe", "Repas d'affaires", "Plateaux repas réunion"},
	ExpenseDeplacement: {"Billet de train", "Nuit d'hôtel", "Indemnités kilométriques", "Location de véhicule"},
}

// Generator produces synthetic datasets. A zero seed yields a fresh random
// dataset per call; a non-zero seed pins it for tests.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

type GeneratorOption func(*Generator)

func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		if seed != 0 {
			g.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces exactly EmployeeCount employees and ExpenseCount
// expenses satisfying the documented field ranges and weightings.
func (g *Generator) Generate() *RawDataset {
	ds := &RawDataset{
		Employees: make([]RawEmployee, 0, EmployeeCount),
		Expenses:  make([]RawExpense, 0, ExpenseCount),
	}
	for i := 0; i < EmployeeCount; i++ {
		ds.Employees = append(ds.Employees, g.generateEmployee())
	}
	for i := 0; i < ExpenseCount; i++ {
		ds.Expenses = append(ds.Expenses, g.generateExpense())
	}
	return ds
}

func (g *Generator) generateEmployee() RawEmployee {
	now := g.now()

	unit := Departments[g.rng.Intn(len(Departments))]
	roles := positionsByDepartment[unit]

	// 85% active, 10% inactive, 5% terminated
	state := StatusActive
	switch roll := g.rng.Float64(); {
	case roll >= 0.95:
		state = StatusTerminated
	case roll >= 0.85:
		state = StatusInactive
	}

	// hire date between 6 months and 15 years in the past
	hiredDaysAgo := 180 + g.rng.Intn(15*365-180)
	hiredOn := now.AddDate(0, 0, -hiredDaysAgo)

	var leftOn *time.Time
	if state == StatusTerminated {
		// termination strictly after hire, still in the past
		d := 1 + g.rng.Intn(hiredDaysAgo)
		t := hiredOn.AddDate(0, 0, d)
		leftOn = &t
	}

	// 70% / 20% / 8% / 2% over {1.0, 0.8, 0.6, 0.5}
	rate := weightedRate(g.rng.Float64())

	gender := "F"
	if g.rng.Float64() < 0.5 {
		gender = "M"
	}
	// 22 to 62 years old
	ageDays := 22*365 + g.rng.Intn(40*365)
	born := now.AddDate(0, 0, -ageDays)

	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]

	tasksAssigned := 20 + g.rng.Intn(41)
	tasksDone := tasksAssigned - g.rng.Intn(tasksAssigned/4+1)

	docsRequired := 5 + g.rng.Intn(6)
	docsProvided := docsRequired - g.rng.Intn(3)
	if docsProvided < 0 {
		docsProvided = 0
	}

	return RawEmployee{
		ID:                uuid.NewString(),
		FullName:          first + " " + last,
		Unit:              unit,
		Site:              Agencies[g.rng.Intn(len(Agencies))],
		Role:              roles[g.rng.Intn(len(roles))],
		AnnualSalary:      30000 + g.rng.Intn(90001),
		HiredOn:           hiredOn,
		LeftOn:            leftOn,
		State:             state,
		Rating:            1 + g.rng.Intn(5),
		TrainingHours:     g.rng.Intn(81),
		RemoteDaysPerWeek: g.rng.Intn(6),
		ContractRate:      rate,
		Gender:            gender,
		BornOn:            &born,
		AbsenceDays:       g.rng.Intn(21),
		OnboardingDays:    10 + g.rng.Intn(36),
		TasksAssigned:     tasksAssigned,
		TasksDone:         tasksDone,
		DocsRequired:      docsRequired,
		DocsProvided:      docsProvided,
	}
}

func (g *Generator) generateExpense() RawExpense {
	now := g.now()

	category := ExpenseCategories[g.rng.Intn(len(ExpenseCategories))]
	bucket := expenseBuckets[category]
	amount := bucket[0] + g.rng.Float64()*(bucket[1]-bucket[0])

	labels := expenseLabels[category]
	label := labels[g.rng.Intn(len(labels))]

	// spread over the last 12 months
	spentDaysAgo := g.rng.Intn(365)

	return RawExpense{
		ID:       uuid.NewString(),
		Category: category,
		Amount:   float64(int(amount*100)) / 100,
		SpentOn:  now.AddDate(0, 0, -spentDaysAgo),
		Label:    fmt.Sprintf("%s - %s", label, category),
	}
}

// weightedRate maps a uniform roll to the documented working time rate
// weighting: 70% full time, 20% at 0.8, 8% at 0.6, 2% at 0.5.
func weightedRate(roll float64) float64 {
	switch {
	case roll < 0.70:
		return 1.0
	case roll < 0.90:
		return 0.8
	case roll < 0.98:
		return 0.6
	default:
		return 0.5
	}
}
