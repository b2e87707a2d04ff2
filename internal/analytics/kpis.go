package analytics

import (
	"fmt"

	"github.com/hrpulse/hrpulse/internal/hrdata"
)

// Documented category thresholds. Comparisons are strict: an absenteeism
// rate of exactly 5.0% still classifies as positive.
const (
	absenteeismNegativeAbove   = 5.0
	turnoverNegativeAbove      = 10.0
	headcountNegativeBelow     = 100.0
	utilizationNegativeBelow   = 80.0
	remoteWorkNegativeBelow    = 20.0
	onboardingNegativeAbove    = 30.0
	expensesTrendNegativeAbove = 15.0
	expensesTrendNeutralAbove  = 5.0
	ageNegativeAbove           = 40.0
	completionNegativeBelow    = 80.0
)

// workingDaysPerYear is the reference base for the absenteeism ratio.
const workingDaysPerYear = 220

// kpiCatalogue is the fixed catalogue in its contractual enumeration
// order. Callers must never rely on map iteration order instead.
var kpiCatalogue = []kpiDefinition{
	{
		ID:       KPIAbsenteeism,
		Name:     "Taux d'absentéisme",
		Unit:     "%",
		Decimals: 1,
		Compute: func(in computeInput) (float64, bool) {
			if len(in.employees) == 0 {
				return 0, false
			}
			total := 0
			for i := range in.employees {
				total += in.employees[i].AbsenceDays
			}
			return float64(total) / float64(workingDaysPerYear*len(in.employees)) * 100, true
		},
		Classify:     negativeAbove(absenteeismNegativeAbove),
		Insight:      absenteeismInsight,
		Breakdown:    absenceTypeBreakdown,
		EmptyInsight: "Aucun collaborateur ne correspond aux filtres : taux d'absentéisme non mesurable.",
	},
	{
		ID:       KPITurnover,
		Name:     "Turnover",
		Unit:     "%",
		Decimals: 1,
		Compute: func(in computeInput) (float64, bool) {
			if len(in.employees) == 0 {
				return 0, false
			}
			departures := 0
			for i := range in.employees {
				t := in.employees[i].TerminationDate
				if t != nil && in.window.contains(*t) {
					departures++
				}
			}
			return float64(departures) / float64(len(in.employees)) * 100, true
		},
		Classify:     negativeAbove(turnoverNegativeAbove),
		Insight:      turnoverInsight,
		Breakdown:    departureReasonBreakdown,
		EmptyInsight: "Aucun collaborateur ne correspond aux filtres : turnover non mesurable.",
	},
	{
		ID:       KPIHeadcount,
		Name:     "Effectif",
		Unit:     "collaborateurs",
		Decimals: 0,
		Compute: func(in computeInput) (float64, bool) {
			active := 0
			for i := range in.employees {
				if statusAsOf(&in.employees[i], in.window.end) == hrdata.StatusActive {
					active++
				}
			}
			return float64(active), true
		},
		Classify:     negativeBelow(headcountNegativeBelow),
		Insight:      headcountInsight,
		Breakdown:    statusBreakdown,
		EmptyInsight: "Aucun collaborateur ne correspond aux filtres.",
	},
	{
		ID:       KPIWorkforceUtilization,
		Name:     "Taux d'occupation",
		Unit:     "%",
		Decimals: 1,
		Compute: func(in computeInput) (float64, bool) {
			active, fte := 0, 0.0
			for i := range in.employees {
				if statusAsOf(&in.employees[i], in.window.end) == hrdata.StatusActive {
					active++
					fte += in.employees[i].WorkingTimeRate
				}
			}
			if active == 0 {
				return 0, false
			}
			return fte / float64(active) * 100, true
		},
		Classify:     negativeBelow(utilizationNegativeBelow),
		Insight:      utilizationInsight,
		Breakdown:    workingTimeBreakdown,
		EmptyInsight: "Aucun collaborateur actif ne correspond aux filtres : taux d'occupation non mesurable.",
	},
	{
		ID:       KPIRemoteWork,
		Name:     "Télétravail",
		Unit:     "%",
		Decimals: 1,
		Compute: func(in computeInput) (float64, bool) {
			if len(in.employees) == 0 {
				return 0, false
			}
			remote := 0
			for i := range in.employees {
				if in.employees[i].RemoteWork {
					remote++
				}
			}
			return float64(remote) / float64(len(in.employees)) * 100, true
		},
		Classify:     negativeBelow(remoteWorkNegativeBelow),
		Insight:      remoteWorkInsight,
		Breakdown:    remoteWorkBreakdown,
		EmptyInsight: "Aucun collaborateur ne correspond aux filtres : adoption du télétravail non mesurable.",
	},
	{
		ID:       KPIOnboarding,
		Name:     "Durée d'intégration",
		Unit:     "jours",
		Decimals: 0,
		Compute: func(in computeInput) (float64, bool) {
			if len(in.employees) == 0 {
				return 0, false
			}
			total := 0
			for i := range in.employees {
				total += in.employees[i].OnboardingDays
			}
			return float64(total) / float64(len(in.employees)), true
		},
		Classify:     negativeAbove(onboardingNegativeAbove),
		Insight:      onboardingInsight,
		Breakdown:    onboardingBreakdown,
		EmptyInsight: "Aucun collaborateur ne correspond aux filtres : durée d'intégration non mesurable.",
	},
	{
		ID:       KPIHRExpenses,
		Name:     "Dépenses RH",
		Unit:     "€",
		Decimals: 0,
		Compute: func(in computeInput) (float64, bool) {
			total := 0.0
			for i := range in.expenses {
				total += in.expenses[i].Amount
			}
			return total, true
		},
		Classify: func(_ float64, trend *float64) Category {
			// the expense KPI classifies on its evolution, not its
			// absolute level
			switch {
			case trend != nil && *trend > expensesTrendNegativeAbove:
				return CategoryNegative
			case trend != nil && *trend > expensesTrendNeutralAbove:
				return CategoryNeutral
			default:
				return CategoryPositive
			}
		},
		Insight:      expensesInsight,
		Breakdown:    expenseCategoryBreakdown,
		EmptyInsight: "Aucune dépense enregistrée sur la période.",
	},
	{
		ID:       KPIAgeSeniority,
		Name:     "Âge et ancienneté",
		Unit:     "ans",
		Decimals: 1,
		Compute: func(in computeInput) (float64, bool) {
			count, total := 0, 0
			for i := range in.employees {
				if age := in.employees[i].Age(in.window.end); age > 0 {
					total += age
					count++
				}
			}
			if count == 0 {
				return 0, false
			}
			return float64(total) / float64(count), true
		},
		Classify:     negativeAbove(ageNegativeAbove),
		Insight:      ageSeniorityInsight,
		Breakdown:    ageBracketBreakdown,
		EmptyInsight: "Aucune donnée démographique disponible pour les filtres choisis.",
	},
	{
		ID:       KPITaskCompletion,
		Name:     "Complétion des tâches",
		Unit:     "%",
		Decimals: 1,
		Compute: func(in computeInput) (float64, bool) {
			assigned, completed := 0, 0
			for i := range in.employees {
				assigned += in.employees[i].TasksAssigned
				completed += in.employees[i].TasksCompleted
			}
			if assigned == 0 {
				return 0, false
			}
			return float64(completed) / float64(assigned) * 100, true
		},
		Classify:     negativeBelow(completionNegativeBelow),
		Insight:      taskCompletionInsight,
		Breakdown:    performanceBreakdown,
		EmptyInsight: "Aucune tâche suivie pour les filtres choisis.",
	},
	{
		ID:       KPIDocumentCompletion,
		Name:     "Complétude des dossiers",
		Unit:     "%",
		Decimals: 1,
		Compute: func(in computeInput) (float64, bool) {
			required, provided := 0, 0
			for i := range in.employees {
				required += in.employees[i].DocumentsRequired
				provided += in.employees[i].DocumentsProvided
			}
			if required == 0 {
				return 0, false
			}
			return float64(provided) / float64(required) * 100, true
		},
		Classify:     negativeBelow(completionNegativeBelow),
		Insight:      documentCompletionInsight,
		Breakdown:    documentBreakdown,
		EmptyInsight: "Aucun dossier administratif suivi pour les filtres choisis.",
	},
}

// negativeAbove builds the strict "negative when value > threshold,
// positive otherwise" policy.
func negativeAbove(threshold float64) func(float64, *float64) Category {
	return func(value float64, _ *float64) Category {
		if value > threshold {
			return CategoryNegative
		}
		return CategoryPositive
	}
}

// negativeBelow builds the strict "negative when value < threshold,
// positive otherwise" policy.
func negativeBelow(threshold float64) func(float64, *float64) Category {
	return func(value float64, _ *float64) Category {
		if value < threshold {
			return CategoryNegative
		}
		return CategoryPositive
	}
}

// ----- KPI-specific categorical breakdowns -----

// absenceTypeRatios approximates the split of absence days by cause; the
// dataset tracks only the total per employee.
var absenceTypeRatios = []struct {
	label string
	ratio float64
}{
	{"Maladie", 0.55},
	{"Congés familiaux", 0.20},
	{"Accident du travail", 0.10},
	{"Autre", 0.15},
}

func absenceTypeBreakdown(in computeInput) CategoricalBreakdown {
	total := 0
	for i := range in.employees {
		total += in.employees[i].AbsenceDays
	}
	b := CategoricalBreakdown{Name: "Type d'absence"}
	for _, t := range absenceTypeRatios {
		b.Points = append(b.Points, CategoryPoint{Label: t.label, Value: round1(float64(total) * t.ratio)})
	}
	return b
}

var departureReasonRatios = []struct {
	label string
	ratio float64
}{
	{"Démission", 0.50},
	{"Fin de contrat", 0.25},
	{"Licenciement", 0.15},
	{"Rupture conventionnelle", 0.10},
}

func departureReasonBreakdown(in computeInput) CategoricalBreakdown {
	departures := 0
	for i := range in.employees {
		t := in.employees[i].TerminationDate
		if t != nil && in.window.contains(*t) {
			departures++
		}
	}
	b := CategoricalBreakdown{Name: "Motif de départ"}
	for _, r := range departureReasonRatios {
		b.Points = append(b.Points, CategoryPoint{Label: r.label, Value: round1(float64(departures) * r.ratio)})
	}
	return b
}

func statusBreakdown(in computeInput) CategoricalBreakdown {
	var active, inactive, terminated float64
	for i := range in.employees {
		switch statusAsOf(&in.employees[i], in.window.end) {
		case hrdata.StatusActive:
			active++
		case hrdata.StatusInactive:
			inactive++
		case hrdata.StatusTerminated:
			terminated++
		}
	}
	return CategoricalBreakdown{
		Name: "Statut",
		Points: []CategoryPoint{
			{Label: "Actifs", Value: active},
			{Label: "Inactifs", Value: inactive},
			{Label: "Sortis", Value: terminated},
		},
	}
}

func workingTimeBreakdown(in computeInput) CategoricalBreakdown {
	counts := map[float64]float64{}
	for i := range in.employees {
		counts[in.employees[i].WorkingTimeRate]++
	}
	b := CategoricalBreakdown{Name: "Temps de travail"}
	for _, rate := range hrdata.WorkingTimeRates {
		label := "Temps plein"
		if rate != 1.0 {
			label = fmt.Sprintf("%.0f%%", rate*100)
		}
		b.Points = append(b.Points, CategoryPoint{Label: label, Value: counts[rate]})
	}
	return b
}

func remoteWorkBreakdown(in computeInput) CategoricalBreakdown {
	var remote, onSite float64
	for i := range in.employees {
		if in.employees[i].RemoteWork {
			remote++
		} else {
			onSite++
		}
	}
	return CategoricalBreakdown{
		Name: "Mode de travail",
		Points: []CategoryPoint{
			{Label: "Télétravail", Value: remote},
			{Label: "Sur site", Value: onSite},
		},
	}
}

func onboardingBreakdown(in computeInput) CategoricalBreakdown {
	var short, medium, long float64
	for i := range in.employees {
		switch d := in.employees[i].OnboardingDays; {
		case d < 15:
			short++
		case d <= 30:
			medium++
		default:
			long++
		}
	}
	return CategoricalBreakdown{
		Name: "Durée d'intégration",
		Points: []CategoryPoint{
			{Label: "Moins de 15 jours", Value: short},
			{Label: "15 à 30 jours", Value: medium},
			{Label: "Plus de 30 jours", Value: long},
		},
	}
}

func expenseCategoryBreakdown(in computeInput) CategoricalBreakdown {
	sums := map[hrdata.ExpenseCategory]float64{}
	for i := range in.expenses {
		sums[in.expenses[i].Category] += in.expenses[i].Amount
	}
	b := CategoricalBreakdown{Name: "Catégorie de dépense"}
	for _, c := range hrdata.ExpenseCategories {
		b.Points = append(b.Points, CategoryPoint{Label: string(c), Value: round1(sums[c])})
	}
	return b
}

func ageBracketBreakdown(in computeInput) CategoricalBreakdown {
	var under30, thirties, forties, fiftyPlus float64
	for i := range in.employees {
		switch age := in.employees[i].Age(in.window.end); {
		case age == 0:
		case age < 30:
			under30++
		case age < 40:
			thirties++
		case age < 50:
			forties++
		default:
			fiftyPlus++
		}
	}
	return CategoricalBreakdown{
		Name: "Tranche d'âge",
		Points: []CategoryPoint{
			{Label: "Moins de 30 ans", Value: under30},
			{Label: "30-39 ans", Value: thirties},
			{Label: "40-49 ans", Value: forties},
			{Label: "50 ans et plus", Value: fiftyPlus},
		},
	}
}

func performanceBreakdown(in computeInput) CategoricalBreakdown {
	assigned := map[int]int{}
	completed := map[int]int{}
	for i := range in.employees {
		e := &in.employees[i]
		assigned[e.PerformanceScore] += e.TasksAssigned
		completed[e.PerformanceScore] += e.TasksCompleted
	}
	b := CategoricalBreakdown{Name: "Par niveau de performance"}
	for score := 1; score <= 5; score++ {
		value := 0.0
		if assigned[score] > 0 {
			value = round1(float64(completed[score]) / float64(assigned[score]) * 100)
		}
		b.Points = append(b.Points, CategoryPoint{Label: fmt.Sprintf("Note %d", score), Value: value})
	}
	return b
}

func documentBreakdown(in computeInput) CategoricalBreakdown {
	var complete, incomplete float64
	for i := range in.employees {
		if in.employees[i].DocumentsProvided >= in.employees[i].DocumentsRequired {
			complete++
		} else {
			incomplete++
		}
	}
	return CategoricalBreakdown{
		Name: "État des dossiers",
		Points: []CategoryPoint{
			{Label: "Dossier complet", Value: complete},
			{Label: "Dossier incomplet", Value: incomplete},
		},
	}
}
