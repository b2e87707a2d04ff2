package analytics

import (
	"fmt"
	"strings"
)

// Narrative "insight" strings are template interpolation over the computed
// fields, never independently stored state.

func trendClause(k KPIData) string {
	if k.Trend == nil {
		return ""
	}
	switch k.Comparison {
	case ComparisonHigher:
		return fmt.Sprintf(" En hausse de %.1f%% par rapport à la période de comparaison.", *k.Trend)
	case ComparisonLower:
		return fmt.Sprintf(" En baisse de %.1f%% par rapport à la période de comparaison.", -*k.Trend)
	default:
		return " Stable par rapport à la période de comparaison."
	}
}

func absenteeismInsight(k KPIData) string {
	verdict := "en dessous du seuil de vigilance de 5%."
	if k.Category == CategoryNegative {
		verdict = "au-dessus du seuil de vigilance de 5% : un plan d'action est recommandé."
	}
	return fmt.Sprintf("Le taux d'absentéisme s'établit à %s%%, %s%s", k.Value, verdict, trendClause(k))
}

func turnoverInsight(k KPIData) string {
	verdict := "sous le seuil d'alerte de 10%."
	if k.Category == CategoryNegative {
		verdict = "au-delà du seuil d'alerte de 10% : la rétention mérite une attention particulière."
	}
	return fmt.Sprintf("Le turnover atteint %s%% sur la période, %s%s", k.Value, verdict, trendClause(k))
}

func headcountInsight(k KPIData) string {
	verdict := "un effectif conforme à la cible."
	if k.Category == CategoryNegative {
		verdict = "un effectif sous la cible de 100 collaborateurs actifs."
	}
	return fmt.Sprintf("L'entreprise compte %s collaborateurs actifs, %s%s", k.Value, verdict, trendClause(k))
}

func utilizationInsight(k KPIData) string {
	verdict := "au-dessus de la cible de 80%."
	if k.Category == CategoryNegative {
		verdict = "en dessous de la cible de 80% : la part de temps partiel pèse sur la capacité."
	}
	return fmt.Sprintf("Le taux d'occupation des effectifs est de %s%%, %s%s", k.Value, verdict, trendClause(k))
}

func remoteWorkInsight(k KPIData) string {
	verdict := "une adoption satisfaisante."
	if k.Category == CategoryNegative {
		verdict = "une adoption encore faible, sous les 20% visés."
	}
	return fmt.Sprintf("%s%% des collaborateurs pratiquent le télétravail, %s%s", k.Value, verdict, trendClause(k))
}

func onboardingInsight(k KPIData) string {
	verdict := "dans la cible de 30 jours."
	if k.Category == CategoryNegative {
		verdict = "au-delà de la cible de 30 jours : le parcours d'intégration gagnerait à être raccourci."
	}
	return fmt.Sprintf("L'intégration d'un nouveau collaborateur dure en moyenne %s jours, %s%s", k.Value, verdict, trendClause(k))
}

func expensesInsight(k KPIData) string {
	var verdict string
	switch k.Category {
	case CategoryNegative:
		verdict = " Leur progression dépasse 15% : un contrôle budgétaire s'impose."
	case CategoryNeutral:
		verdict = " Leur progression reste modérée mais à surveiller."
	default:
		verdict = " L'enveloppe est maîtrisée."
	}
	return fmt.Sprintf("Les dépenses RH s'élèvent à %s € sur la période.%s%s", k.Value, verdict, trendClause(k))
}

func ageSeniorityInsight(k KPIData) string {
	verdict := "une pyramide des âges équilibrée."
	if k.Category == CategoryNegative {
		verdict = "une moyenne d'âge supérieure à 40 ans : anticiper le renouvellement des compétences."
	}
	return fmt.Sprintf("L'âge moyen des collaborateurs est de %s ans, %s%s", k.Value, verdict, trendClause(k))
}

func taskCompletionInsight(k KPIData) string {
	verdict := "au-dessus de l'objectif de 80%."
	if k.Category == CategoryNegative {
		verdict = "sous l'objectif de 80% : la charge de travail mérite d'être rééquilibrée."
	}
	return fmt.Sprintf("Le taux de complétion des tâches est de %s%%, %s%s", k.Value, verdict, trendClause(k))
}

func documentCompletionInsight(k KPIData) string {
	verdict := "au-dessus de l'objectif de 80%."
	if k.Category == CategoryNegative {
		verdict = "sous l'objectif de 80% : relancer les collaborateurs concernés."
	}
	return fmt.Sprintf("Les dossiers administratifs sont complets à %s%%, %s%s", k.Value, verdict, trendClause(k))
}

// GenerateGlobalInsight rolls the KPI set up into one sentence. Zero
// negatives yields the "no critical point" sentence; a positive/negative
// tie yields the balanced sentence; otherwise the negative KPIs are named.
func (e *Engine) GenerateGlobalInsight(kpis []KPIData, filters FilterOptions) string {
	positives := 0
	var negatives []string
	for _, k := range kpis {
		switch k.Category {
		case CategoryPositive:
			positives++
		case CategoryNegative:
			negatives = append(negatives, k.Name)
		}
	}

	switch {
	case len(negatives) == 0:
		return "Aucun point critique détecté : l'ensemble des indicateurs suivis reste dans les seuils cibles sur la période."
	case len(negatives) == positives:
		return "Situation équilibrée sur la période : autant d'indicateurs favorables que de points de vigilance. Prioriser les actions sur les indicateurs les plus proches de leur seuil."
	default:
		plural, verb := "", "demande"
		if len(negatives) > 1 {
			plural, verb = "s", "demandent"
		}
		return fmt.Sprintf(
			"%d indicateur%s sur %d %s une attention particulière : %s. Les %d autres indicateurs restent dans leurs seuils cibles.",
			len(negatives), plural, len(kpis), verb,
			strings.Join(negatives, ", "), positives)
	}
}
