package analytics_test

import (
	"time"

	"github.com/hrpulse/hrpulse/internal"
	"github.com/hrpulse/hrpulse/internal/analytics"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func kpiWith(name string, category analytics.Category) analytics.KPIData {
	return analytics.KPIData{Name: name, Category: category}
}

var _ = Describe("GenerateGlobalInsight", func() {
	var (
		engine  *analytics.Engine
		filters analytics.FilterOptions
	)

	BeforeEach(func() {
		engine = newTestEngine()
		filters = analytics.FilterOptions{Period: analytics.PeriodYear}
	})

	It("should report no critical point when nothing is negative", func() {
		kpis := []analytics.KPIData{
			kpiWith("Effectif", analytics.CategoryPositive),
			kpiWith("Turnover", analytics.CategoryPositive),
			kpiWith("Télétravail", analytics.CategoryNeutral),
		}
		Expect(engine.GenerateGlobalInsight(kpis, filters)).To(Equal(
			"Aucun point critique détecté : l'ensemble des indicateurs suivis reste dans les seuils cibles sur la période."))
	})

	It("should report a balanced situation on a tie", func() {
		kpis := []analytics.KPIData{
			kpiWith("Effectif", analytics.CategoryPositive),
			kpiWith("Turnover", analytics.CategoryNegative),
			kpiWith("Télétravail", analytics.CategoryPositive),
			kpiWith("Taux d'absentéisme", analytics.CategoryNegative),
		}
		Expect(engine.GenerateGlobalInsight(kpis, filters)).To(ContainSubstring("Situation équilibrée"))
	})

	It("should name a single negative KPI in the singular", func() {
		kpis := []analytics.KPIData{
			kpiWith("Turnover", analytics.CategoryNegative),
			kpiWith("Effectif", analytics.CategoryPositive),
			kpiWith("Télétravail", analytics.CategoryPositive),
		}
		Expect(engine.GenerateGlobalInsight(kpis, filters)).To(Equal(
			"1 indicateur sur 3 demande une attention particulière : Turnover. Les 2 autres indicateurs restent dans leurs seuils cibles."))
	})

	It("should name multiple negative KPIs in the plural", func() {
		kpis := []analytics.KPIData{
			kpiWith("Turnover", analytics.CategoryNegative),
			kpiWith("Effectif", analytics.CategoryNegative),
			kpiWith("Télétravail", analytics.CategoryPositive),
			kpiWith("Taux d'occupation", analytics.CategoryPositive),
			kpiWith("Dépenses RH", analytics.CategoryPositive),
		}
		Expect(engine.GenerateGlobalInsight(kpis, filters)).To(Equal(
			"2 indicateurs sur 5 demandent une attention particulière : Turnover, Effectif. Les 3 autres indicateurs restent dans leurs seuils cibles."))
	})

	It("should include the trend clause in individual insights", func() {
		withCompare := analytics.FilterOptions{Period: analytics.PeriodYear, CompareWith: analytics.ComparePrevious}
		k, _ := engine.GetKPI(analytics.KPIRemoteWork, withCompare)
		Expect(k.Insight).To(ContainSubstring("En hausse de 20.0% par rapport à la période de comparaison."))
	})
})

var _ = Describe("FilterOptions validation", func() {
	It("should default an empty period to year", func() {
		f := analytics.FilterOptions{}
		Expect(f.Validate()).To(Succeed())
		Expect(f.Period).To(Equal(analytics.PeriodYear))
	})

	It("should reject an unknown period", func() {
		f := analytics.FilterOptions{Period: "decade"}
		Expect(f.Validate()).To(MatchError(internal.ErrInvalidPeriod))
	})

	It("should require a valid range for a custom period", func() {
		f := analytics.FilterOptions{Period: analytics.PeriodCustom}
		Expect(f.Validate()).To(MatchError(internal.ErrInvalidDateRange))

		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		f = analytics.FilterOptions{Period: analytics.PeriodCustom, StartDate: &start, EndDate: &end}
		Expect(f.Validate()).To(MatchError(internal.ErrInvalidDateRange))

		f = analytics.FilterOptions{Period: analytics.PeriodCustom, StartDate: &end, EndDate: &start}
		Expect(f.Validate()).To(Succeed())
	})

	It("should reject an unknown comparison mode", func() {
		f := analytics.FilterOptions{Period: analytics.PeriodYear, CompareWith: "decade-ago"}
		Expect(f.Validate()).To(MatchError(internal.ErrInvalidComparison))
	})
})
