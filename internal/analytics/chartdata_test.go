package analytics_test

import (
	"github.com/hrpulse/hrpulse/internal/analytics"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GetKPIChartData", func() {
	var engine *analytics.Engine

	BeforeEach(func() {
		engine = newTestEngine()
	})

	It("should return nil for an unknown identifier", func() {
		chart := engine.GetKPIChartData("net-promoter-score", analytics.FilterOptions{Period: analytics.PeriodYear})
		Expect(chart).To(BeNil())
	})

	It("should produce three monthly buckets for a quarter", func() {
		chart := engine.GetKPIChartData(analytics.KPIHeadcount, analytics.FilterOptions{Period: analytics.PeriodQuarter})
		Expect(chart).NotTo(BeNil())
		Expect(chart.KPIID).To(Equal(analytics.KPIHeadcount))

		labels := make([]string, len(chart.TimeEvolution))
		for i, p := range chart.TimeEvolution {
			labels[i] = p.Label
		}
		// trailing months ending at the reference date, oldest first
		Expect(labels).To(Equal([]string{"avr.", "mai", "juin"}))
	})

	It("should produce twelve monthly buckets for a year", func() {
		chart := engine.GetKPIChartData(analytics.KPIHeadcount, analytics.FilterOptions{Period: analytics.PeriodYear})
		Expect(chart.TimeEvolution).To(HaveLen(12))
		Expect(chart.TimeEvolution[0].Label).To(Equal("juil."))
		Expect(chart.TimeEvolution[11].Label).To(Equal("juin"))
	})

	It("should produce four weekly buckets for a month", func() {
		chart := engine.GetKPIChartData(analytics.KPIHeadcount, analytics.FilterOptions{Period: analytics.PeriodMonth})
		Expect(chart.TimeEvolution).To(HaveLen(4))
		Expect(chart.TimeEvolution[0].Label).To(Equal("Semaine 1"))
		Expect(chart.TimeEvolution[3].Label).To(Equal("Semaine 4"))
	})

	It("should produce six date-labeled buckets for a week", func() {
		chart := engine.GetKPIChartData(analytics.KPIHeadcount, analytics.FilterOptions{Period: analytics.PeriodWeek})
		Expect(chart.TimeEvolution).To(HaveLen(6))
		for _, p := range chart.TimeEvolution {
			Expect(p.Label).To(MatchRegexp(`^\d{2}/\d{2}$`))
		}
	})

	It("should break the KPI down by the departments present in the dataset", func() {
		chart := engine.GetKPIChartData(analytics.KPIHeadcount, analytics.FilterOptions{Period: analytics.PeriodYear})

		depts := make([]string, len(chart.DepartmentBreakdown))
		for i, p := range chart.DepartmentBreakdown {
			depts[i] = p.Department
		}
		Expect(depts).To(Equal([]string{"Informatique", "Finance", "Marketing", "Commercial"}))

		byDept := map[string]float64{}
		for _, p := range chart.DepartmentBreakdown {
			byDept[p.Department] = p.Value
		}
		Expect(byDept["Informatique"]).To(Equal(2.0))
		Expect(byDept["Commercial"]).To(Equal(0.0))
	})

	It("should attach the KPI-specific categorical breakdown", func() {
		chart := engine.GetKPIChartData(analytics.KPIRemoteWork, analytics.FilterOptions{Period: analytics.PeriodYear})
		Expect(chart.SpecificBreakdown.Name).To(Equal("Mode de travail"))
		Expect(chart.SpecificBreakdown.Points).To(Equal([]analytics.CategoryPoint{
			{Label: "Télétravail", Value: 3},
			{Label: "Sur site", Value: 2},
		}))
	})
})
