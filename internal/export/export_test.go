package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/hrpulse/hrpulse/internal/analytics"
	"github.com/hrpulse/hrpulse/internal/export"
	"github.com/hrpulse/hrpulse/internal/hrdata"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestExport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Export Suite")
}

func sampleReport() export.Report {
	up := 4.2
	return export.Report{
		GeneratedAt: time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC),
		Filters:     analytics.FilterOptions{Period: analytics.PeriodYear},
		KPIs: []analytics.KPIData{
			{
				ID: "headcount", Name: "Effectif", Value: "212",
				RawValue: 212, Unit: "collaborateurs",
				Comparison: analytics.ComparisonStable,
				Category:   analytics.CategoryPositive,
				Insight:    "L'entreprise compte 212 collaborateurs actifs, un effectif conforme à la cible.",
			},
			{
				ID: "turnover", Name: "Turnover", Value: "12.5",
				RawValue: 12.5, Unit: "%", Trend: &up,
				Comparison: analytics.ComparisonHigher,
				Category:   analytics.CategoryNegative,
				Insight:    "Le turnover atteint 12.5% sur la période.",
			},
		},
		Headcount: analytics.HeadcountDetail{
			Total: 250, Active: 212, Inactive: 25, Terminated: 13,
			Remote: 96, FullTimeEquivalent: 198.4,
			ByDepartment: []analytics.DepartmentPoint{
				{Department: "Informatique", Value: 58},
			},
		},
		GlobalInsight: "1 indicateur sur 2 demande une attention particulière : Turnover.",
	}
}

var _ = Describe("Report metadata", func() {
	It("should build the download filename from the generation date", func() {
		t := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
		Expect(export.Filename(export.FormatCSV, t)).To(Equal("indicateurs-rh-2026-06-30.csv"))
		Expect(export.Filename(export.FormatPDF, t)).To(Equal("indicateurs-rh-2026-06-30.pdf"))
	})

	It("should map every format to a content type", func() {
		Expect(export.ContentType(export.FormatCSV)).To(HavePrefix("text/csv"))
		Expect(export.ContentType(export.FormatXLSX)).To(ContainSubstring("spreadsheetml"))
		Expect(export.ContentType(export.FormatPDF)).To(Equal("application/pdf"))
		Expect(export.ContentType(export.FormatJSON)).To(Equal("application/json"))
		Expect(export.ContentType(export.Format("docx"))).To(BeEmpty())
	})
})

var _ = Describe("WriteCSV", func() {
	It("should emit a header and one row per KPI", func() {
		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, sampleReport())).To(Succeed())

		rows, err := csv.NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal([]string{"id", "indicateur", "valeur", "unité", "tendance", "classification", "analyse"}))
		Expect(rows[1][0]).To(Equal("headcount"))
		Expect(rows[1][4]).To(Equal("-"))
		Expect(rows[2][4]).To(Equal("+4.2 %"))
		Expect(rows[2][5]).To(Equal("negative"))
	})
})

var _ = Describe("WriteDemographicsCSV", func() {
	It("should aggregate the gender split per department", func() {
		employees := []hrdata.Employee{
			{Department: hrdata.DepartmentIT, Gender: "F"},
			{Department: hrdata.DepartmentIT, Gender: "M"},
			{Department: hrdata.DepartmentIT, Gender: "M"},
			{Department: hrdata.DepartmentFinance, Gender: ""},
		}

		var buf bytes.Buffer
		Expect(export.WriteDemographicsCSV(&buf, employees)).To(Succeed())

		rows, err := csv.NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal([]string{"département", "femmes", "hommes", "non renseigné", "total"}))
		Expect(rows[1]).To(Equal([]string{"Informatique", "1", "2", "0", "3"}))
		Expect(rows[2]).To(Equal([]string{"Finance", "0", "0", "1", "1"}))
	})
})

var _ = Describe("WriteJSON", func() {
	It("should round-trip the report", func() {
		var buf bytes.Buffer
		Expect(export.WriteJSON(&buf, sampleReport())).To(Succeed())

		var decoded export.Report
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.KPIs).To(HaveLen(2))
		Expect(decoded.KPIs[0].ID).To(Equal("headcount"))
		Expect(decoded.GlobalInsight).To(Equal(sampleReport().GlobalInsight))
	})
})

var _ = Describe("binary sinks", func() {
	It("should produce a non-empty XLSX workbook", func() {
		var buf bytes.Buffer
		Expect(export.WriteXLSX(&buf, sampleReport())).To(Succeed())
		// XLSX files are zip archives
		Expect(buf.Bytes()[:2]).To(Equal([]byte("PK")))
	})

	It("should produce a non-empty PDF document", func() {
		var buf bytes.Buffer
		Expect(export.WritePDF(&buf, sampleReport())).To(Succeed())
		Expect(buf.Bytes()[:4]).To(Equal([]byte("%PDF")))
	})
})
