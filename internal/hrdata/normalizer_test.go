package hrdata_test

import (
	"time"

	"github.com/hrpulse/hrpulse/internal/hrdata"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Normalize", func() {
	rawEmployee := func() hrdata.RawEmployee {
		born := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
		return hrdata.RawEmployee{
			ID:                "emp-1",
			FullName:          "Émilie Le Goff",
			Unit:              hrdata.DepartmentIT,
			Site:              hrdata.AgencyLyon,
			Role:              "Développeur",
			AnnualSalary:      42000,
			HiredOn:           time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
			State:             hrdata.StatusActive,
			Rating:            4,
			TrainingHours:     12,
			RemoteDaysPerWeek: 3,
			ContractRate:      0.8,
			Gender:            "F",
			BornOn:            &born,
			AbsenceDays:       4,
			OnboardingDays:    21,
			TasksAssigned:     30,
			TasksDone:         27,
			DocsRequired:      6,
			DocsProvided:      6,
		}
	}

	normalizeOne := func(raw hrdata.RawEmployee) hrdata.Employee {
		data := hrdata.Normalize(&hrdata.RawDataset{Employees: []hrdata.RawEmployee{raw}})
		Expect(data.Employees).To(HaveLen(1))
		return data.Employees[0]
	}

	It("should split the full name and derive an accent-free email", func() {
		e := normalizeOne(rawEmployee())
		Expect(e.FirstName).To(Equal("Émilie"))
		Expect(e.LastName).To(Equal("Le Goff"))
		Expect(e.Email).To(Equal("emilie.le-goff@hrpulse.example"))
	})

	It("should carry the analytics source fields through unchanged", func() {
		e := normalizeOne(rawEmployee())
		Expect(e.Department).To(Equal(hrdata.DepartmentIT))
		Expect(e.Agency).To(Equal(hrdata.AgencyLyon))
		Expect(e.Salary).To(Equal(42000))
		Expect(e.AbsenceDays).To(Equal(4))
		Expect(e.OnboardingDays).To(Equal(21))
		Expect(e.TasksAssigned).To(Equal(30))
		Expect(e.TasksCompleted).To(Equal(27))
		Expect(e.DocumentsRequired).To(Equal(6))
		Expect(e.DocumentsProvided).To(Equal(6))
	})

	It("should mark two or more remote days per week as remote work", func() {
		raw := rawEmployee()
		raw.RemoteDaysPerWeek = hrdata.RemoteWorkThreshold
		Expect(normalizeOne(raw).RemoteWork).To(BeTrue())

		raw.RemoteDaysPerWeek = hrdata.RemoteWorkThreshold - 1
		Expect(normalizeOne(raw).RemoteWork).To(BeFalse())
	})

	It("should fall back to full time for an unknown working time rate", func() {
		raw := rawEmployee()
		raw.ContractRate = 0.73
		Expect(normalizeOne(raw).WorkingTimeRate).To(Equal(1.0))
	})

	It("should default a missing site to Paris", func() {
		raw := rawEmployee()
		raw.Site = ""
		Expect(normalizeOne(raw).Agency).To(Equal(hrdata.AgencyParis))
	})

	It("should tolerate a single-word name", func() {
		raw := rawEmployee()
		raw.FullName = "Madonna"
		e := normalizeOne(raw)
		Expect(e.FirstName).To(Equal("Madonna"))
		Expect(e.LastName).To(Equal("Madonna"))
	})

	It("should map expense fields onto the normalized shape", func() {
		spent := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
		data := hrdata.Normalize(&hrdata.RawDataset{Expenses: []hrdata.RawExpense{{
			ID:       "exp-1",
			Category: hrdata.ExpenseRepas,
			Amount:   45.5,
			SpentOn:  spent,
			Label:    "Déjeuner d'équipe - Repas",
		}}})
		Expect(data.Expenses).To(HaveLen(1))
		x := data.Expenses[0]
		Expect(x.Category).To(Equal(hrdata.ExpenseRepas))
		Expect(x.Amount).To(Equal(45.5))
		Expect(x.Date).To(Equal(spent))
		Expect(x.Description).To(Equal("Déjeuner d'équipe - Repas"))
	})
})
