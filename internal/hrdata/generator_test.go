package hrdata_test

import (
	"testing"
	"time"

	"github.com/hrpulse/hrpulse/internal/hrdata"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHRData(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "HRData Suite")
}

var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newSeededDataset(seed int64) *hrdata.RawDataset {
	gen := hrdata.NewGenerator(
		hrdata.WithSeed(seed),
		hrdata.WithClock(func() time.Time { return fixedNow }),
	)
	return gen.Generate()
}

var _ = Describe("Generator", func() {
	var ds *hrdata.RawDataset

	BeforeEach(func() {
		ds = newSeededDataset(42)
	})

	It("should produce the fixed dataset size", func() {
		Expect(ds.Employees).To(HaveLen(hrdata.EmployeeCount))
		Expect(ds.Expenses).To(HaveLen(hrdata.ExpenseCount))
	})

	It("should be reproducible for the same seed", func() {
		other := newSeededDataset(42)
		Expect(other.Employees[0].FullName).To(Equal(ds.Employees[0].FullName))
		Expect(other.Employees[0].HiredOn).To(Equal(ds.Employees[0].HiredOn))
		Expect(other.Employees[0].AnnualSalary).To(Equal(ds.Employees[0].AnnualSalary))
		Expect(other.Expenses[0].Amount).To(Equal(ds.Expenses[0].Amount))
	})

	It("should differ across seeds", func() {
		other := newSeededDataset(43)
		same := 0
		for i := range ds.Employees {
			if ds.Employees[i].FullName == other.Employees[i].FullName &&
				ds.Employees[i].HiredOn.Equal(other.Employees[i].HiredOn) {
				same++
			}
		}
		Expect(same).To(BeNumerically("<", hrdata.EmployeeCount))
	})

	It("should set a termination date exactly for terminated employees", func() {
		for _, e := range ds.Employees {
			if e.State == hrdata.StatusTerminated {
				Expect(e.LeftOn).NotTo(BeNil())
				Expect(e.LeftOn.After(e.HiredOn)).To(BeTrue())
				Expect(e.LeftOn.After(fixedNow)).To(BeFalse())
			} else {
				Expect(e.LeftOn).To(BeNil())
			}
		}
	})

	It("should keep every field inside its documented range", func() {
		for _, e := range ds.Employees {
			Expect(string(e.State)).To(BeElementOf("active", "inactive", "terminated"))
			Expect(e.ContractRate).To(BeElementOf(hrdata.WorkingTimeRates))
			Expect(e.AnnualSalary).To(And(BeNumerically(">=", 30000), BeNumerically("<=", 120000)))
			Expect(e.Rating).To(And(BeNumerically(">=", 1), BeNumerically("<=", 5)))
			Expect(e.RemoteDaysPerWeek).To(And(BeNumerically(">=", 0), BeNumerically("<=", 5)))
			Expect(e.AbsenceDays).To(And(BeNumerically(">=", 0), BeNumerically("<=", 20)))
			Expect(e.OnboardingDays).To(And(BeNumerically(">=", 10), BeNumerically("<=", 45)))
			Expect(e.TasksDone).To(BeNumerically("<=", e.TasksAssigned))
			Expect(e.TasksDone).To(BeNumerically(">=", 0))
			Expect(e.DocsProvided).To(BeNumerically("<=", e.DocsRequired))
			Expect(e.HiredOn.Before(fixedNow)).To(BeTrue())
			Expect(e.BornOn).NotTo(BeNil())
		}
	})

	It("should weight statuses towards active", func() {
		active := 0
		for _, e := range ds.Employees {
			if e.State == hrdata.StatusActive {
				active++
			}
		}
		// 85% expected; allow generous slack for a 250-record sample
		Expect(active).To(BeNumerically(">", hrdata.EmployeeCount/2))
	})

	It("should keep expense amounts inside their category bucket", func() {
		bounds := map[hrdata.ExpenseCategory][2]float64{
			hrdata.ExpenseFormation:   {500, 5000},
			hrdata.ExpenseRecrutement: {200, 3000},
			hrdata.ExpenseMateriel:    {100, 2000},
			hrdata.ExpenseLogiciel:    {50, 1500},
			hrdata.ExpenseRepas:       {10, 100},
			hrdata.ExpenseDeplacement: {50, 800},
		}
		for _, x := range ds.Expenses {
			b, ok := bounds[x.Category]
			Expect(ok).To(BeTrue(), "unexpected category %s", x.Category)
			Expect(x.Amount).To(And(BeNumerically(">=", b[0]), BeNumerically("<=", b[1])))
			Expect(x.SpentOn.After(fixedNow)).To(BeFalse())
			Expect(x.SpentOn.After(fixedNow.AddDate(-1, 0, -1))).To(BeTrue())
			Expect(x.Label).NotTo(BeEmpty())
		}
	})
})
