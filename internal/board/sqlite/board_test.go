package sqlite_test

import (
	"testing"
	"time"

	"github.com/hrpulse/hrpulse/internal/board"
	boardSqlite "github.com/hrpulse/hrpulse/internal/board/sqlite"
	boardDatamodel "github.com/hrpulse/hrpulse/internal/core/datamodel/board"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestBoardRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Board Repository Suite")
}

var _ = Describe("Board Repository", func() {
	var (
		db   *gorm.DB
		repo board.RepositoryAPI
	)

	newBoard := func(id, name string, createdAt time.Time) *boardDatamodel.Board {
		return &boardDatamodel.Board{
			ID:        id,
			Name:      name,
			KPIs:      `["headcount","turnover"]`,
			KPIOrder:  `["headcount","turnover"]`,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&boardDatamodel.Board{})).To(Succeed())

		repo = boardSqlite.NewBoardRepository(db)
	})

	It("should list boards by creation time", func() {
		t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		Expect(repo.Create(newBoard("b2", "second", t0.Add(time.Hour)))).To(Succeed())
		Expect(repo.Create(newBoard("b1", "first", t0))).To(Succeed())

		boards, err := repo.GetAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(boards).To(HaveLen(2))
		Expect(boards[0].ID).To(Equal("b1"))
		Expect(boards[1].ID).To(Equal("b2"))
	})

	It("should fetch a board by id and round-trip its JSON columns", func() {
		t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		Expect(repo.Create(newBoard("b1", "Vue d'ensemble", t0))).To(Succeed())

		m, err := repo.GetByID("b1")
		Expect(err).NotTo(HaveOccurred())

		domain := board.FromDataModel(m)
		Expect(domain.KPIs).To(Equal([]string{"headcount", "turnover"}))
		Expect(domain.KPIOrder).To(Equal(domain.KPIs))
	})

	It("should error on a missing id", func() {
		_, err := repo.GetByID("missing")
		Expect(err).To(HaveOccurred())
	})

	It("should persist updates", func() {
		t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		Expect(repo.Create(newBoard("b1", "before", t0))).To(Succeed())

		m, _ := repo.GetByID("b1")
		m.Name = "after"
		Expect(repo.Update(m)).To(Succeed())

		reloaded, err := repo.GetByID("b1")
		Expect(err).NotTo(HaveOccurred())
		Expect(reloaded.Name).To(Equal("after"))
	})

	It("should delete by id", func() {
		t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		Expect(repo.Create(newBoard("b1", "doomed", t0))).To(Succeed())
		Expect(repo.Delete("b1")).To(Succeed())

		count, err := repo.Count()
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})

	Describe("SetActive", func() {
		It("should keep at most one board active", func() {
			t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			Expect(repo.Create(newBoard("b1", "first", t0))).To(Succeed())
			Expect(repo.Create(newBoard("b2", "second", t0.Add(time.Hour)))).To(Succeed())

			Expect(repo.SetActive("b1")).To(Succeed())
			Expect(repo.SetActive("b2")).To(Succeed())

			active, err := repo.GetActive()
			Expect(err).NotTo(HaveOccurred())
			Expect(active).NotTo(BeNil())
			Expect(active.ID).To(Equal("b2"))

			first, _ := repo.GetByID("b1")
			Expect(first.IsActive).To(BeFalse())
		})

		It("should report nil when nothing is active", func() {
			active, err := repo.GetActive()
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(BeNil())
		})
	})
})
