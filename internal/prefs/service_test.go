package prefs_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/hrpulse/hrpulse/internal/analytics"
	preferenceDatamodel "github.com/hrpulse/hrpulse/internal/core/datamodel/preference"
	"github.com/hrpulse/hrpulse/internal/core/events"
	"github.com/hrpulse/hrpulse/internal/hrdata"
	"github.com/hrpulse/hrpulse/internal/prefs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPrefsService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Preferences Service Suite")
}

// MockRepository implements prefs.RepositoryAPI for testing
type MockRepository struct {
	values     map[string]string
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{values: make(map[string]string)}
}

func (m *MockRepository) Get(key string) (*preferenceDatamodel.Preference, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	value, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return &preferenceDatamodel.Preference{Key: key, Value: value}, nil
}

func (m *MockRepository) Set(key, value string) error {
	if m.shouldFail {
		return m.failError
	}
	m.values[key] = value
	return nil
}

var _ = Describe("Preferences Service", func() {
	var (
		mockRepo *MockRepository
		bus      *events.EventBus
		service  *prefs.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(logger)
		service = prefs.NewService(mockRepo, bus, logger)
	})

	Describe("GetPreferences", func() {
		It("should return the documented defaults on a fresh store", func() {
			p, err := service.GetPreferences()
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Filters.Period).To(Equal(analytics.PeriodYear))
			Expect(p.AIEnabled).To(BeFalse())
		})

		It("should fall back to defaults for unreadable stored filters", func() {
			mockRepo.values[prefs.KeyFilters] = "not-json"
			p, err := service.GetPreferences()
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Filters.Period).To(Equal(analytics.PeriodYear))
		})

		It("should discard stored filters carrying an unknown period", func() {
			mockRepo.values[prefs.KeyFilters] = `{"period":"decade"}`
			p, err := service.GetPreferences()
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Filters.Period).To(Equal(analytics.PeriodYear))
		})
	})

	Describe("UpdatePreferences", func() {
		It("should persist filters and read them back", func() {
			dept := hrdata.DepartmentIT
			filters := analytics.FilterOptions{
				Period:      analytics.PeriodQuarter,
				Department:  &dept,
				CompareWith: analytics.ComparePrevious,
			}

			updated, err := service.UpdatePreferences(prefs.UpdatePreferencesDTO{Filters: &filters})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Filters.Period).To(Equal(analytics.PeriodQuarter))

			reloaded, err := service.GetPreferences()
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Filters.Period).To(Equal(analytics.PeriodQuarter))
			Expect(reloaded.Filters.Department).NotTo(BeNil())
			Expect(*reloaded.Filters.Department).To(Equal(hrdata.DepartmentIT))
			Expect(reloaded.Filters.CompareWith).To(Equal(analytics.ComparePrevious))
		})

		It("should persist the AI toggle independently of filters", func() {
			enabled := true
			_, err := service.UpdatePreferences(prefs.UpdatePreferencesDTO{AIEnabled: &enabled})
			Expect(err).NotTo(HaveOccurred())

			on, err := service.AIInsightEnabled()
			Expect(err).NotTo(HaveOccurred())
			Expect(on).To(BeTrue())

			reloaded, _ := service.GetPreferences()
			Expect(reloaded.Filters.Period).To(Equal(analytics.PeriodYear))
		})

		It("should reject invalid filters without persisting", func() {
			filters := analytics.FilterOptions{Period: "decade"}
			_, err := service.UpdatePreferences(prefs.UpdatePreferencesDTO{Filters: &filters})
			Expect(err).To(HaveOccurred())
			Expect(mockRepo.values).NotTo(HaveKey(prefs.KeyFilters))
		})

		It("should publish the change synchronously", func() {
			var seen []string
			bus.Subscribe(prefs.EventPreferencesUpdated, func(ctx context.Context, event events.Event) error {
				seen = append(seen, event.EventType())
				return nil
			})

			enabled := true
			_, err := service.UpdatePreferences(prefs.UpdatePreferencesDTO{AIEnabled: &enabled})
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal([]string{prefs.EventPreferencesUpdated}))
		})
	})
})
