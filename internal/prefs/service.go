package prefs

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/hrpulse/hrpulse/internal/core/events"
	preferenceDatamodel "github.com/hrpulse/hrpulse/internal/core/datamodel/preference"
)

// RepositoryAPI defines the key/value access for dashboard preferences.
type RepositoryAPI interface {
	Get(key string) (*preferenceDatamodel.Preference, error)
	Set(key, value string) error
}

type Service struct {
	repo   RepositoryAPI
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{repo: repo, bus: bus, logger: logger}
}

// GetPreferences loads the persisted state, falling back to the documented
// defaults for any missing or unreadable key.
func (s *Service) GetPreferences() (DashboardPreferences, error) {
	out := Defaults()

	if row, err := s.repo.Get(KeyFilters); err != nil {
		return out, err
	} else if row != nil {
		if err := json.Unmarshal([]byte(row.Value), &out.Filters); err != nil {
			s.logger.Warn("stored filters unreadable, using defaults", "error", err)
			out.Filters = Defaults().Filters
		}
	}

	if row, err := s.repo.Get(KeyAIEnabled); err != nil {
		return out, err
	} else if row != nil {
		enabled, err := strconv.ParseBool(row.Value)
		if err != nil {
			s.logger.Warn("stored AI flag unreadable, using default", "error", err)
		} else {
			out.AIEnabled = enabled
		}
	}

	// stored filters predating a release may carry an unknown period
	if err := out.Filters.Validate(); err != nil {
		out.Filters = Defaults().Filters
	}

	return out, nil
}

// AIInsightEnabled reports the persisted AI narrative toggle.
func (s *Service) AIInsightEnabled() (bool, error) {
	p, err := s.GetPreferences()
	if err != nil {
		return false, err
	}
	return p.AIEnabled, nil
}

// UpdatePreferences persists the provided fields and publishes the change
// synchronously so subscribers observe it before the next computation.
func (s *Service) UpdatePreferences(dto UpdatePreferencesDTO) (DashboardPreferences, error) {
	if err := dto.Validate(); err != nil {
		return DashboardPreferences{}, err
	}

	current, err := s.GetPreferences()
	if err != nil {
		return DashboardPreferences{}, err
	}

	if dto.Filters != nil {
		encoded, err := json.Marshal(dto.Filters)
		if err != nil {
			return DashboardPreferences{}, err
		}
		if err := s.repo.Set(KeyFilters, string(encoded)); err != nil {
			s.logger.Error("failed to persist filters", "error", err)
			return DashboardPreferences{}, err
		}
		current.Filters = *dto.Filters
	}

	if dto.AIEnabled != nil {
		if err := s.repo.Set(KeyAIEnabled, strconv.FormatBool(*dto.AIEnabled)); err != nil {
			s.logger.Error("failed to persist AI flag", "error", err)
			return DashboardPreferences{}, err
		}
		current.AIEnabled = *dto.AIEnabled
	}

	if s.bus != nil {
		_ = s.bus.PublishSync(context.Background(), events.NewEvent(EventPreferencesUpdated, map[string]interface{}{
			"period":     string(current.Filters.Period),
			"ai_enabled": current.AIEnabled,
		}))
	}

	s.logger.Info("preferences updated",
		"period", current.Filters.Period,
		"ai_enabled", current.AIEnabled)
	return current, nil
}
