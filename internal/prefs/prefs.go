package prefs

import (
	"github.com/hrpulse/hrpulse/internal/analytics"
)

// Storage keys mirror the two browser localStorage entries the dashboard
// historically relied on.
const (
	KeyFilters   = "hr-dashboard:filters"
	KeyAIEnabled = "hr-dashboard:ai-enabled"
)

// EventPreferencesUpdated is published after every persisted change.
const EventPreferencesUpdated = "preferences.updated"

// DashboardPreferences is the per-install dashboard state that survives
// restarts: the active filter selection and the AI insight toggle.
type DashboardPreferences struct {
	Filters   analytics.FilterOptions `json:"filters"`
	AIEnabled bool                    `json:"ai_enabled"`
}

// Defaults returns the documented startup state: a year period and the AI
// insight toggle off.
func Defaults() DashboardPreferences {
	return DashboardPreferences{
		Filters:   analytics.FilterOptions{Period: analytics.PeriodYear},
		AIEnabled: false,
	}
}

// UpdatePreferencesDTO is the request payload for the preferences
// endpoint; nil fields keep the stored value.
type UpdatePreferencesDTO struct {
	Filters   *analytics.FilterOptions `json:"filters,omitempty"`
	AIEnabled *bool                    `json:"ai_enabled,omitempty"`
}

func (dto UpdatePreferencesDTO) Validate() error {
	if dto.Filters != nil {
		if err := dto.Filters.Validate(); err != nil {
			return err
		}
	}
	return nil
}
