package sqlite

import (
	"time"

	preferenceDatamodel "github.com/hrpulse/hrpulse/internal/core/datamodel/preference"
	"github.com/hrpulse/hrpulse/internal/prefs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) prefs.RepositoryAPI {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) Get(key string) (*preferenceDatamodel.Preference, error) {
	var p preferenceDatamodel.Preference
	err := r.db.Where("key = ?", key).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PreferenceRepository) Set(key, value string) error {
	p := preferenceDatamodel.Preference{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&p).Error
}
