package preference

import "time"

// Preference is one persisted dashboard setting, a key/value row mirroring
// the browser localStorage entries the dashboard used to rely on. Values
// are JSON documents.
type Preference struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Preference) TableName() string {
	return "preferences"
}
