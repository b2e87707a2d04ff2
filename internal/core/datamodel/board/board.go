package board

import "time"

// Board is the persisted dashboard view definition. KPI membership and
// ordering are stored as JSON-encoded arrays of KPI identifiers.
type Board struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	KPIs        string    `json:"kpis" gorm:"column:kpis;not null"`
	KPIOrder    string    `json:"kpi_order" gorm:"column:kpi_order;not null"`
	IsDefault   bool      `json:"is_default" gorm:"column:is_default;default:false"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Board) TableName() string {
	return "boards"
}
