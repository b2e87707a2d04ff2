package board

import (
	"encoding/json"
	"time"

	boardDatamodel "github.com/hrpulse/hrpulse/internal/core/datamodel/board"
)

// Board is a named, ordered subset of KPI identifiers defining one
// dashboard view. KPIOrder may reference ids outside KPIs; the
// presentation layer intersects the two.
type Board struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	KPIs        []string  `json:"kpis"`
	KPIOrder    []string  `json:"kpi_order"`
	IsDefault   bool      `json:"is_default"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *Board) HasKPI(id string) bool {
	for _, kpi := range b.KPIs {
		if kpi == id {
			return true
		}
	}
	return false
}

func (b *Board) AddKPI(id string) {
	if b.HasKPI(id) {
		return
	}
	b.KPIs = append(b.KPIs, id)
	b.KPIOrder = append(b.KPIOrder, id)
	b.UpdatedAt = time.Now()
}

func (b *Board) RemoveKPI(id string) {
	b.KPIs = removeString(b.KPIs, id)
	b.KPIOrder = removeString(b.KPIOrder, id)
	b.UpdatedAt = time.Now()
}

func (b *Board) Reorder(order []string) {
	b.KPIOrder = order
	b.UpdatedAt = time.Now()
}

func removeString(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func ToDataModel(b *Board) *boardDatamodel.Board {
	kpis, _ := json.Marshal(b.KPIs)
	order, _ := json.Marshal(b.KPIOrder)
	return &boardDatamodel.Board{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		KPIs:        string(kpis),
		KPIOrder:    string(order),
		IsDefault:   b.IsDefault,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromDataModel(m *boardDatamodel.Board) *Board {
	b := &Board{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		KPIs:        []string{},
		KPIOrder:    []string{},
		IsDefault:   m.IsDefault,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	_ = json.Unmarshal([]byte(m.KPIs), &b.KPIs)
	_ = json.Unmarshal([]byte(m.KPIOrder), &b.KPIOrder)
	return b
}
