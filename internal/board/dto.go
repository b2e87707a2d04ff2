package board

import (
	"github.com/hrpulse/hrpulse/internal"
	"github.com/hrpulse/hrpulse/internal/analytics"
)

// CreateBoardDTO is the request payload for creating a board.
type CreateBoardDTO struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	KPIs        []string `json:"kpis"`
}

func (dto CreateBoardDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("board name is required", internal.ErrCodeInvalidBoard)
	}
	for _, id := range dto.KPIs {
		if !analytics.KnownKPI(id) {
			return internal.NewValidationError("unknown KPI identifier: "+id, internal.ErrCodeUnknownKPI)
		}
	}
	return nil
}

// UpdateBoardDTO carries the mutable board attributes.
type UpdateBoardDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (dto UpdateBoardDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return internal.NewValidationError("board name cannot be empty", internal.ErrCodeInvalidBoard)
	}
	return nil
}

// ReorderDTO is the request payload for drag-to-reorder persistence. The
// order may be a superset or subset of the board's KPI membership.
type ReorderDTO struct {
	KPIOrder []string `json:"kpi_order"`
}

func (dto ReorderDTO) Validate() error {
	if len(dto.KPIOrder) == 0 {
		return internal.NewValidationError("kpi_order is required", internal.ErrCodeInvalidBoard)
	}
	return nil
}
