package board

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrpulse/hrpulse/internal"
	"github.com/hrpulse/hrpulse/internal/analytics"
	boardDatamodel "github.com/hrpulse/hrpulse/internal/core/datamodel/board"
)

// RepositoryAPI defines the data access methods for boards.
type RepositoryAPI interface {
	GetAll() ([]*boardDatamodel.Board, error)
	GetByID(id string) (*boardDatamodel.Board, error)
	Create(board *boardDatamodel.Board) error
	Update(board *boardDatamodel.Board) error
	Delete(id string) error
	// SetActive marks one board active and clears the flag everywhere
	// else in a single transaction.
	SetActive(id string) error
	GetActive() (*boardDatamodel.Board, error)
	Count() (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// EnsureDefaults seeds the hard-coded default boards when the collection
// is empty, so a fresh install always has an active view.
func (s *Service) EnsureDefaults() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	defaults := []*Board{
		{
			ID:          uuid.NewString(),
			Name:        "Vue d'ensemble",
			Description: "Tous les indicateurs RH suivis",
			KPIs:        analytics.KPIIDs(),
			KPIOrder:    analytics.KPIIDs(),
			IsDefault:   true,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Effectifs et coûts",
			Description: "Suivi des effectifs et des dépenses RH",
			KPIs:        []string{analytics.KPIHeadcount, analytics.KPIWorkforceUtilization, analytics.KPIHRExpenses, analytics.KPITurnover},
			KPIOrder:    []string{analytics.KPIHeadcount, analytics.KPIWorkforceUtilization, analytics.KPIHRExpenses, analytics.KPITurnover},
			IsDefault:   true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, b := range defaults {
		if err := s.repo.Create(ToDataModel(b)); err != nil {
			s.logger.Error("failed to seed default board", "error", err, "board", b.Name)
			return err
		}
	}
	s.logger.Info("seeded default boards", "count", len(defaults))
	return nil
}

func (s *Service) ListBoards() ([]*Board, error) {
	models, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list boards", "error", err)
		return nil, err
	}
	boards := make([]*Board, 0, len(models))
	for _, m := range models {
		boards = append(boards, FromDataModel(m))
	}
	return boards, nil
}

func (s *Service) GetBoard(id string) (*Board, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.ErrBoardNotFound
	}
	return FromDataModel(m), nil
}

func (s *Service) CreateBoard(dto CreateBoardDTO) (*Board, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &Board{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		KPIs:        dto.KPIs,
		KPIOrder:    append([]string{}, dto.KPIs...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ToDataModel(b)); err != nil {
		s.logger.Error("failed to create board", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("board created", "board_id", b.ID, "name", b.Name, "kpis", len(b.KPIs))
	return b, nil
}

func (s *Service) UpdateBoard(id string, dto UpdateBoardDTO) (*Board, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	b, err := s.GetBoard(id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil {
		b.Name = *dto.Name
	}
	if dto.Description != nil {
		b.Description = *dto.Description
	}
	b.UpdatedAt = time.Now()
	if err := s.repo.Update(ToDataModel(b)); err != nil {
		s.logger.Error("failed to update board", "error", err, "board_id", id)
		return nil, err
	}
	return b, nil
}

// DeleteBoard removes a board. When the deleted board was active, another
// existing board becomes active, defaults first; the active board is nil
// only when the collection ends up empty.
func (s *Service) DeleteBoard(id string) error {
	b, err := s.GetBoard(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete board", "error", err, "board_id", id)
		return err
	}
	s.logger.Info("board deleted", "board_id", id, "name", b.Name)

	if !b.IsActive {
		return nil
	}

	remaining, err := s.ListBoards()
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	fallback := remaining[0]
	for _, candidate := range remaining {
		if candidate.IsDefault {
			fallback = candidate
			break
		}
	}
	s.logger.Info("active board deleted, falling back", "board_id", fallback.ID, "name", fallback.Name)
	return s.repo.SetActive(fallback.ID)
}

func (s *Service) ReorderBoard(id string, dto ReorderDTO) (*Board, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	b, err := s.GetBoard(id)
	if err != nil {
		return nil, err
	}
	b.Reorder(dto.KPIOrder)
	if err := s.repo.Update(ToDataModel(b)); err != nil {
		s.logger.Error("failed to reorder board", "error", err, "board_id", id)
		return nil, err
	}
	return b, nil
}

func (s *Service) AddKPIToBoard(id, kpiID string) (*Board, error) {
	if !analytics.KnownKPI(kpiID) {
		return nil, internal.ErrUnknownKPI
	}
	b, err := s.GetBoard(id)
	if err != nil {
		return nil, err
	}
	if b.HasKPI(kpiID) {
		return nil, internal.NewConflictError("KPI already on board", internal.ErrCodeDuplicateKPI)
	}
	b.AddKPI(kpiID)
	if err := s.repo.Update(ToDataModel(b)); err != nil {
		s.logger.Error("failed to add KPI to board", "error", err, "board_id", id, "kpi_id", kpiID)
		return nil, err
	}
	return b, nil
}

func (s *Service) RemoveKPIFromBoard(id, kpiID string) (*Board, error) {
	b, err := s.GetBoard(id)
	if err != nil {
		return nil, err
	}
	b.RemoveKPI(kpiID)
	if err := s.repo.Update(ToDataModel(b)); err != nil {
		s.logger.Error("failed to remove KPI from board", "error", err, "board_id", id, "kpi_id", kpiID)
		return nil, err
	}
	return b, nil
}

func (s *Service) ActivateBoard(id string) (*Board, error) {
	if _, err := s.GetBoard(id); err != nil {
		return nil, err
	}
	if err := s.repo.SetActive(id); err != nil {
		s.logger.Error("failed to activate board", "error", err, "board_id", id)
		return nil, err
	}
	return s.GetBoard(id)
}

// ActiveBoard returns the currently active board, or nil when the
// collection is empty.
func (s *Service) ActiveBoard() (*Board, error) {
	m, err := s.repo.GetActive()
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return FromDataModel(m), nil
}
