package sqlite

import (
	"github.com/hrpulse/hrpulse/internal/board"
	boardDatamodel "github.com/hrpulse/hrpulse/internal/core/datamodel/board"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) board.RepositoryAPI {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) GetAll() ([]*boardDatamodel.Board, error) {
	var boards []*boardDatamodel.Board
	err := r.db.Order("created_at ASC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(id string) (*boardDatamodel.Board, error) {
	var b boardDatamodel.Board
	if err := r.db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BoardRepository) Create(b *boardDatamodel.Board) error {
	return r.db.Create(b).Error
}

func (r *BoardRepository) Update(b *boardDatamodel.Board) error {
	return r.db.Save(b).Error
}

func (r *BoardRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&boardDatamodel.Board{}).Error
}

func (r *BoardRepository) SetActive(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&boardDatamodel.Board{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&boardDatamodel.Board{}).Where("id = ?", id).Update("is_active", true).Error
	})
}

func (r *BoardRepository) GetActive() (*boardDatamodel.Board, error) {
	var b boardDatamodel.Board
	err := r.db.Where("is_active = ?", true).First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BoardRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&boardDatamodel.Board{}).Count(&count).Error
	return count, err
}
