package postgres

import (
	lotDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/production"
	"github.com/ceramiqa/quality-management/internal/production"
	"gorm.io/gorm"
)

type LotRepository struct {
	db *gorm.DB
}

func NewLotRepository(db *gorm.DB) production.Repository {
	return &LotRepository{db: db}
}

func (r *LotRepository) GetAll() ([]*lotDatamodel.Lot, error) {
	var lots []*lotDatamodel.Lot
	err := r.db.Order("production_date DESC, id DESC").Find(&lots).Error
	return lots, err
}

func (r *LotRepository) GetByID(id int64) (*lotDatamodel.Lot, error) {
	var lot lotDatamodel.Lot
	err := r.db.Where("id = ?", id).First(&lot).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, production.ErrLotNotFound
		}
		return nil, err
	}
	return &lot, nil
}

func (r *LotRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&lotDatamodel.Lot{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *LotRepository) Create(lot *lotDatamodel.Lot) error {
	return r.db.Create(lot).Error
}
