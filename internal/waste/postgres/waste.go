package postgres

import (
	"github.com/ceramiqa/quality-management/internal/waste"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) waste.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*waste.Record, error) {
	var records []*waste.Record
	err := r.db.Order("recorded_date DESC, id DESC").Find(&records).Error
	return records, err
}

func (r *Repository) Create(record *waste.Record) error {
	return r.db.Create(record).Error
}
