package postgres

import (
	"github.com/ceramiqa/quality-management/internal/energy"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) energy.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*energy.Record, error) {
	var records []*energy.Record
	err := r.db.Order("recorded_at DESC, id DESC").Find(&records).Error
	return records, err
}

func (r *Repository) Create(record *energy.Record) error {
	return r.db.Create(record).Error
}
