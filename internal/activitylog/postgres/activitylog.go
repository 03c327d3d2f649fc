package postgres

import (
	"github.com/ceramiqa/quality-management/internal/activitylog"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) activitylog.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetRecent(limit int) ([]*activitylog.Entry, error) {
	var entries []*activitylog.Entry
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *Repository) Create(entry *activitylog.Entry) error {
	return r.db.Create(entry).Error
}
