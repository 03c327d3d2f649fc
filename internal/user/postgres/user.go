package postgres

import (
	"time"

	userDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll() ([]*userDatamodel.User, error) {
	var accounts []*userDatamodel.User
	err := r.db.Order("created_at DESC").Find(&accounts).Error
	return accounts, err
}

func (r *UserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	var account userDatamodel.User
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *UserRepository) UpdateRole(id int64, role string) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       role,
			"updated_at": time.Now(),
		}).Error
}
