package postgres

import (
	userDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// Repository is the gorm-backed account store. All lookups are scoped to
// active accounts: deactivated users are invisible to authentication.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*userDatamodel.User, error) {
	var account userDatamodel.User
	err := r.db.Where("email = ? AND is_active = ?", email, true).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetByID(id int64) (*userDatamodel.User, error) {
	var account userDatamodel.User
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Create(account *userDatamodel.User) error {
	return r.db.Create(account).Error
}
