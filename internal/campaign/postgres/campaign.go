package postgres

import (
	"github.com/ceramiqa/quality-management/internal/campaign"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) campaign.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*campaign.Campaign, error) {
	var campaigns []*campaign.Campaign
	err := r.db.Order("start_date DESC, id DESC").Find(&campaigns).Error
	return campaigns, err
}

func (r *Repository) GetByID(id int64) (*campaign.Campaign, error) {
	var c campaign.Campaign
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, campaign.ErrCampaignNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(c *campaign.Campaign) error {
	return r.db.Create(c).Error
}

func (r *Repository) Update(c *campaign.Campaign) error {
	result := r.db.Model(&campaign.Campaign{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"campaign_name": c.CampaignName,
		"description":   c.Description,
		"start_date":    c.StartDate,
		"end_date":      c.EndDate,
		"status":        c.Status,
		"updated_at":    c.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return campaign.ErrCampaignNotFound
	}
	return nil
}
