package campaign

import (
	"time"

	"github.com/ceramiqa/quality-management/internal"
)

// Campaign groups a series of planned quality tests under a shared goal,
// for example re-certifying a product line over a quarter.
type Campaign struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	CampaignName string    `json:"campaign_name" gorm:"column:campaign_name;not null"`
	Description  string    `json:"description,omitempty" gorm:"column:description"`
	StartDate    time.Time `json:"start_date" gorm:"column:start_date;type:date"`
	EndDate      time.Time `json:"end_date" gorm:"column:end_date;type:date"`
	Status       string    `json:"status" gorm:"column:status;default:Planning"`
	CreatedBy    int64     `json:"created_by" gorm:"column:created_by;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Campaign) TableName() string {
	return "testing_campaigns"
}

const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

var ErrCampaignNotFound error = internal.NewNotFoundError("testing campaign not found", internal.ErrCodeRecordNotFound)

func AllStatuses() []string {
	return []string{StatusPlanning, StatusInProgress, StatusCompleted}
}
