package campaign

import (
	"time"

	"github.com/ceramiqa/quality-management/internal/core/common/validation"
)

type CampaignDTO struct {
	CampaignName string    `json:"campaign_name"`
	Description  string    `json:"description,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status,omitempty"`
}

func (dto CampaignDTO) Validate() error {
	return validation.New().
		Require("campaign_name", dto.CampaignName).
		RequireTime("start_date", dto.StartDate).
		OneOf("status", dto.Status, AllStatuses()...).
		Check(dto.EndDate.IsZero() || !dto.EndDate.Before(dto.StartDate),
			"end_date must not be before start_date").
		Err()
}
