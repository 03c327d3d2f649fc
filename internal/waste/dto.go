package waste

import (
	"time"

	"github.com/ceramiqa/quality-management/internal/core/common/validation"
)

type CreateRecordDTO struct {
	WasteType      string    `json:"waste_type"`
	QuantityKg     float64   `json:"quantity_kg"`
	DisposalMethod string    `json:"disposal_method"`
	CostAmount     float64   `json:"cost_amount"`
	RecordedDate   time.Time `json:"recorded_date"`
	Notes          string    `json:"notes,omitempty"`
}

func (dto CreateRecordDTO) Validate() error {
	return validation.New().
		Require("waste_type", dto.WasteType).
		Positive("quantity_kg", dto.QuantityKg).
		Require("disposal_method", dto.DisposalMethod).
		NonNegative("cost_amount", dto.CostAmount).
		RequireTime("recorded_date", dto.RecordedDate).
		Err()
}
