package energy

import (
	"time"

	"github.com/ceramiqa/quality-management/internal/core/common/validation"
)

type CreateRecordDTO struct {
	EnergySource   string    `json:"energy_source"`
	ConsumptionKwh float64   `json:"consumption_kwh"`
	CostAmount     float64   `json:"cost_amount"`
	RecordedAt     time.Time `json:"recorded_at"`
	EquipmentName  string    `json:"equipment_name,omitempty"`
	Department     string    `json:"department,omitempty"`
}

func (dto CreateRecordDTO) Validate() error {
	return validation.New().
		Require("energy_source", dto.EnergySource).
		OneOf("energy_source", dto.EnergySource, AllSources()...).
		Positive("consumption_kwh", dto.ConsumptionKwh).
		NonNegative("cost_amount", dto.CostAmount).
		RequireTime("recorded_at", dto.RecordedAt).
		Err()
}
