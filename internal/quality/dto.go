package quality

import (
	"time"

	"github.com/ceramiqa/quality-management/internal/core/common/validation"
)

// TestDTO carries the full record for both create and update; updates replace
// every mutable field.
type TestDTO struct {
	LotID                  int64     `json:"lot_id"`
	TestDate               time.Time `json:"test_date"`
	LengthMm               float64   `json:"length_mm"`
	WidthMm                float64   `json:"width_mm"`
	ThicknessMm            float64   `json:"thickness_mm"`
	WaterAbsorptionPercent float64   `json:"water_absorption_percent"`
	BreakResistanceN       float64   `json:"break_resistance_n"`
	DefectType             string    `json:"defect_type,omitempty"`
	DefectCount            int       `json:"defect_count"`
	Status                 string    `json:"status"`
	Notes                  string    `json:"notes,omitempty"`
}

func (dto TestDTO) Validate() error {
	return validation.New().
		RequireID("lot_id", dto.LotID).
		RequireTime("test_date", dto.TestDate).
		NonNegative("length_mm", dto.LengthMm).
		NonNegative("width_mm", dto.WidthMm).
		NonNegative("thickness_mm", dto.ThicknessMm).
		NonNegative("water_absorption_percent", dto.WaterAbsorptionPercent).
		NonNegative("break_resistance_n", dto.BreakResistanceN).
		NonNegative("defect_count", float64(dto.DefectCount)).
		Require("status", dto.Status).
		OneOf("status", dto.Status, AllStatuses()...).
		OneOf("defect_type", dto.DefectType, AllDefectTypes()...).
		Err()
}
