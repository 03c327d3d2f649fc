package quality

import (
	"time"

	"github.com/ceramiqa/quality-management/internal"
	testDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/quality"
)

// QualityTest holds the measured dimensions and inspection verdict for a
// sample drawn from a production lot. The status is entered by the inspector;
// the system never derives it from the measurements.
type QualityTest struct {
	ID                     int64     `json:"id"`
	LotID                  int64     `json:"lot_id"`
	OperatorID             int64     `json:"operator_id"`
	TestDate               time.Time `json:"test_date"`
	LengthMm               float64   `json:"length_mm"`
	WidthMm                float64   `json:"width_mm"`
	ThicknessMm            float64   `json:"thickness_mm"`
	WaterAbsorptionPercent float64   `json:"water_absorption_percent"`
	BreakResistanceN       float64   `json:"break_resistance_n"`
	DefectType             string    `json:"defect_type"`
	DefectCount            int       `json:"defect_count"`
	Status                 string    `json:"status"`
	Notes                  string    `json:"notes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Inspection verdicts. Only StatusConforming counts toward the dashboard
// quality rate.
const (
	StatusConforming    = "Conforme"
	StatusNonConforming = "Non-conforme"
	StatusInProgress    = "En cours"
)

const (
	DefectNone      = "none"
	DefectCrack     = "crack"
	DefectGlaze     = "glaze"
	DefectDimension = "dimension"
	DefectColor     = "color"
	DefectWarping   = "warping"
)

var (
	ErrTestNotFound error = internal.NewNotFoundError("quality test not found", internal.ErrCodeTestNotFound)
	ErrLotNotFound  error = internal.NewNotFoundError("production lot not found", internal.ErrCodeLotNotFound)
)

func AllStatuses() []string {
	return []string{StatusConforming, StatusNonConforming, StatusInProgress}
}

func AllDefectTypes() []string {
	return []string{DefectNone, DefectCrack, DefectGlaze, DefectDimension, DefectColor, DefectWarping}
}

func FromDataModel(t *testDatamodel.Test) *QualityTest {
	return &QualityTest{
		ID:                     t.ID,
		LotID:                  t.LotID,
		OperatorID:             t.OperatorID,
		TestDate:               t.TestDate,
		LengthMm:               t.LengthMm,
		WidthMm:                t.WidthMm,
		ThicknessMm:            t.ThicknessMm,
		WaterAbsorptionPercent: t.WaterAbsorptionPercent,
		BreakResistanceN:       t.BreakResistanceN,
		DefectType:             t.DefectType,
		DefectCount:            t.DefectCount,
		Status:                 t.Status,
		Notes:                  t.Notes,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}

func FromDataModelSlice(tests []*testDatamodel.Test) []*QualityTest {
	result := make([]*QualityTest, len(tests))
	for i, t := range tests {
		result[i] = FromDataModel(t)
	}
	return result
}
