package quality

import "time"

type Test struct {
	ID                     int64     `gorm:"primaryKey"`
	LotID                  int64     `gorm:"column:lot_id;not null;index"`
	OperatorID             int64     `gorm:"column:operator_id;not null"`
	TestDate               time.Time `gorm:"column:test_date;type:date"`
	LengthMm               float64   `gorm:"column:length_mm"`
	WidthMm                float64   `gorm:"column:width_mm"`
	ThicknessMm            float64   `gorm:"column:thickness_mm"`
	WaterAbsorptionPercent float64   `gorm:"column:water_absorption_percent"`
	BreakResistanceN       float64   `gorm:"column:break_resistance_n"`
	DefectType             string    `gorm:"column:defect_type;default:none"`
	DefectCount            int       `gorm:"column:defect_count;default:0"`
	Status                 string    `gorm:"column:status;not null"`
	Notes                  string    `gorm:"column:notes"`
	CreatedAt              time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt              time.Time `gorm:"column:updated_at;default:now()"`
}

func (Test) TableName() string {
	return "quality_tests"
}
