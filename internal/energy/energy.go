package energy

import "time"

// Record is a single energy-consumption reading. The source breakdown drives
// the dashboard distribution chart.
type Record struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	EnergySource   string    `json:"energy_source" gorm:"column:energy_source;not null"`
	ConsumptionKwh float64   `json:"consumption_kwh" gorm:"column:consumption_kwh;not null"`
	CostAmount     float64   `json:"cost_amount" gorm:"column:cost_amount"`
	RecordedAt     time.Time `json:"recorded_at" gorm:"column:recorded_at;type:date"`
	EquipmentName  string    `json:"equipment_name,omitempty" gorm:"column:equipment_name"`
	Department     string    `json:"department,omitempty" gorm:"column:department"`
	RecordedBy     int64     `json:"recorded_by" gorm:"column:recorded_by;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Record) TableName() string {
	return "energy_consumption_records"
}

const (
	SourceElectricity = "electricity"
	SourceGas         = "gas"
	SourceSolar       = "solar"
	SourceWater       = "water"
	SourceOther       = "other"
)

func AllSources() []string {
	return []string{SourceElectricity, SourceGas, SourceSolar, SourceWater, SourceOther}
}
