package waste

import "time"

// Record tracks a quantity of production waste and how it was disposed of.
// Disposal methods containing "Recyclage" count toward the recycling rate.
type Record struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	WasteType      string    `json:"waste_type" gorm:"column:waste_type;not null"`
	QuantityKg     float64   `json:"quantity_kg" gorm:"column:quantity_kg;not null"`
	DisposalMethod string    `json:"disposal_method" gorm:"column:disposal_method;not null"`
	CostAmount     float64   `json:"cost_amount" gorm:"column:cost_amount"`
	RecordedDate   time.Time `json:"recorded_date" gorm:"column:recorded_date;type:date"`
	ResponsibleID  int64     `json:"responsible_person_id" gorm:"column:responsible_person_id;not null"`
	Notes          string    `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Record) TableName() string {
	return "waste_records"
}

const (
	DisposalRecycling    = "Recyclage"
	DisposalLandfill     = "Enfouissement"
	DisposalIncineration = "Incinération"
	DisposalReuse        = "Réutilisation"
)
