package production

import "time"

type Lot struct {
	ID             int64     `gorm:"primaryKey"`
	LotNumber      string    `gorm:"column:lot_number;uniqueIndex;not null"`
	ProductType    string    `gorm:"column:product_type;not null"`
	ProductionDate time.Time `gorm:"column:production_date;type:date"`
	Quantity       int64     `gorm:"column:quantity;not null"`
	Status         string    `gorm:"column:status;default:En cours"`
	OperatorID     int64     `gorm:"column:operator_id;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `gorm:"column:updated_at;default:now()"`
}

func (Lot) TableName() string {
	return "production_lots"
}
