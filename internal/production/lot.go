package production

import (
	"time"

	"github.com/ceramiqa/quality-management/internal"
	lotDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/production"
)

// ProductionLot is one batch of manufactured ceramic units. Its quantity
// feeds the dashboard production total; quality tests reference it by id.
type ProductionLot struct {
	ID             int64     `json:"id"`
	LotNumber      string    `json:"lot_number"`
	ProductType    string    `json:"product_type"`
	ProductionDate time.Time `json:"production_date"`
	Quantity       int64     `json:"quantity"`
	Status         string    `json:"status"`
	OperatorID     int64     `json:"operator_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const (
	LotStatusInProgress = "En cours"
	LotStatusCompleted  = "Terminé"
	LotStatusRejected   = "Rejeté"
)

var ErrLotNotFound error = internal.NewNotFoundError("production lot not found", internal.ErrCodeLotNotFound)

func ToDataModel(l *ProductionLot) *lotDatamodel.Lot {
	return &lotDatamodel.Lot{
		ID:             l.ID,
		LotNumber:      l.LotNumber,
		ProductType:    l.ProductType,
		ProductionDate: l.ProductionDate,
		Quantity:       l.Quantity,
		Status:         l.Status,
		OperatorID:     l.OperatorID,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromDataModel(l *lotDatamodel.Lot) *ProductionLot {
	return &ProductionLot{
		ID:             l.ID,
		LotNumber:      l.LotNumber,
		ProductType:    l.ProductType,
		ProductionDate: l.ProductionDate,
		Quantity:       l.Quantity,
		Status:         l.Status,
		OperatorID:     l.OperatorID,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromDataModelSlice(lots []*lotDatamodel.Lot) []*ProductionLot {
	result := make([]*ProductionLot, len(lots))
	for i, l := range lots {
		result[i] = FromDataModel(l)
	}
	return result
}
