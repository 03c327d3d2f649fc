package production

import (
	"time"

	"github.com/ceramiqa/quality-management/internal/core/common/validation"
)

// CreateLotDTO is the request payload for recording a production lot.
type CreateLotDTO struct {
	LotNumber      string    `json:"lot_number"`
	ProductType    string    `json:"product_type"`
	ProductionDate time.Time `json:"production_date"`
	Quantity       int64     `json:"quantity"`
	Status         string    `json:"status,omitempty"`
}

func (dto CreateLotDTO) Validate() error {
	return validation.New().
		Require("lot_number", dto.LotNumber).
		Require("product_type", dto.ProductType).
		RequireTime("production_date", dto.ProductionDate).
		Positive("quantity", float64(dto.Quantity)).
		Err()
}
