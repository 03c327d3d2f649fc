package production

import (
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	lotDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/production"
)

type Repository interface {
	GetAll() ([]*lotDatamodel.Lot, error)
	GetByID(id int64) (*lotDatamodel.Lot, error)
	Exists(id int64) (bool, error)
	Create(lot *lotDatamodel.Lot) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListLots returns every lot, most recent production date first. The list is
// a finite snapshot; there is no pagination cursor.
func (s *Service) ListLots() ([]*ProductionLot, error) {
	lots, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list production lots", "error", err)
		return nil, internal.NewInternalError("failed to list production lots", err)
	}
	return FromDataModelSlice(lots), nil
}

// CreateLot records a new lot for the submitting operator. The server assigns
// the identifier and timestamps.
func (s *Service) CreateLot(dto CreateLotDTO, operatorID int64) (*ProductionLot, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("lot validation failed", "error", err, "operator_id", operatorID)
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = LotStatusInProgress
	}

	now := time.Now()
	lot := &lotDatamodel.Lot{
		LotNumber:      dto.LotNumber,
		ProductType:    dto.ProductType,
		ProductionDate: dto.ProductionDate,
		Quantity:       dto.Quantity,
		Status:         status,
		OperatorID:     operatorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(lot); err != nil {
		s.logger.Error("failed to create production lot", "error", err, "lot_number", dto.LotNumber)
		return nil, internal.NewInternalError("failed to save production lot", err)
	}

	s.logger.Info("production lot created",
		"lot_id", lot.ID,
		"lot_number", lot.LotNumber,
		"quantity", lot.Quantity,
		"operator_id", operatorID)

	return FromDataModel(lot), nil
}

// LotExists lets the quality-test service verify the foreign key before
// accepting a test.
func (s *Service) LotExists(id int64) (bool, error) {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return false, internal.NewInternalError("failed to check production lot", err)
	}
	return exists, nil
}
