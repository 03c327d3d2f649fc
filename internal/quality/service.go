package quality

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	testDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/quality"
	"github.com/ceramiqa/quality-management/internal/core/events"
	"github.com/google/uuid"
)

type Repository interface {
	GetAll() ([]*testDatamodel.Test, error)
	GetByID(id int64) (*testDatamodel.Test, error)
	Create(test *testDatamodel.Test) error
	Update(test *testDatamodel.Test) error
}

// LotChecker verifies the lot a test references actually exists. The
// production service satisfies it.
type LotChecker interface {
	LotExists(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	lots   LotChecker
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, lots LotChecker, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		lots:   lots,
		bus:    bus,
		logger: logger,
	}
}

// ListTests returns every test, most recent test date first.
func (s *Service) ListTests() ([]*QualityTest, error) {
	tests, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list quality tests", "error", err)
		return nil, internal.NewInternalError("failed to list quality tests", err)
	}
	return FromDataModelSlice(tests), nil
}

// CreateTest records an inspection against an existing lot. The referenced
// lot must exist before the test is accepted.
func (s *Service) CreateTest(dto TestDTO, operatorID int64) (*QualityTest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("test validation failed", "error", err, "operator_id", operatorID)
		return nil, err
	}

	exists, err := s.lots.LotExists(dto.LotID)
	if err != nil {
		s.logger.Error("failed to verify lot", "error", err, "lot_id", dto.LotID)
		return nil, err
	}
	if !exists {
		return nil, ErrLotNotFound
	}

	now := time.Now()
	test := &testDatamodel.Test{
		LotID:                  dto.LotID,
		OperatorID:             operatorID,
		TestDate:               dto.TestDate,
		LengthMm:               dto.LengthMm,
		WidthMm:                dto.WidthMm,
		ThicknessMm:            dto.ThicknessMm,
		WaterAbsorptionPercent: dto.WaterAbsorptionPercent,
		BreakResistanceN:       dto.BreakResistanceN,
		DefectType:             defectOrDefault(dto.DefectType),
		DefectCount:            dto.DefectCount,
		Status:                 dto.Status,
		Notes:                  dto.Notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repo.Create(test); err != nil {
		s.logger.Error("failed to create quality test", "error", err, "lot_id", dto.LotID)
		return nil, internal.NewInternalError("failed to save quality test", err)
	}

	s.publish("quality_test.created", map[string]interface{}{
		"test_id":     test.ID,
		"lot_id":      test.LotID,
		"status":      test.Status,
		"operator_id": operatorID,
	})

	s.logger.Info("quality test created",
		"test_id", test.ID,
		"lot_id", test.LotID,
		"status", test.Status,
		"operator_id", operatorID)

	return FromDataModel(test), nil
}

// UpdateTest replaces the mutable fields of an existing test. The operator
// who originally recorded the test stays on the record.
func (s *Service) UpdateTest(id int64, dto TestDTO) (*QualityTest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("test validation failed", "error", err, "test_id", id)
		return nil, err
	}

	test, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrTestNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("failed to load quality test", err)
	}

	if test.LotID != dto.LotID {
		exists, err := s.lots.LotExists(dto.LotID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrLotNotFound
		}
	}

	test.LotID = dto.LotID
	test.TestDate = dto.TestDate
	test.LengthMm = dto.LengthMm
	test.WidthMm = dto.WidthMm
	test.ThicknessMm = dto.ThicknessMm
	test.WaterAbsorptionPercent = dto.WaterAbsorptionPercent
	test.BreakResistanceN = dto.BreakResistanceN
	test.DefectType = defectOrDefault(dto.DefectType)
	test.DefectCount = dto.DefectCount
	test.Status = dto.Status
	test.Notes = dto.Notes
	test.UpdatedAt = time.Now()

	if err := s.repo.Update(test); err != nil {
		s.logger.Error("failed to update quality test", "error", err, "test_id", id)
		if errors.Is(err, ErrTestNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("failed to update quality test", err)
	}

	s.logger.Info("quality test updated", "test_id", id, "status", test.Status)

	return FromDataModel(test), nil
}

func defectOrDefault(defectType string) string {
	if defectType == "" {
		return DefectNone
	}
	return defectType
}

func (s *Service) publish(eventType string, data map[string]interface{}) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), events.BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
}
