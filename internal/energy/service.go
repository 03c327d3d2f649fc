package energy

import (
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal"
)

type Repository interface {
	GetAll() ([]*Record, error)
	Create(record *Record) error
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

func (s *Service) ListRecords() ([]*Record, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list energy records", "error", err)
		return nil, internal.NewInternalError("failed to list energy records", err)
	}
	return records, nil
}

func (s *Service) CreateRecord(dto CreateRecordDTO, recordedBy int64) (*Record, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("energy record validation failed", "error", err, "recorded_by", recordedBy)
		return nil, err
	}

	now := time.Now()
	record := &Record{
		EnergySource:   dto.EnergySource,
		ConsumptionKwh: dto.ConsumptionKwh,
		CostAmount:     dto.CostAmount,
		RecordedAt:     dto.RecordedAt,
		EquipmentName:  dto.EquipmentName,
		Department:     dto.Department,
		RecordedBy:     recordedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create energy record", "error", err, "energy_source", dto.EnergySource)
		return nil, internal.NewInternalError("failed to save energy record", err)
	}

	s.logger.Info("energy record created",
		"record_id", record.ID,
		"energy_source", record.EnergySource,
		"consumption_kwh", record.ConsumptionKwh,
		"recorded_by", recordedBy)

	return record, nil
}
