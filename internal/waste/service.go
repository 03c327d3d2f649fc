package waste

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
		s.logger.Error("failed to list waste records", "error", err)
		return nil, internal.NewInternalError("failed to list waste records", err)
	}
	return records, nil
}

func (s *Service) CreateRecord(dto CreateRecordDTO, responsibleID int64) (*Record, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("waste record validation failed", "error", err, "responsible_person_id", responsibleID)
		return nil, err
	}

	now := time.Now()
	record := &Record{
		WasteType:      dto.WasteType,
		QuantityKg:     dto.QuantityKg,
		DisposalMethod: dto.DisposalMethod,
		CostAmount:     dto.CostAmount,
		RecordedDate:   dto.RecordedDate,
		ResponsibleID:  responsibleID,
		Notes:          dto.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create waste record", "error", err, "waste_type", dto.WasteType)
		return nil, internal.NewInternalError("failed to save waste record", err)
	}

	s.logger.Info("waste record created",
		"record_id", record.ID,
		"waste_type", record.WasteType,
		"quantity_kg", record.QuantityKg,
		"disposal_method", record.DisposalMethod,
		"responsible_person_id", responsibleID)

	return record, nil
}
