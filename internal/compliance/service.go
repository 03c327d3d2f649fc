package compliance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	"github.com/ceramiqa/quality-management/internal/core/events"
	"github.com/google/uuid"
)

type Repository interface {
	GetAll() ([]*Document, error)
	GetByID(id int64) (*Document, error)
	Create(doc *Document) error
	Update(doc *Document) error
}

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) ListDocuments() ([]*Document, error) {
	docs, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list compliance documents", "error", err)
		return nil, internal.NewInternalError("failed to list compliance documents", err)
	}
	return docs, nil
}

// CreateDocument registers a document under the submitting manager's account
// and records the action in the activity log via the event bus.
func (s *Service) CreateDocument(dto DocumentDTO, uploadedBy int64) (*Document, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("document validation failed", "error", err, "uploaded_by", uploadedBy)
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = StatusValid
	}

	now := time.Now()
	doc := &Document{
		DocumentName:     dto.DocumentName,
		DocumentType:     dto.DocumentType,
		IssuingAuthority: dto.IssuingAuthority,
		IssueDate:        dto.IssueDate,
		ExpiryDate:       dto.ExpiryDate,
		Status:           status,
		UploadedBy:       uploadedBy,
		Notes:            dto.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(doc); err != nil {
		s.logger.Error("failed to create compliance document", "error", err, "document_name", dto.DocumentName)
		return nil, internal.NewInternalError("failed to save compliance document", err)
	}

	s.publish("compliance_document.created", map[string]interface{}{
		"document_id":   doc.ID,
		"document_name": doc.DocumentName,
		"document_type": doc.DocumentType,
		"uploaded_by":   uploadedBy,
	})

	s.logger.Info("compliance document created",
		"document_id", doc.ID,
		"document_name", doc.DocumentName,
		"uploaded_by", uploadedBy)

	return doc, nil
}

// UpdateDocument replaces the mutable fields of an existing document.
func (s *Service) UpdateDocument(id int64, dto DocumentDTO) (*Document, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("document validation failed", "error", err, "document_id", id)
		return nil, err
	}

	doc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("failed to load compliance document", err)
	}

	doc.DocumentName = dto.DocumentName
	doc.DocumentType = dto.DocumentType
	doc.IssuingAuthority = dto.IssuingAuthority
	doc.IssueDate = dto.IssueDate
	doc.ExpiryDate = dto.ExpiryDate
	if dto.Status != "" {
		doc.Status = dto.Status
	}
	doc.Notes = dto.Notes
	doc.UpdatedAt = time.Now()

	if err := s.repo.Update(doc); err != nil {
		s.logger.Error("failed to update compliance document", "error", err, "document_id", id)
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("failed to update compliance document", err)
	}

	s.publish("compliance_document.updated", map[string]interface{}{
		"document_id":   doc.ID,
		"document_name": doc.DocumentName,
		"status":        doc.Status,
	})

	s.logger.Info("compliance document updated", "document_id", id, "status", doc.Status)

	return doc, nil
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
