package activitylog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal/core/events"
)

type Repository interface {
	GetRecent(limit int) ([]*Entry, error)
	Create(entry *Entry) error
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

const defaultListLimit = 100

func (s *Service) ListRecent() ([]*Entry, error) {
	entries, err := s.repo.GetRecent(defaultListLimit)
	if err != nil {
		s.logger.Error("failed to list activity log", "error", err)
		return nil, err
	}
	return entries, nil
}

// RegisterSubscriptions wires the audited event types into the bus. Call once
// during startup, before the server accepts traffic.
func (s *Service) RegisterSubscriptions(bus *events.EventBus) {
	bus.Subscribe("user.registered", s.onEvent("user.registered", "user", "user_id", "user_id"))
	bus.Subscribe("user.role_changed", s.onEvent("user.role_changed", "user", "actor_id", "user_id"))
	bus.Subscribe("compliance_document.created", s.onEvent("compliance_document.created", "compliance_document", "uploaded_by", "document_id"))
	bus.Subscribe("compliance_document.updated", s.onEvent("compliance_document.updated", "compliance_document", "", "document_id"))
	bus.Subscribe("quality_test.created", s.onEvent("quality_test.created", "quality_test", "operator_id", "test_id"))
}

func (s *Service) onEvent(action, entityType, actorKey, entityKey string) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		data, _ := event.Payload().(map[string]interface{})

		entry := &Entry{
			Action:     action,
			ActorID:    asID(data[actorKey]),
			EntityType: entityType,
			EntityID:   asID(data[entityKey]),
			CreatedAt:  event.OccurredAt(),
		}
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = time.Now()
		}
		if details, err := json.Marshal(data); err == nil {
			entry.Details = string(details)
		}

		if err := s.repo.Create(entry); err != nil {
			s.logger.Error("failed to persist activity log entry",
				"action", action,
				"event_id", event.EventID(),
				"error", err)
			return err
		}
		return nil
	}
}

// asID tolerates the numeric types a payload map can carry after transport.
func asID(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
