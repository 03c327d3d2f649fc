package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal"
	userDatamodel "github.com/ceramiqa/quality-management/internal/core/datamodel/user"
	"github.com/ceramiqa/quality-management/internal/core/events"
	"github.com/google/uuid"
)

type Repository interface {
	GetAll() ([]*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	UpdateRole(id int64, role string) error
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

func (s *Service) ListUsers() ([]*User, error) {
	accounts, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}
	return FromDataModelSlice(accounts), nil
}

func (s *Service) GetByID(id int64) (*User, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return FromDataModel(account), nil
}

// UpdateRole reassigns a user's role. Permission sets are derived from the
// role at request time, so nothing else needs rewriting.
func (s *Service) UpdateRole(id int64, dto UpdateRoleDTO, actorID int64) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if err := s.repo.UpdateRole(id, dto.Role); err != nil {
		s.logger.Error("failed to update role", "error", err, "user_id", id)
		return nil, internal.NewInternalError("failed to update role", err)
	}

	s.logger.Info("role reassigned",
		"user_id", id,
		"previous_role", account.Role,
		"new_role", dto.Role,
		"actor_id", actorID)

	s.publish("user.role_changed", map[string]interface{}{
		"user_id":       id,
		"previous_role": account.Role,
		"new_role":      dto.Role,
		"actor_id":      actorID,
	})

	account.Role = dto.Role
	account.UpdatedAt = time.Now()
	return FromDataModel(account), nil
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
