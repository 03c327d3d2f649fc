package campaign

import (
	"errors"
	"log/slog"
	"time"

	"github.com/ceramiqa/quality-management/internal"
)

type Repository interface {
	GetAll() ([]*Campaign, error)
	GetByID(id int64) (*Campaign, error)
	Create(c *Campaign) error
	Update(c *Campaign) error
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

func (s *Service) ListCampaigns() ([]*Campaign, error) {
	campaigns, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list campaigns", "error", err)
		return nil, internal.NewInternalError("failed to list testing campaigns", err)
	}
	return campaigns, nil
}

func (s *Service) CreateCampaign(dto CampaignDTO, createdBy int64) (*Campaign, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("campaign validation failed", "error", err, "created_by", createdBy)
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = StatusPlanning
	}

	now := time.Now()
	c := &Campaign{
		CampaignName: dto.CampaignName,
		Description:  dto.Description,
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
		Status:       status,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create campaign", "error", err, "campaign_name", dto.CampaignName)
		return nil, internal.NewInternalError("failed to save testing campaign", err)
	}

	s.logger.Info("campaign created",
		"campaign_id", c.ID,
		"campaign_name", c.CampaignName,
		"created_by", createdBy)

	return c, nil
}

func (s *Service) UpdateCampaign(id int64, dto CampaignDTO) (*Campaign, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("campaign validation failed", "error", err, "campaign_id", id)
		return nil, err
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("failed to load testing campaign", err)
	}

	c.CampaignName = dto.CampaignName
	c.Description = dto.Description
	c.StartDate = dto.StartDate
	c.EndDate = dto.EndDate
	if dto.Status != "" {
		c.Status = dto.Status
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update campaign", "error", err, "campaign_id", id)
		if errors.Is(err, ErrCampaignNotFound) {
			return nil, err
		}
		return nil, internal.NewInternalError("failed to update testing campaign", err)
	}

	s.logger.Info("campaign updated", "campaign_id", id, "status", c.Status)

	return c, nil
}
