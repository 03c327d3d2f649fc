package compliance

import (
	"time"

	"github.com/ceramiqa/quality-management/internal/core/common/validation"
)

type DocumentDTO struct {
	DocumentName     string    `json:"document_name"`
	DocumentType     string    `json:"document_type"`
	IssuingAuthority string    `json:"issuing_authority,omitempty"`
	IssueDate        time.Time `json:"issue_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	Status           string    `json:"status,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

func (dto DocumentDTO) Validate() error {
	return validation.New().
		Require("document_name", dto.DocumentName).
		Require("document_type", dto.DocumentType).
		RequireTime("issue_date", dto.IssueDate).
		OneOf("status", dto.Status, AllStatuses()...).
		Check(dto.ExpiryDate.IsZero() || !dto.ExpiryDate.Before(dto.IssueDate),
			"expiry_date must not be before issue_date").
		Err()
}
