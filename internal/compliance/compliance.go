package compliance

import (
	"time"

	"github.com/ceramiqa/quality-management/internal"
)

// Document is a certification or regulatory document the factory must keep
// current, for example an ISO 13006 certificate or an environmental permit.
type Document struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	DocumentName     string    `json:"document_name" gorm:"column:document_name;not null"`
	DocumentType     string    `json:"document_type" gorm:"column:document_type;not null"`
	IssuingAuthority string    `json:"issuing_authority" gorm:"column:issuing_authority"`
	IssueDate        time.Time `json:"issue_date" gorm:"column:issue_date;type:date"`
	ExpiryDate       time.Time `json:"expiry_date" gorm:"column:expiry_date;type:date"`
	Status           string    `json:"status" gorm:"column:status;default:Valide"`
	UploadedBy       int64     `json:"uploaded_by" gorm:"column:uploaded_by;not null"`
	Notes            string    `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Document) TableName() string {
	return "compliance_documents"
}

const (
	StatusValid   = "Valide"
	StatusExpired = "Expiré"
	StatusPending = "En attente"
)

var ErrDocumentNotFound error = internal.NewNotFoundError("compliance document not found", internal.ErrCodeRecordNotFound)

func AllStatuses() []string {
	return []string{StatusValid, StatusExpired, StatusPending}
}
