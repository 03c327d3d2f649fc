package postgres

import (
	"github.com/ceramiqa/quality-management/internal/compliance"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) compliance.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]*compliance.Document, error) {
	var docs []*compliance.Document
	err := r.db.Order("created_at DESC, id DESC").Find(&docs).Error
	return docs, err
}

func (r *Repository) GetByID(id int64) (*compliance.Document, error) {
	var doc compliance.Document
	err := r.db.Where("id = ?", id).First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, compliance.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *Repository) Create(doc *compliance.Document) error {
	return r.db.Create(doc).Error
}

func (r *Repository) Update(doc *compliance.Document) error {
	result := r.db.Model(&compliance.Document{}).Where("id = ?", doc.ID).Updates(map[string]interface{}{
		"document_name":     doc.DocumentName,
		"document_type":     doc.DocumentType,
		"issuing_authority": doc.IssuingAuthority,
		"issue_date":        doc.IssueDate,
		"expiry_date":       doc.ExpiryDate,
		"status":            doc.Status,
		"notes":             doc.Notes,
		"updated_at":        doc.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return compliance.ErrDocumentNotFound
	}
	return nil
}
