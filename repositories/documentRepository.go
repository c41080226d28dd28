package repositories

import (
	"CarePulse/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository reads stored documents from postgres. They are
// written together with their patient by PatientRepository.Create and are
// not cached: the payloads are large and read rarely.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}
