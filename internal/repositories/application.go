package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"autoapply/autoapply-uae/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByApplicantEmail(email string, limit int) ([]models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository.
func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application record: %w", err)
	}

	return nil
}

// FindByApplicantEmail implements ApplicationRepository.
func (r *applicationRepository) FindByApplicantEmail(email string, limit int) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("applicant_email = ?", email).
		Order("applied_at DESC").
		Limit(limit).
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}

	return apps, nil
}
