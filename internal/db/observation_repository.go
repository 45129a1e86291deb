package db

import (
	"github.com/edenpods/edenpods/internal/models"
	"gorm.io/gorm"
)

type ObservationRepository struct {
	database *gorm.DB
}

func NewObservationRepository(database *gorm.DB) *ObservationRepository {
	return &ObservationRepository{database: database}
}

func (r *ObservationRepository) Create(observation *models.Observation) error {
	return r.database.Create(observation).Error
}

func (r *ObservationRepository) ListByThrow(userID uint, throwKey string) ([]models.Observation, error) {
	var observations []models.Observation
	err := r.database.
		Where("user_id = ? AND throw_key = ?", userID, throwKey).
		Order("observed_at DESC, id DESC").
		Find(&observations).Error
	return observations, err
}

func (r *ObservationRepository) ListByUser(userID uint) ([]models.Observation, error) {
	var observations []models.Observation
	err := r.database.
		Where("user_id = ?", userID).
		Order("observed_at DESC, id DESC").
		Find(&observations).Error
	return observations, err
}
