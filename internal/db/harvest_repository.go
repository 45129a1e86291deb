package db

import (
	"github.com/edenpods/edenpods/internal/models"
	"gorm.io/gorm"
)

type HarvestRepository struct {
	database *gorm.DB
}

func NewHarvestRepository(database *gorm.DB) *HarvestRepository {
	return &HarvestRepository{database: database}
}

func (r *HarvestRepository) Create(harvest *models.Harvest) error {
	return r.database.Create(harvest).Error
}

func (r *HarvestRepository) ListByThrow(userID uint, throwKey string) ([]models.Harvest, error) {
	var harvests []models.Harvest
	err := r.database.
		Where("user_id = ? AND throw_key = ?", userID, throwKey).
		Order("harvested_at DESC, id DESC").
		Find(&harvests).Error
	return harvests, err
}

func (r *HarvestRepository) ListByUser(userID uint) ([]models.Harvest, error) {
	var harvests []models.Harvest
	err := r.database.
		Where("user_id = ?", userID).
		Order("harvested_at DESC, id DESC").
		Find(&harvests).Error
	return harvests, err
}
