package db

import (
	"errors"

	"github.com/edenpods/edenpods/internal/models"
	"gorm.io/gorm"
)

type ThrowRepository struct {
	database *gorm.DB
}

func NewThrowRepository(database *gorm.DB) *ThrowRepository {
	return &ThrowRepository{database: database}
}

func (r *ThrowRepository) Create(throw *models.Throw) error {
	return r.database.Create(throw).Error
}

func (r *ThrowRepository) FindByKey(userID uint, key string) (*models.Throw, error) {
	var throw models.Throw
	err := r.database.
		Where("user_id = ? AND key = ?", userID, key).
		First(&throw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &throw, nil
}

// ListByUser returns local throws newest first.
func (r *ThrowRepository) ListByUser(userID uint) ([]models.Throw, error) {
	var throws []models.Throw
	err := r.database.
		Where("user_id = ?", userID).
		Order("throw_date DESC, id DESC").
		Find(&throws).Error
	return throws, err
}

func (r *ThrowRepository) DeleteByKey(userID uint, key string) error {
	return r.database.
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&models.Throw{}).Error
}
