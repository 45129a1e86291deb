package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edenpods/edenpods/internal/models"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (r *NotificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.database.
		Where("user_id = ?", userID).
		Order("scheduled_for ASC, id ASC").
		Find(&notifications).Error
	return notifications, err
}

// CreateBatch inserts freshly seeded notifications. A conflicting
// (user_id, throw_key, stage_id) triple is skipped rather than rejected,
// so two refreshes racing on the same records stay idempotent without
// shadowing another user's reminders for the same wallet.
func (r *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "throw_key"}, {Name: "stage_id"}},
			DoNothing: true,
		}).
		Create(&notifications).Error
}

func (r *NotificationRepository) MarkRead(userID, notificationID uint) error {
	return r.database.Model(&models.Notification{}).
		Where("user_id = ? AND id = ?", userID, notificationID).
		Update("read", true).Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.database.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
