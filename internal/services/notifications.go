package services

import (
	"time"

	"github.com/edenpods/edenpods/internal/models"
)

// DueNotifications returns the unread notifications whose scheduled moment
// has passed. Evaluated on the poll cadence; no push channel exists.
func DueNotifications(notifications []models.Notification, now time.Time) []models.Notification {
	due := make([]models.Notification, 0)
	for _, notification := range notifications {
		if notification.Read {
			continue
		}
		if notification.ScheduledFor.After(now) {
			continue
		}
		due = append(due, notification)
	}
	return due
}

// UnreadCount is the number of due, unread notifications.
func UnreadCount(notifications []models.Notification, now time.Time) int {
	return len(DueNotifications(notifications, now))
}

// MarkRead returns a copy of the set with the targeted notification read.
// Persistence is the caller's responsibility: the HTTP layer updates rows
// directly through NotificationRepository; this set-level form is the
// contract for callers holding notifications in memory.
func MarkRead(notifications []models.Notification, id uint) []models.Notification {
	updated := make([]models.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if notification.ID == id {
			notification.Read = true
		}
		updated = append(updated, notification)
	}
	return updated
}

// MarkAllRead returns a copy of the set with every notification read.
func MarkAllRead(notifications []models.Notification) []models.Notification {
	updated := make([]models.Notification, 0, len(notifications))
	for _, notification := range notifications {
		notification.Read = true
		updated = append(updated, notification)
	}
	return updated
}
