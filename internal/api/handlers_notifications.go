package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/services"
)

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user := currentUser(c)

	notifications, err := handler.repos.Notifications.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}

	now := handler.clock()
	return c.JSON(fiber.Map{
		"notifications": notifications,
		"unread_count":  services.UnreadCount(notifications, now),
	})
}

// DueNotifications serves only reminders whose scheduled moment has passed
// and that the user has not read. The client polls this on its cadence.
func (handler *Handler) DueNotifications(c *fiber.Ctx) error {
	user := currentUser(c)

	notifications, err := handler.repos.Notifications.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}

	due := services.DueNotifications(notifications, handler.clock())
	return c.JSON(fiber.Map{"notifications": due})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}
	if err := handler.repos.Notifications.MarkRead(user.ID, uint(id)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to mark read")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.repos.Notifications.MarkAllRead(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to mark read")
	}
	return c.JSON(fiber.Map{"ok": true})
}
