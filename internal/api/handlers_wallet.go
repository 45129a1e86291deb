package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/services"
)

type walletInput struct {
	Address string `json:"address"`
}

func (handler *Handler) LinkWallet(c *fiber.Ctx) error {
	user := currentUser(c)

	var input walletInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	address := strings.ToUpper(strings.TrimSpace(input.Address))
	if address == "" {
		return apiError(c, fiber.StatusBadRequest, "address required")
	}

	if err := handler.repos.Users.UpdateWalletAddress(user.ID, address); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to link wallet")
	}

	return c.JSON(fiber.Map{"ok": true, "wallet_address": address})
}

// RefreshRecords triggers a manual ledger refresh. Overlapping triggers
// are dropped, not queued; the client retries on the next poll.
func (handler *Handler) RefreshRecords(c *fiber.Ctx) error {
	user := currentUser(c)

	stored, err := handler.repos.Users.FindByID(user.ID)
	if err != nil || stored == nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load account")
	}
	if stored.WalletAddress == "" {
		return apiError(c, fiber.StatusBadRequest, "no wallet linked")
	}

	if err := handler.refresh.Refresh(c.Context(), user.ID, stored.WalletAddress); err != nil {
		if errors.Is(err, services.ErrRefreshInFlight) {
			return apiError(c, fiber.StatusConflict, "refresh already in flight")
		}
		return apiError(c, fiber.StatusBadGateway, "refresh failed")
	}

	return c.JSON(fiber.Map{"ok": true})
}
