package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/services"
)

func (handler *Handler) GetPodTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"pod_types": handler.catalog.PodTypes})
}

func (handler *Handler) GetGrowthModels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"growth_models": handler.catalog.GrowthModels})
}

func (handler *Handler) GetRecipes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"recipes": handler.catalog.Recipes})
}

// GetBirthright serves the pod-spread projection table: pods double each
// year from the given starting count.
func (handler *Handler) GetBirthright(c *fiber.Ctx) error {
	pods, err := strconv.Atoi(c.Query("pods", "1"))
	if err != nil || pods < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid pods")
	}
	years, err := strconv.Atoi(c.Query("years", "10"))
	if err != nil || years < 0 || years > 50 {
		return apiError(c, fiber.StatusBadRequest, "invalid years")
	}
	return c.JSON(fiber.Map{"projection": services.BirthrightProjection(pods, years)})
}
