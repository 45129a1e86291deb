package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/models"
	"github.com/edenpods/edenpods/internal/services"
)

type harvestInput struct {
	PlantID       string `json:"plant_id"`
	QuantityClass string `json:"quantity_class"`
	HarvestedAt   string `json:"harvested_at"`
	Notes         string `json:"notes"`
}

func (handler *Handler) CreateHarvest(c *fiber.Ctx) error {
	user := currentUser(c)
	key := c.Params("key")

	if _, found, err := handler.findThrowRecord(user.ID, key); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load throw")
	} else if !found {
		return apiError(c, fiber.StatusNotFound, "throw not found")
	}

	var input harvestInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.PlantID == "" {
		return apiError(c, fiber.StatusBadRequest, "plant required")
	}
	if !models.ValidQuantityClass(input.QuantityClass) {
		return apiError(c, fiber.StatusBadRequest, "invalid quantity class")
	}

	harvestedAt := handler.clock()
	if input.HarvestedAt != "" {
		parsed, err := time.Parse(time.RFC3339, input.HarvestedAt)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid harvest time")
		}
		harvestedAt = parsed
	}

	harvest := models.Harvest{
		UserID:        user.ID,
		ThrowKey:      key,
		PlantID:       input.PlantID,
		QuantityClass: input.QuantityClass,
		HarvestedAt:   harvestedAt,
		Notes:         input.Notes,
		CreatedAt:     handler.clock(),
	}
	if err := handler.repos.Harvests.Create(&harvest); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save harvest")
	}

	return c.Status(fiber.StatusCreated).JSON(harvest.Record())
}

// ListHarvests serves the local and on-chain sets side by side. They are
// never merged in storage; the summary totals both.
func (handler *Handler) ListHarvests(c *fiber.Ctx) error {
	user := currentUser(c)

	harvests, err := handler.repos.Harvests.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load harvests")
	}

	local := make([]models.HarvestRecord, 0, len(harvests))
	for _, harvest := range harvests {
		local = append(local, harvest.Record())
	}
	confirmed := handler.refresh.Harvests(user.ID)

	combined := make([]models.HarvestRecord, 0, len(local)+len(confirmed))
	combined = append(combined, local...)
	combined = append(combined, confirmed...)

	return c.JSON(fiber.Map{
		"local":   services.OrderHarvests(local),
		"chain":   services.OrderHarvests(confirmed),
		"summary": services.SummarizeHarvests(combined),
	})
}
