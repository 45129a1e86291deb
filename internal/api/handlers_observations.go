package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/models"
)

type observationInput struct {
	StageID    string `json:"stage_id"`
	ObservedAt string `json:"observed_at"`
	Notes      string `json:"notes"`
}

func (handler *Handler) CreateObservation(c *fiber.Ctx) error {
	user := currentUser(c)
	key := c.Params("key")

	record, found, err := handler.findThrowRecord(user.ID, key)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load throw")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "throw not found")
	}

	var input observationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if !handler.stageExists(record.GrowthModelID, input.StageID) {
		return apiError(c, fiber.StatusBadRequest, "unknown stage")
	}

	observedAt := handler.clock()
	if input.ObservedAt != "" {
		parsed, err := time.Parse(time.RFC3339, input.ObservedAt)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid observation time")
		}
		observedAt = parsed
	}

	observation := models.Observation{
		UserID:     user.ID,
		ThrowKey:   key,
		StageID:    input.StageID,
		ObservedAt: observedAt,
		Notes:      input.Notes,
	}
	if err := handler.repos.Observations.Create(&observation); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save observation")
	}

	return c.Status(fiber.StatusCreated).JSON(observation)
}

func (handler *Handler) ListObservations(c *fiber.Ctx) error {
	user := currentUser(c)
	key := c.Params("key")

	observations, err := handler.repos.Observations.ListByThrow(user.ID, key)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load observations")
	}
	return c.JSON(fiber.Map{"observations": observations})
}

func (handler *Handler) stageExists(growthModelID string, stageID string) bool {
	model, ok := handler.catalog.ModelByID(growthModelID)
	if !ok {
		return false
	}
	for _, stage := range model.Stages {
		if stage.ID == stageID {
			return true
		}
	}
	return false
}
