package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/edenpods/edenpods/internal/catalog"
	"github.com/edenpods/edenpods/internal/chain"
	"github.com/edenpods/edenpods/internal/models"
	"github.com/edenpods/edenpods/internal/services"
)

type throwInput struct {
	PodTypeID     string `json:"pod_type_id"`
	ThrowDate     string `json:"throw_date"`
	LocationLabel string `json:"location_label"`
	Notes         string `json:"notes"`
	OnChain       bool   `json:"on_chain"`
}

// ListThrows serves the unified record view: optimistic pending mints
// first, then local and confirmed records by throw date descending, each
// with its time-derived stage status.
func (handler *Handler) ListThrows(c *fiber.Ctx) error {
	user := currentUser(c)

	records, err := handler.unifiedThrows(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load throws")
	}

	now := handler.clock()
	views := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		views = append(views, handler.throwView(record, now))
	}
	return c.JSON(fiber.Map{"throws": views})
}

func (handler *Handler) CreateThrow(c *fiber.Ctx) error {
	user := currentUser(c)

	var input throwInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	podType, ok := handler.catalog.PodTypeByID(input.PodTypeID)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "unknown pod type")
	}

	now := handler.clock()
	throwDate := now
	if input.ThrowDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.ThrowDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid throw date")
		}
		throwDate = parsed
	}

	if input.OnChain {
		return handler.mintThrow(c, user, podType, throwDate, input)
	}

	throw := models.Throw{
		UserID:        user.ID,
		Key:           uuid.NewString(),
		PodTypeID:     podType.ID,
		GrowthModelID: podType.GrowthModelID,
		ThrowDate:     throwDate,
		LocationLabel: input.LocationLabel,
		Notes:         input.Notes,
		CreatedAt:     now,
	}
	if err := handler.repos.Throws.Create(&throw); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create throw")
	}

	if err := handler.seedThrowNotifications(user.ID, throw, now); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to seed notifications")
	}

	return c.Status(fiber.StatusCreated).JSON(handler.throwView(throw.Record(), now))
}

// mintThrow hands the note to the signing relay and registers the result
// as an optimistic pending record until the next refresh confirms it.
func (handler *Handler) mintThrow(c *fiber.Ctx, user *models.User, podType catalog.PodType, throwDate time.Time, input throwInput) error {
	if user.WalletAddress == "" {
		return apiError(c, fiber.StatusBadRequest, "no wallet linked")
	}
	if handler.submitter == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "minting unavailable")
	}

	result, err := handler.submitter.SubmitThrow(c.Context(), user.WalletAddress, chain.ThrowNote{
		PodTypeID:     podType.ID,
		PodTypeName:   podType.Name,
		PodTypeIcon:   podType.Icon,
		ThrowDate:     throwDate,
		LocationLabel: input.LocationLabel,
		GrowthModelID: podType.GrowthModelID,
		ThrownBy:      user.WalletAddress,
	})
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "mint failed")
	}

	record := models.ThrowRecord{
		Key:           uuid.NewString(),
		TxID:          result.TxID,
		PodTypeID:     podType.ID,
		GrowthModelID: podType.GrowthModelID,
		ThrowDate:     throwDate,
		LocationLabel: input.LocationLabel,
		Notes:         input.Notes,
		ThrownBy:      user.WalletAddress,
	}
	handler.refresh.AddPending(user.ID, record)
	record.Pending = true

	return c.Status(fiber.StatusAccepted).JSON(handler.throwView(record, handler.clock()))
}

func (handler *Handler) GetThrow(c *fiber.Ctx) error {
	user := currentUser(c)
	key := c.Params("key")

	record, found, err := handler.findThrowRecord(user.ID, key)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load throw")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "throw not found")
	}

	observations, err := handler.repos.Observations.ListByThrow(user.ID, key)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load observations")
	}
	harvests, err := handler.repos.Harvests.ListByThrow(user.ID, key)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load harvests")
	}

	harvestRecords := make([]models.HarvestRecord, 0, len(harvests))
	for _, harvest := range harvests {
		harvestRecords = append(harvestRecords, harvest.Record())
	}
	for _, chainHarvest := range handler.refresh.Harvests(user.ID) {
		if chainHarvest.ThrowKey == key {
			harvestRecords = append(harvestRecords, chainHarvest)
		}
	}

	now := handler.clock()
	view := handler.throwView(record, now)
	view["observations"] = observations
	view["observed_stage_ids"] = services.ObservedStageIDs(observations, key)
	view["harvests"] = services.OrderHarvests(harvestRecords)
	view["harvest_summary"] = services.SummarizeHarvests(harvestRecords)
	return c.JSON(view)
}

// unifiedThrows merges the local sqlite throws into the refresh session's
// pending-plus-confirmed view.
func (handler *Handler) unifiedThrows(userID uint) ([]models.ThrowRecord, error) {
	session := handler.refresh.Throws(userID)

	pending := make([]models.ThrowRecord, 0, len(session))
	confirmed := make([]models.ThrowRecord, 0, len(session))
	for _, record := range session {
		if record.Pending {
			pending = append(pending, record)
		} else {
			confirmed = append(confirmed, record)
		}
	}

	locals, err := handler.repos.Throws.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, throw := range locals {
		confirmed = append(confirmed, throw.Record())
	}

	return services.UnifyThrows(pending, confirmed), nil
}

func (handler *Handler) findThrowRecord(userID uint, key string) (models.ThrowRecord, bool, error) {
	for _, record := range handler.refresh.Throws(userID) {
		if record.Key == key {
			return record, true, nil
		}
	}
	throw, err := handler.repos.Throws.FindByKey(userID, key)
	if err != nil {
		return models.ThrowRecord{}, false, err
	}
	if throw == nil {
		return models.ThrowRecord{}, false, nil
	}
	return throw.Record(), true, nil
}

func (handler *Handler) throwView(record models.ThrowRecord, now time.Time) fiber.Map {
	view := fiber.Map{"record": record}
	model, ok := handler.catalog.ModelByID(record.GrowthModelID)
	if !ok {
		return view
	}
	view["stage"] = services.ResolveStage(record.ThrowDate, model, now)
	if next, hasNext := services.NextStage(record.ThrowDate, model, now); hasNext {
		view["next_stage"] = next
	}
	return view
}

func (handler *Handler) seedThrowNotifications(userID uint, throw models.Throw, now time.Time) error {
	model, ok := handler.catalog.ModelByID(throw.GrowthModelID)
	if !ok {
		return nil
	}
	projections := services.ProjectNotifications(throw.ThrowDate, model, now)
	notifications := make([]models.Notification, 0, len(projections))
	for _, projection := range projections {
		notification := services.StageNotification(throw.Key, projection, now)
		notification.UserID = userID
		notifications = append(notifications, notification)
	}
	return handler.repos.Notifications.CreateBatch(notifications)
}
