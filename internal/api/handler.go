package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/catalog"
	"github.com/edenpods/edenpods/internal/chain"
	"github.com/edenpods/edenpods/internal/db"
	"github.com/edenpods/edenpods/internal/services"
)

type Handler struct {
	repos        *db.Repositories
	secretKey    []byte
	catalog      *catalog.Catalog
	refresh      *services.RefreshService
	submitter    chain.Submitter
	cookieSecure bool
	clock        func() time.Time
}

func NewHandler(
	repos *db.Repositories,
	secretKey string,
	cat *catalog.Catalog,
	refresh *services.RefreshService,
	submitter chain.Submitter,
	cookieSecure bool,
) *Handler {
	return &Handler{
		repos:        repos,
		secretKey:    []byte(secretKey),
		catalog:      cat,
		refresh:      refresh,
		submitter:    submitter,
		cookieSecure: cookieSecure,
		clock:        time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (handler *Handler) SetClock(clock func() time.Time) {
	handler.clock = clock
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
