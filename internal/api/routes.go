package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	catalog := api.Group("/catalog")
	catalog.Get("/pod-types", handler.GetPodTypes)
	catalog.Get("/growth-models", handler.GetGrowthModels)
	catalog.Get("/recipes", handler.GetRecipes)

	throws := api.Group("/throws", handler.AuthRequired)
	throws.Get("", handler.ListThrows)
	throws.Post("", handler.CreateThrow)
	throws.Get("/:key", handler.GetThrow)
	throws.Get("/:key/observations", handler.ListObservations)
	throws.Post("/:key/observations", handler.CreateObservation)
	throws.Post("/:key/harvests", handler.CreateHarvest)

	api.Get("/harvests", handler.AuthRequired, handler.ListHarvests)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Get("/due", handler.DueNotifications)
	notifications.Post("/:id/read", handler.MarkNotificationRead)
	notifications.Post("/read-all", handler.MarkAllNotificationsRead)

	api.Post("/wallet", handler.AuthRequired, handler.LinkWallet)
	api.Post("/refresh", handler.AuthRequired, handler.RefreshRecords)
	api.Get("/birthright", handler.GetBirthright)
}
