package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, reservations *ReservationHandler) {
	app.Post("/login", auth.Login)

	app.Get("/reservations", reservations.List)
	app.Post("/reservations", reservations.Create)
	app.Put("/reservations/:id", reservations.Update)
	app.Delete("/reservations/:id", reservations.Delete)

	app.Get("/config", reservations.GetConfig)
	app.Put("/config", reservations.UpdateConfig)
}
