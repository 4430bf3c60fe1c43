package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Juantrevi/Backend-Learning-Management-System/handlers"
	"github.com/Juantrevi/Backend-Learning-Management-System/middleware"
)

func AuthRoutes(app *fiber.App, users *handlers.UserHandler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", users.Register)

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", users.Profile)
	profile.Put("", users.UpdateProfile)
}
