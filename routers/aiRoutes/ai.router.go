package aiRoutes

import (
	aiControllers "avacademy/controllers/ai"
	aiValidators "avacademy/validators/ai"

	"github.com/gofiber/fiber/v2"
)

func SetupAiRoutes(app *fiber.App) {
	aiGroup := app.Group("/api/ai")

	aiGroup.Post("/chat", aiValidators.Chat(), aiControllers.Chat)
	aiGroup.Post("/suggest", aiValidators.Suggest(), aiControllers.Suggest)
}
