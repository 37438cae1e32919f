package adminRoutes

import (
	adminControllers "avacademy/controllers/admin"
	"avacademy/middleware"
	adminValidators "avacademy/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin")

	adminGroup.Get("/stats", middleware.JWTMiddleware, middleware.RequireRoles("admin"), adminControllers.AdminDashboardStats)
	adminGroup.Post("/bulk-action", middleware.JWTMiddleware, middleware.RequireRoles("admin"), adminValidators.BulkAction(), adminControllers.AdminBulkAction)
}
