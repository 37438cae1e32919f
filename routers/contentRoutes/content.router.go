package contentRoutes

import (
	contentControllers "avacademy/controllers/content"
	"avacademy/middleware"
	contentValidators "avacademy/validators/content"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/api/content")

	// Content CRUD for admins/editors. Registered before the public
	// :section route so POST/PUT/DELETE are not shadowed.
	contentGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), contentValidators.CreateContent(), contentControllers.AdminCreateContent)
	contentGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), contentValidators.ContentID(), contentValidators.UpdateContent(), contentControllers.AdminUpdateContent)
	contentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), contentValidators.ContentID(), contentControllers.AdminDeleteContent)

	// Public published content for one section, optionally narrowed by type
	contentGroup.Get("/:section", contentValidators.SectionContent(), contentControllers.GetSectionContent)
	contentGroup.Get("/:section/:type", contentValidators.SectionContentType(), contentControllers.GetSectionContent)

	// Draft-inclusive listing for the dashboard
	adminGroup := app.Group("/api/admin/content", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"))
	adminGroup.Get("/", contentValidators.AdminContentList(), contentControllers.AdminGetAllContent)
}
