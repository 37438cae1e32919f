package courseRoutes

import (
	controllers "avacademy/controllers/course"
	"avacademy/middleware"
	validators "avacademy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up course management for admins and editors
func SetupAdminCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), validators.CourseID(), validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), validators.CourseID(), controllers.AdminDeleteCourse)
	courseGroup.Post("/:id/thumbnail", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), validators.CourseID(), controllers.AdminUploadThumbnail)

	// Draft-inclusive listing and retrieval live under /api/admin
	adminGroup := app.Group("/api/admin/courses")
	adminGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), validators.AdminList(), controllers.AdminGetAllCourses)
	adminGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireRoles("admin", "editor"), validators.CourseID(), controllers.AdminGetCourseDetails)
}
