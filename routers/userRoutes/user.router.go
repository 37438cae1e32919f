package userRoutes

import (
	courseControllers "avacademy/controllers/course"
	userControllers "avacademy/controllers/user"
	"avacademy/middleware"
	courseValidators "avacademy/validators/course"
	userValidators "avacademy/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	// Static paths first so /courses is not captured by /:id
	userGroup.Get("/courses", middleware.JWTMiddleware, courseControllers.GetUserEnrollments)
	userGroup.Get("/courses/:courseId/progress", middleware.JWTMiddleware, courseValidators.CourseProgress(), courseControllers.GetCourseProgress)

	// Admin-only user management
	userGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRoles("admin"), userValidators.UserList(), userControllers.GetAllUsers)
	userGroup.Put("/:id/role", middleware.JWTMiddleware, middleware.RequireRoles("admin"), userValidators.UpdateRole(), userControllers.UpdateUserRole)
	userGroup.Put("/:id/status", middleware.JWTMiddleware, middleware.RequireRoles("admin"), userValidators.UserID(), userControllers.ToggleUserStatus)
}
