package courseRoutes

import (
	controllers "avacademy/controllers/course"
	"avacademy/middleware"
	validators "avacademy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Public catalog (published courses only)
	courseGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/featured", controllers.GetFeaturedCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment and progress (authenticated users)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Post("/:courseId/lessons/:lessonId/complete", middleware.JWTMiddleware, validators.CompleteLesson(), controllers.MarkLessonComplete)
}
