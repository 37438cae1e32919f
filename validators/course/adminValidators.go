package courseValidator

import (
	"avacademy/middleware"
	courseModels "avacademy/models/course"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LessonPayload is one lesson inside a module tree submission
type LessonPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	VideoURL    string `json:"video_url"`
	Resources   string `json:"resources"`
	Duration    int    `json:"duration"`
	OrderIndex  int    `json:"order_index"`
	IsPublished *bool  `json:"is_published"`
}

// ModulePayload is one module inside a course tree submission
type ModulePayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	OrderIndex  int             `json:"order_index"`
	IsPublished *bool           `json:"is_published"`
	Lessons     []LessonPayload `json:"lessons"`
}

// CoursePayload is the admin course create/update body. Modules, when
// present, replace the whole module/lesson tree of the course.
type CoursePayload struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	Thumbnail        string          `json:"thumbnail"`
	Category         string          `json:"category"`
	Level            string          `json:"level"`
	InstructorName   string          `json:"instructor_name"`
	InstructorBio    string          `json:"instructor_bio"`
	InstructorAvatar string          `json:"instructor_avatar"`
	Price            *float64        `json:"price"`
	Duration         int             `json:"duration"` // always overridden by the lesson sum
	Tags             []string        `json:"tags"`
	Prerequisites    []string        `json:"prerequisites"`
	LearningOutcomes []string        `json:"learning_outcomes"`
	IsPublished      *bool           `json:"is_published"`
	IsFeatured       *bool           `json:"is_featured"`
	Modules          []ModulePayload `json:"modules"`
}

func validateModules(modules []ModulePayload, errors map[string]string) {
	moduleOrders := make(map[int]bool)
	for i, mod := range modules {
		if strings.TrimSpace(mod.Title) == "" {
			errors[fmt.Sprintf("modules.%d.title", i)] = "Module title is required!"
		}
		if moduleOrders[mod.OrderIndex] {
			errors[fmt.Sprintf("modules.%d.order_index", i)] = "Module order must be unique within the course!"
		}
		moduleOrders[mod.OrderIndex] = true

		lessonOrders := make(map[int]bool)
		for j, lesson := range mod.Lessons {
			if strings.TrimSpace(lesson.Title) == "" {
				errors[fmt.Sprintf("modules.%d.lessons.%d.title", i, j)] = "Lesson title is required!"
			}
			if lesson.Duration < 0 {
				errors[fmt.Sprintf("modules.%d.lessons.%d.duration", i, j)] = "Lesson duration cannot be negative!"
			}
			if lessonOrders[lesson.OrderIndex] {
				errors[fmt.Sprintf("modules.%d.lessons.%d.order_index", i, j)] = "Lesson order must be unique within the module!"
			}
			lessonOrders[lesson.OrderIndex] = true
		}
	}
}

// CreateCourseAdmin validates a full course creation body
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if !courseModels.ValidCategory(reqData.Category) {
			errors["category"] = "Unknown course category!"
		}

		if reqData.Level == "" {
			reqData.Level = "beginner"
		} else if !courseModels.ValidLevel(reqData.Level) {
			errors["level"] = "Unknown course level!"
		}

		validateModules(reqData.Modules, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates a partial course update body
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Category != "" && !courseModels.ValidCategory(reqData.Category) {
			errors["category"] = "Unknown course category!"
		}
		if reqData.Level != "" && !courseModels.ValidLevel(reqData.Level) {
			errors["level"] = "Unknown course level!"
		}

		validateModules(reqData.Modules, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// AdminList validates the admin course listing query
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category string `query:"category"`
			Status   string `query:"status"` // published, draft
			Page     int    `query:"page"`
			Limit    int    `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Category != "" && !courseModels.ValidCategory(reqData.Category) {
			errors["category"] = "Unknown course category!"
		}
		if reqData.Status != "" && reqData.Status != "published" && reqData.Status != "draft" {
			errors["status"] = "Status must be 'published' or 'draft'!"
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 20
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminCourseList", reqData)
		return c.Next()
	}
}
