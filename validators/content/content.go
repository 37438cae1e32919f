package contentValidator

import (
	"avacademy/middleware"
	"avacademy/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ContentPayload is the admin content create/update body
type ContentPayload struct {
	Section        string `json:"section"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Body           string `json:"body"`
	ImageURL       string `json:"image_url"`
	VideoURL       string `json:"video_url"`
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	Keywords       string `json:"keywords"`
	OrderIndex     *int   `json:"order_index"`
	IsPublished    *bool  `json:"is_published"`
}

// SectionContent validates the public :section route parameter
func SectionContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		section := strings.TrimSpace(c.Params("section"))
		if !models.ValidContentSection(section) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown content section!", nil)
		}

		c.Locals("section", section)
		return c.Next()
	}
}

// SectionContentType validates the :section/:type route parameters
func SectionContentType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		section := strings.TrimSpace(c.Params("section"))
		if !models.ValidContentSection(section) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown content section!", nil)
		}

		contentType := strings.TrimSpace(c.Params("type"))
		if !models.ValidContentType(contentType) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown content type!", nil)
		}

		c.Locals("section", section)
		c.Locals("contentType", contentType)
		return c.Next()
	}
}

// ContentID validates the :id route parameter
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || contentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("contentID", contentID)
		return c.Next()
	}
}

// CreateContent validates a content creation body
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.ValidContentSection(reqData.Section) {
			errors["section"] = "Unknown content section!"
		}
		if !models.ValidContentType(reqData.Type) {
			errors["type"] = "Unknown content type!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// UpdateContent validates a partial content update body
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Section != "" && !models.ValidContentSection(reqData.Section) {
			errors["section"] = "Unknown content section!"
		}
		if reqData.Type != "" && !models.ValidContentType(reqData.Type) {
			errors["type"] = "Unknown content type!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}

// AdminContentList validates the admin content listing query
func AdminContentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Section string `query:"section"`
			Type    string `query:"type"`
			Page    int    `query:"page"`
			Limit   int    `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Section != "" && !models.ValidContentSection(reqData.Section) {
			errors["section"] = "Unknown content section!"
		}
		if reqData.Type != "" && !models.ValidContentType(reqData.Type) {
			errors["type"] = "Unknown content type!"
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

		c.Locals("validatedContentList", reqData)
		return c.Next()
	}
}
