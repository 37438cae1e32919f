package aiValidator

import (
	"avacademy/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Chat validates the assistant chat body
func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
			Context string `json:"context"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Message) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Message is required!", nil)
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}

// Suggest validates the content suggestion body
func Suggest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type    string `json:"type"`
			Topic   string `json:"topic"`
			Section string `json:"section"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Topic) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic is required!", nil)
		}

		c.Locals("validatedSuggest", reqData)
		return c.Next()
	}
}
