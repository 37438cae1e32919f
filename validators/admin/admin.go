package adminValidator

import (
	"avacademy/middleware"

	"github.com/gofiber/fiber/v2"
)

var bulkActions = map[string][]string{
	"users":   {"activate", "deactivate", "delete"},
	"courses": {"publish", "unpublish", "delete"},
	"content": {"publish", "unpublish", "delete"},
}

// BulkActionPayload is the admin bulk operation body
type BulkActionPayload struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	IDs    []uint `json:"ids"`
}

// BulkAction validates a bulk operation request
func BulkAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BulkActionPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Action == "" || reqData.Type == "" || len(reqData.IDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid bulk action parameters!", nil)
		}

		actions, ok := bulkActions[reqData.Type]
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid bulk action type!", nil)
		}

		valid := false
		for _, a := range actions {
			if a == reqData.Action {
				valid = true
				break
			}
		}
		if !valid {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid bulk action!", nil)
		}

		c.Locals("validatedBulkAction", reqData)
		return c.Next()
	}
}
