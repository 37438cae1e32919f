package userValidator

import (
	"avacademy/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserList validates the admin user listing query
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Search string `query:"search"`
			Role   string `query:"role"`
			Page   int    `query:"page"`
			Limit  int    `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Role != "" && reqData.Role != "user" && reqData.Role != "editor" && reqData.Role != "admin" {
			errors["role"] = "Unknown role!"
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

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}

// UserID validates the :id route parameter
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", userID)
		return c.Next()
	}
}

// UpdateRole validates a role change body
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Role != "user" && reqData.Role != "editor" && reqData.Role != "admin" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role!", nil)
		}

		c.Locals("targetUserID", userID)
		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}
