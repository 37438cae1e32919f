package userController

import (
	"avacademy/database"
	"avacademy/middleware"
	"avacademy/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers lists/searches users for the admin dashboard
func GetAllUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*struct {
		Search string `query:"search"`
		Role   string `query:"role"`
		Page   int    `query:"page"`
		Limit  int    `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	if reqData.Search != "" {
		pattern := "%" + strings.ToLower(reqData.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if reqData.Role != "" {
		db = db.Where("role = ?", reqData.Role)
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var users []models.User
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// UpdateUserRole changes a user's role
func UpdateUserRole(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)
	role := c.Locals("validatedRole").(string)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = role
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}

// ToggleUserStatus flips a user's active flag
func ToggleUserStatus(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsActive = !user.IsActive
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}

	message := "User deactivated successfully!"
	if user.IsActive {
		message = "User activated successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, user)
}
