package controllers

import (
	"avacademy/database"
	"avacademy/middleware"
	courseModels "avacademy/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists published courses for the public catalog
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Category string `query:"category"`
		Level    string `query:"level"`
		Search   string `query:"search"`
		Page     int    `query:"page"`
		Limit    int    `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_published = ? AND is_deleted = ?", true, false)

	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Level != "" {
		db = db.Where("level = ?", reqData.Level)
	}
	if reqData.Search != "" {
		pattern := "%" + strings.ToLower(reqData.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?", pattern, pattern, pattern)
	}

	// Get total count
	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(reqData.Limit).
		Order("is_featured desc, created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetFeaturedCourses returns up to 6 featured published courses
func GetFeaturedCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("is_published = ? AND is_featured = ? AND is_deleted = ?", true, true, false).
		Limit(6).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch featured courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails returns a single published course with its module tree.
// Unpublished courses 404 here regardless of caller; admin retrieval of
// drafts goes through the admin listing instead.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}
