package contentController

import (
	"avacademy/database"
	"avacademy/middleware"
	"avacademy/models"
	contentValidator "avacademy/validators/content"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetSectionContent returns published content items for one section
func GetSectionContent(c *fiber.Ctx) error {
	section := c.Locals("section").(string)

	db := database.Database.Db.
		Where("section = ? AND is_published = ? AND is_deleted = ?", section, true, false)

	// Type comes from the /:section/:type route when present, else from ?type=
	contentType := c.Query("type")
	if typed, ok := c.Locals("contentType").(string); ok {
		contentType = typed
	}
	if contentType != "" {
		db = db.Where("type = ?", contentType)
	}

	var items []models.Content
	if err := db.Order("order_index asc, created_at desc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", fiber.Map{
		"content": items,
	})
}

// AdminCreateContent creates a content record
func AdminCreateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*contentValidator.ContentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	content := models.Content{
		Section:        reqData.Section,
		Type:           reqData.Type,
		Title:          reqData.Title,
		Subtitle:       reqData.Subtitle,
		Body:           reqData.Body,
		ImageURL:       reqData.ImageURL,
		VideoURL:       reqData.VideoURL,
		SeoTitle:       reqData.SeoTitle,
		SeoDescription: reqData.SeoDescription,
		Keywords:       reqData.Keywords,
		IsPublished:    true,
		AuthorID:       userID,
	}
	if reqData.OrderIndex != nil {
		content.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		content.IsPublished = *reqData.IsPublished
	}
	if content.IsPublished {
		now := time.Now()
		content.PublishedAt = &now
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// AdminUpdateContent patches a content record
func AdminUpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var content models.Content
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*contentValidator.ContentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Section != "" {
		content.Section = reqData.Section
	}
	if reqData.Type != "" {
		content.Type = reqData.Type
	}
	if reqData.Title != "" {
		content.Title = reqData.Title
	}
	if reqData.Subtitle != "" {
		content.Subtitle = reqData.Subtitle
	}
	if reqData.Body != "" {
		content.Body = reqData.Body
	}
	if reqData.ImageURL != "" {
		content.ImageURL = reqData.ImageURL
	}
	if reqData.VideoURL != "" {
		content.VideoURL = reqData.VideoURL
	}
	if reqData.SeoTitle != "" {
		content.SeoTitle = reqData.SeoTitle
	}
	if reqData.SeoDescription != "" {
		content.SeoDescription = reqData.SeoDescription
	}
	if reqData.Keywords != "" {
		content.Keywords = reqData.Keywords
	}
	if reqData.OrderIndex != nil {
		content.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		content.IsPublished = *reqData.IsPublished
		if content.IsPublished && content.PublishedAt == nil {
			now := time.Now()
			content.PublishedAt = &now
		}
	}

	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// AdminDeleteContent soft deletes a content record
func AdminDeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	var content models.Content
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

// AdminGetAllContent lists content records for management, drafts included
func AdminGetAllContent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContentList").(*struct {
		Section string `query:"section"`
		Type    string `query:"type"`
		Page    int    `query:"page"`
		Limit   int    `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.Content{}).Where("is_deleted = ?", false)

	if reqData.Section != "" {
		db = db.Where("section = ?", reqData.Section)
	}
	if reqData.Type != "" {
		db = db.Where("type = ?", reqData.Type)
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var items []models.Content
	if err := db.Offset(offset).Limit(reqData.Limit).
		Order("section asc, order_index asc, created_at desc").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", fiber.Map{
		"content": items,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}
