package controllers

import (
	"avacademy/database"
	"avacademy/middleware"
	courseModels "avacademy/models/course"
	"avacademy/utils"
	courseValidator "avacademy/validators/course"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// insertModuleTree creates the module/lesson rows for a course submission
func insertModuleTree(tx *gorm.DB, courseID uint, modules []courseValidator.ModulePayload) error {
	for _, modPayload := range modules {
		module := courseModels.Module{
			CourseID:    courseID,
			Title:       modPayload.Title,
			Description: modPayload.Description,
			OrderIndex:  modPayload.OrderIndex,
			IsPublished: true,
		}
		if modPayload.IsPublished != nil {
			module.IsPublished = *modPayload.IsPublished
		}
		if err := tx.Create(&module).Error; err != nil {
			return err
		}

		for _, lessonPayload := range modPayload.Lessons {
			lesson := courseModels.Lesson{
				ModuleID:    module.ID,
				CourseID:    courseID,
				Title:       lessonPayload.Title,
				Description: lessonPayload.Description,
				Content:     lessonPayload.Content,
				VideoURL:    lessonPayload.VideoURL,
				Resources:   lessonPayload.Resources,
				Duration:    lessonPayload.Duration,
				OrderIndex:  lessonPayload.OrderIndex,
				IsPublished: true,
			}
			if lessonPayload.IsPublished != nil {
				lesson.IsPublished = *lessonPayload.IsPublished
			}
			if err := tx.Create(&lesson).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// softDeleteModuleTree marks a course's current modules and lessons deleted
func softDeleteModuleTree(tx *gorm.DB, courseID uint) error {
	if err := tx.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		UpdateColumn("is_deleted", true).Error; err != nil {
		return err
	}
	return tx.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		UpdateColumn("is_deleted", true).Error
}

// AdminCreateCourse creates a course, optionally with its full module tree
func AdminCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		ShortDescription: reqData.ShortDescription,
		Thumbnail:        reqData.Thumbnail,
		Category:         reqData.Category,
		Level:            reqData.Level,
		InstructorName:   reqData.InstructorName,
		InstructorBio:    reqData.InstructorBio,
		InstructorAvatar: reqData.InstructorAvatar,
		Tags:             strings.Join(reqData.Tags, ","),
		Prerequisites:    strings.Join(reqData.Prerequisites, ","),
		LearningOutcomes: strings.Join(reqData.LearningOutcomes, ","),
		AuthorID:         userID,
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.IsPublished != nil && *reqData.IsPublished {
		course.MarkPublished()
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		return insertModuleTree(tx, course.ID, reqData.Modules)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	// Duration is derived from the lesson tree, never taken from the client
	if _, err := courseModels.RecalculateDuration(database.Database.Db, course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute course duration!", nil)
	}

	database.Database.Db.
		Preload("Modules", "is_deleted = ?", false).
		Preload("Modules.Lessons", "is_deleted = ?", false).
		First(&course, course.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse patches course fields; a provided modules array replaces
// the whole module/lesson tree.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.ShortDescription != "" {
		course.ShortDescription = reqData.ShortDescription
	}
	if reqData.Thumbnail != "" {
		course.Thumbnail = reqData.Thumbnail
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.InstructorName != "" {
		course.InstructorName = reqData.InstructorName
	}
	if reqData.InstructorBio != "" {
		course.InstructorBio = reqData.InstructorBio
	}
	if reqData.InstructorAvatar != "" {
		course.InstructorAvatar = reqData.InstructorAvatar
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Tags != nil {
		course.Tags = strings.Join(reqData.Tags, ",")
	}
	if reqData.Prerequisites != nil {
		course.Prerequisites = strings.Join(reqData.Prerequisites, ",")
	}
	if reqData.LearningOutcomes != nil {
		course.LearningOutcomes = strings.Join(reqData.LearningOutcomes, ",")
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.IsPublished != nil {
		if *reqData.IsPublished {
			// PublishedAt is stamped on the first publish and never moves
			course.MarkPublished()
		} else {
			course.IsPublished = false
		}
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&course).Error; err != nil {
			return err
		}
		if reqData.Modules != nil {
			if err := softDeleteModuleTree(tx, course.ID); err != nil {
				return err
			}
			return insertModuleTree(tx, course.ID, reqData.Modules)
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if _, err := courseModels.RecalculateDuration(database.Database.Db, course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute course duration!", nil)
	}

	database.Database.Db.
		Preload("Modules", "is_deleted = ?", false).
		Preload("Modules.Lessons", "is_deleted = ?", false).
		First(&course, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course and its module tree
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := softDeleteModuleTree(tx, course.ID); err != nil {
			return err
		}
		course.IsDeleted = true
		return tx.Save(&course).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists all courses, drafts included
func AdminGetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminCourseList").(*struct {
		Category string `query:"category"`
		Status   string `query:"status"`
		Page     int    `query:"page"`
		Limit    int    `query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)

	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Status == "published" {
		db = db.Where("is_published = ?", true)
	} else if reqData.Status == "draft" {
		db = db.Where("is_published = ?", false)
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// AdminGetCourseDetails returns one course, draft or published
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", courseID, false).
		Preload("Modules", "is_deleted = ?", false).
		Preload("Modules.Lessons", "is_deleted = ?", false).
		First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}

// AdminUploadThumbnail stores a thumbnail image and attaches it to the course
func AdminUploadThumbnail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, "./public/uploads")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
	}

	course.Thumbnail = utils.GetFileURL(filename)
	if err := database.Database.Db.Model(&course).UpdateColumn("thumbnail", course.Thumbnail).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded successfully!", fiber.Map{
		"thumbnail": course.Thumbnail,
	})
}
