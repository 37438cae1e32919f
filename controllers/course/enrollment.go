package controllers

import (
	"avacademy/database"
	"avacademy/middleware"
	"avacademy/models"
	courseModels "avacademy/models/course"
	"avacademy/utils"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollInCourse creates at most one enrollment per (user, course). The
// enrollment row and the course counter are written in a single transaction;
// the unique index on (user_id, course_id) closes the race the existence
// check alone would leave open.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Enrollment requires a published course; missing and unpublished look
	// the same to the caller.
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   uint(courseID),
		EnrolledAt: time.Now(),
		Progress:   0,
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Course{}).
			Where("id = ?", courseID).
			UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + 1")).Error
	})
	if err != nil {
		// A concurrent enroll for the same pair trips the unique index here.
		log.Printf("Enrollment failed for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course!", nil)
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// MarkLessonComplete records a lesson completion and returns the recomputed
// progress. Re-marking a completed lesson is a no-op, not an error.
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Not enrolled in this course!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// Atomic add-to-set: the unique index plus DO NOTHING keeps concurrent
	// completions of the same lesson from inserting twice.
	completion := courseModels.LessonCompletion{
		UserID:   userID,
		LessonID: uint(lessonID),
		CourseID: uint(courseID),
	}
	if err := database.Database.Db.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
	}

	progress, err := recomputeProgress(database.Database.Db, userID, uint(courseID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", fiber.Map{
		"progress": progress,
	})
}

// recomputeProgress rewrites the enrollment's progress as
// round(100 * completedLessons / totalLessons). The denominator is the live
// lesson count, so progress drops when lessons are added to the course later.
func recomputeProgress(db *gorm.DB, userID, courseID uint) (int, error) {
	total, err := courseModels.CountLessons(db, courseID)
	if err != nil {
		return 0, err
	}

	var completed int64
	if err := db.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&completed).Error; err != nil {
		return 0, err
	}

	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(completed) / float64(total) * 100))
	}

	err = db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		UpdateColumn("progress", progress).Error
	return progress, err
}

// GetUserEnrollments lists the caller's enrollments with course summaries
func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").
		Order("enrolled_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// GetCourseProgress returns the caller's stored progress for one course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}

	var completions []courseModels.LessonCompletion
	database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&completions)

	completedIDs := make([]uint, len(completions))
	for i, cc := range completions {
		completedIDs[i] = cc.LessonID
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":          enrollment.Progress,
		"completed_lessons": completedIDs,
		"enrolled_at":       enrollment.EnrolledAt,
	})
}
