package adminController

import (
	"avacademy/database"
	"avacademy/middleware"
	"avacademy/models"
	courseModels "avacademy/models/course"
	adminValidator "avacademy/validators/admin"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type categoryStat struct {
	Category         string `json:"category"`
	Count            int64  `json:"count"`
	TotalEnrollments int64  `json:"total_enrollments"`
}

type monthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// AdminDashboardStats aggregates the dashboard counters
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, activeUsers, totalCourses, publishedCourses, totalContent, totalEnrollments int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND is_active = ?", false, true).Count(&activeUsers)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)
	db.Model(&models.Content{}).Where("is_deleted = ?", false).Count(&totalContent)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	// Monthly registrations for the last 6 months, bucketed in Go so the
	// query stays portable across drivers.
	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	var recentCreatedAt []time.Time
	db.Model(&models.User{}).
		Where("is_deleted = ? AND created_at >= ?", false, sixMonthsAgo).
		Order("created_at asc").
		Pluck("created_at", &recentCreatedAt)

	buckets := make(map[string]int64)
	var order []string
	for _, ts := range recentCreatedAt {
		key := ts.Format("2006-01")
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key]++
	}
	monthlyUsers := make([]monthlyCount, 0, len(order))
	for _, key := range order {
		monthlyUsers = append(monthlyUsers, monthlyCount{Month: key, Count: buckets[key]})
	}

	// Published course counts and enrollments per category
	var courseStats []categoryStat
	db.Model(&courseModels.Course{}).
		Select("category, COUNT(*) as count, COALESCE(SUM(enrollment_count), 0) as total_enrollments").
		Where("is_deleted = ? AND is_published = ?", false, true).
		Group("category").
		Scan(&courseStats)

	var recentUsers []models.User
	db.Select("id", "name", "email", "created_at").
		Where("is_deleted = ?", false).
		Order("created_at desc").Limit(5).Find(&recentUsers)

	var recentCourses []courseModels.Course
	db.Select("id", "title", "category", "created_at").
		Where("is_deleted = ?", false).
		Order("created_at desc").Limit(5).Find(&recentCourses)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"overview": fiber.Map{
			"total_users":       totalUsers,
			"active_users":      activeUsers,
			"total_courses":     totalCourses,
			"published_courses": publishedCourses,
			"total_content":     totalContent,
			"total_enrollments": totalEnrollments,
		},
		"charts": fiber.Map{
			"monthly_users": monthlyUsers,
			"course_stats":  courseStats,
		},
		"recent": fiber.Map{
			"users":   recentUsers,
			"courses": recentCourses,
		},
	})
}

// AdminBulkAction applies one action to a batch of users, courses or content
// records and reports the affected row count.
func AdminBulkAction(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBulkAction").(*adminValidator.BulkActionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	var affected int64

	switch reqData.Type {
	case "users":
		switch reqData.Action {
		case "activate":
			result := db.Model(&models.User{}).
				Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
				UpdateColumn("is_active", true)
			if result.Error != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
			affected = result.RowsAffected
		case "deactivate":
			result := db.Model(&models.User{}).
				Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
				UpdateColumn("is_active", false)
			if result.Error != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
			affected = result.RowsAffected
		case "delete":
			// Deleting a user also retires their enrollments; that is the one
			// path where a course's enrollment figure can legitimately shrink,
			// picked up by the nightly reconciler rather than decremented here.
			err := db.Transaction(func(tx *gorm.DB) error {
				result := tx.Model(&models.User{}).
					Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
					UpdateColumn("is_deleted", true)
				if result.Error != nil {
					return result.Error
				}
				affected = result.RowsAffected
				return tx.Model(&courseModels.Enrollment{}).
					Where("user_id IN ? AND is_deleted = ?", reqData.IDs, false).
					UpdateColumn("is_deleted", true).Error
			})
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
		}

	case "courses":
		switch reqData.Action {
		case "publish":
			// Stamp published_at only where it was never set
			db.Model(&courseModels.Course{}).
				Where("id IN ? AND is_deleted = ? AND published_at IS NULL", reqData.IDs, false).
				UpdateColumn("published_at", time.Now())
			result := db.Model(&courseModels.Course{}).
				Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
				UpdateColumn("is_published", true)
			if result.Error != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
			affected = result.RowsAffected
		case "unpublish":
			result := db.Model(&courseModels.Course{}).
				Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
				UpdateColumn("is_published", false)
			if result.Error != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
			affected = result.RowsAffected
		case "delete":
			err := db.Transaction(func(tx *gorm.DB) error {
				result := tx.Model(&courseModels.Course{}).
					Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
					UpdateColumn("is_deleted", true)
				if result.Error != nil {
					return result.Error
				}
				affected = result.RowsAffected
				if err := tx.Model(&courseModels.Lesson{}).
					Where("course_id IN ? AND is_deleted = ?", reqData.IDs, false).
					UpdateColumn("is_deleted", true).Error; err != nil {
					return err
				}
				return tx.Model(&courseModels.Module{}).
					Where("course_id IN ? AND is_deleted = ?", reqData.IDs, false).
					UpdateColumn("is_deleted", true).Error
			})
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
		}

	case "content":
		switch reqData.Action {
		case "publish":
			db.Model(&models.Content{}).
				Where("id IN ? AND is_deleted = ? AND published_at IS NULL", reqData.IDs, false).
				UpdateColumn("published_at", time.Now())
			result := db.Model(&models.Content{}).
				Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
				UpdateColumn("is_published", true)
			if result.Error != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
			affected = result.RowsAffected
		case "unpublish":
			result := db.Model(&models.Content{}).
				Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
				UpdateColumn("is_published", false)
			if result.Error != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
			affected = result.RowsAffected
		case "delete":
			result := db.Model(&models.Content{}).
				Where("id IN ? AND is_deleted = ?", reqData.IDs, false).
				UpdateColumn("is_deleted", true)
			if result.Error != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Bulk action failed!", nil)
			}
			affected = result.RowsAffected
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulk "+reqData.Action+" completed successfully!", fiber.Map{
		"affected": affected,
	})
}
