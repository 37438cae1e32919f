package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"avacademy/config"
	"avacademy/database"
	"avacademy/middleware"
	"avacademy/models"
	courseModels "avacademy/models/course"
	courseRoutes "avacademy/routers/courseRoutes"
	userRoutes "avacademy/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupApp builds a fresh in-memory database and a fiber app with the
// course and user routes registered in the same order as main.go.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	return app
}

func createTestUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

// createTestCourse creates a published course with two modules of two
// lessons each (durations 10/20 and 30/40) and recomputes its duration.
func createTestCourse(t *testing.T, title string) courseModels.Course {
	t.Helper()
	db := database.Database.Db

	course := courseModels.Course{
		Title:       title,
		Description: "Test course description",
		Category:    "aviation-basics",
		Level:       "beginner",
	}
	course.MarkPublished()
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create test course: %v", err)
	}

	durations := [][]int{{10, 20}, {30, 40}}
	for i, moduleDurations := range durations {
		module := courseModels.Module{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("Module %d", i+1),
			OrderIndex:  i,
			IsPublished: true,
		}
		if err := db.Create(&module).Error; err != nil {
			t.Fatalf("failed to create test module: %v", err)
		}
		for j, d := range moduleDurations {
			lesson := courseModels.Lesson{
				ModuleID:    module.ID,
				CourseID:    course.ID,
				Title:       fmt.Sprintf("Lesson %d.%d", i+1, j+1),
				Duration:    d,
				OrderIndex:  j,
				IsPublished: true,
			}
			if err := db.Create(&lesson).Error; err != nil {
				t.Fatalf("failed to create test lesson: %v", err)
			}
		}
	}

	if _, err := courseModels.RecalculateDuration(db, course.ID); err != nil {
		t.Fatalf("failed to recalculate duration: %v", err)
	}

	if err := db.First(&course, course.ID).Error; err != nil {
		t.Fatalf("failed to reload course: %v", err)
	}
	return course
}

func courseLessons(t *testing.T, courseID uint) []courseModels.Lesson {
	t.Helper()
	var lessons []courseModels.Lesson
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("module_id asc, order_index asc").
		Find(&lessons).Error; err != nil {
		t.Fatalf("failed to load lessons: %v", err)
	}
	return lessons
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp.StatusCode, parsed
}

func dataField(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response data is not an object: %v", body["data"])
	}
	return data
}

func reloadCourse(t *testing.T, id uint) courseModels.Course {
	t.Helper()
	var course courseModels.Course
	if err := database.Database.Db.First(&course, id).Error; err != nil {
		t.Fatalf("failed to reload course %d: %v", id, err)
	}
	return course
}
