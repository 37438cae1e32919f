package contentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"avacademy/config"
	"avacademy/database"
	"avacademy/middleware"
	"avacademy/models"
	contentRoutes "avacademy/routers/contentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	contentRoutes.SetupContentRoutes(app)
	return app
}

func createTestUser(t *testing.T, email, role string) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Name:     "Tester",
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
	return token
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

func contentPayload(section, contentType, title string) map[string]interface{} {
	return map[string]interface{}{
		"section": section,
		"type":    contentType,
		"title":   title,
		"body":    "Body text for " + title,
	}
}

func TestGetSectionContent(t *testing.T) {
	app := setupApp(t)
	token := createTestUser(t, "editor@test.com", "editor")

	doRequest(t, app, http.MethodPost, "/api/content/", token, contentPayload("company", "hero", "Hero Block"))
	doRequest(t, app, http.MethodPost, "/api/content/", token, contentPayload("company", "vision", "Vision Block"))
	doRequest(t, app, http.MethodPost, "/api/content/", token, contentPayload("academy", "hero", "Academy Hero"))

	// Draft content never shows up publicly
	draft := contentPayload("company", "about", "Draft Block")
	draft["is_published"] = false
	doRequest(t, app, http.MethodPost, "/api/content/", token, draft)

	status, body := doRequest(t, app, http.MethodGet, "/api/content/company", "", nil)
	assert.Equal(t, http.StatusOK, status)

	items := body["data"].(map[string]interface{})["content"].([]interface{})
	assert.Len(t, items, 2)

	// Type filter narrows within the section
	status, body = doRequest(t, app, http.MethodGet, "/api/content/company?type=hero", "", nil)
	assert.Equal(t, http.StatusOK, status)
	items = body["data"].(map[string]interface{})["content"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Hero Block", items[0].(map[string]interface{})["title"])

	// The dedicated /:section/:type route answers the same question
	status, body = doRequest(t, app, http.MethodGet, "/api/content/company/hero", "", nil)
	assert.Equal(t, http.StatusOK, status)
	items = body["data"].(map[string]interface{})["content"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Hero Block", items[0].(map[string]interface{})["title"])

	// Unknown section or type is rejected
	status, _ = doRequest(t, app, http.MethodGet, "/api/content/marketing", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/content/company/banner", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDraftContentStoredAsDraft(t *testing.T) {
	app := setupApp(t)
	token := createTestUser(t, "editor@test.com", "editor")

	draft := contentPayload("company", "about", "Still Writing")
	draft["is_published"] = false

	status, body := doRequest(t, app, http.MethodPost, "/api/content/", token, draft)
	assert.Equal(t, http.StatusCreated, status)
	id := uint(body["data"].(map[string]interface{})["ID"].(float64))

	// The explicit false must survive the insert, not fall back to a
	// column default
	var stored models.Content
	if err := database.Database.Db.First(&stored, id).Error; err != nil {
		t.Fatalf("failed to reload content: %v", err)
	}
	assert.False(t, stored.IsPublished)
	assert.Nil(t, stored.PublishedAt)
}

func TestContentRoleGate(t *testing.T) {
	app := setupApp(t)
	userToken := createTestUser(t, "user@test.com", "user")

	payload := contentPayload("company", "hero", "Blocked")

	status, _ := doRequest(t, app, http.MethodPost, "/api/content/", "", payload)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/content/", userToken, payload)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestContentValidation(t *testing.T) {
	app := setupApp(t)
	token := createTestUser(t, "editor@test.com", "editor")

	status, body := doRequest(t, app, http.MethodPost, "/api/content/", token, map[string]interface{}{
		"section": "nope",
		"type":    "banner",
		"title":   "",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "section")
	assert.Contains(t, errors, "type")
	assert.Contains(t, errors, "title")
}

func TestUpdateContentKeepsPublishTimestamp(t *testing.T) {
	app := setupApp(t)
	token := createTestUser(t, "admin@test.com", "admin")

	status, body := doRequest(t, app, http.MethodPost, "/api/content/", token, contentPayload("global", "metrics", "Fleet Size"))
	assert.Equal(t, http.StatusCreated, status)
	id := uint(body["data"].(map[string]interface{})["ID"].(float64))

	var created models.Content
	database.Database.Db.First(&created, id)
	if created.PublishedAt == nil {
		t.Fatalf("published_at not stamped on publish")
	}
	stamped := *created.PublishedAt

	time.Sleep(10 * time.Millisecond)

	path := fmt.Sprintf("/api/content/%d", id)
	doRequest(t, app, http.MethodPut, path, token, map[string]interface{}{"is_published": false})
	status, _ = doRequest(t, app, http.MethodPut, path, token, map[string]interface{}{"is_published": true})
	assert.Equal(t, http.StatusOK, status)

	var updated models.Content
	database.Database.Db.First(&updated, id)
	assert.True(t, updated.IsPublished)
	if updated.PublishedAt == nil {
		t.Fatalf("published_at lost on republish")
	}
	assert.True(t, stamped.Equal(*updated.PublishedAt), "published_at moved on republish")
}

func TestDeleteContent(t *testing.T) {
	app := setupApp(t)
	token := createTestUser(t, "admin@test.com", "admin")

	status, body := doRequest(t, app, http.MethodPost, "/api/content/", token, contentPayload("avtech", "services", "Radar Suite"))
	assert.Equal(t, http.StatusCreated, status)
	id := uint(body["data"].(map[string]interface{})["ID"].(float64))

	path := fmt.Sprintf("/api/content/%d", id)
	status, _ = doRequest(t, app, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/content/avtech", "", nil)
	assert.Equal(t, http.StatusOK, status)
	items := body["data"].(map[string]interface{})["content"].([]interface{})
	assert.Len(t, items, 0)

	status, _ = doRequest(t, app, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdminContentListIncludesDrafts(t *testing.T) {
	app := setupApp(t)
	token := createTestUser(t, "admin@test.com", "admin")

	doRequest(t, app, http.MethodPost, "/api/content/", token, contentPayload("company", "hero", "Live"))
	draft := contentPayload("company", "about", "Draft")
	draft["is_published"] = false
	doRequest(t, app, http.MethodPost, "/api/content/", token, draft)

	status, body := doRequest(t, app, http.MethodGet, "/api/admin/content/", token, nil)
	assert.Equal(t, http.StatusOK, status)

	items := body["data"].(map[string]interface{})["content"].([]interface{})
	assert.Len(t, items, 2)

	status, body = doRequest(t, app, http.MethodGet, "/api/admin/content/?section=company&type=about", token, nil)
	assert.Equal(t, http.StatusOK, status)
	items = body["data"].(map[string]interface{})["content"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "Draft", items[0].(map[string]interface{})["title"])
}
