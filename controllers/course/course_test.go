package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"avacademy/database"
	courseModels "avacademy/models/course"

	"github.com/stretchr/testify/assert"
)

func courseTitles(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	list, ok := dataField(t, body)["courses"].([]interface{})
	if !ok {
		t.Fatalf("courses is not a list")
	}
	titles := make([]string, len(list))
	for i, item := range list {
		titles[i] = item.(map[string]interface{})["title"].(string)
	}
	return titles
}

func TestListCoursesExcludesDrafts(t *testing.T) {
	app := setupApp(t)

	createTestCourse(t, "Published One")
	createTestCourse(t, "Published Two")

	draft := courseModels.Course{
		Title:       "Hidden Draft",
		Description: "Not public yet",
		Category:    "safety",
	}
	if err := database.Database.Db.Create(&draft).Error; err != nil {
		t.Fatalf("failed to create draft: %v", err)
	}

	status, body := doRequest(t, app, http.MethodGet, "/api/courses/", "", nil)
	assert.Equal(t, http.StatusOK, status)

	titles := courseTitles(t, body)
	assert.Len(t, titles, 2)
	assert.NotContains(t, titles, "Hidden Draft")

	pagination := dataField(t, body)["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["total"])
}

func TestListCoursesSearch(t *testing.T) {
	app := setupApp(t)

	createTestCourse(t, "Radio Communication Basics")
	createTestCourse(t, "Jet Engine Maintenance")

	status, body := doRequest(t, app, http.MethodGet, "/api/courses/?search=RADIO", "", nil)
	assert.Equal(t, http.StatusOK, status)

	titles := courseTitles(t, body)
	assert.Equal(t, []string{"Radio Communication Basics"}, titles)
}

func TestListCoursesCategoryFilter(t *testing.T) {
	app := setupApp(t)

	createTestCourse(t, "Basics Course")

	other := courseModels.Course{
		Title:       "Safety Course",
		Description: "About safety",
		Category:    "safety",
	}
	other.MarkPublished()
	if err := database.Database.Db.Create(&other).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}

	status, body := doRequest(t, app, http.MethodGet, "/api/courses/?category=safety", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"Safety Course"}, courseTitles(t, body))

	// Unknown categories are rejected, not silently ignored
	status, _ = doRequest(t, app, http.MethodGet, "/api/courses/?category=cooking", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestFeaturedCourses(t *testing.T) {
	app := setupApp(t)

	featured := createTestCourse(t, "Featured Course")
	database.Database.Db.Model(&courseModels.Course{}).
		Where("id = ?", featured.ID).UpdateColumn("is_featured", true)
	createTestCourse(t, "Regular Course")

	status, body := doRequest(t, app, http.MethodGet, "/api/courses/featured", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"Featured Course"}, courseTitles(t, body))
}

func TestCourseDetails(t *testing.T) {
	app := setupApp(t)
	course := createTestCourse(t, "Detailed Course")

	status, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d", course.ID), "", nil)
	assert.Equal(t, http.StatusOK, status)

	data := dataField(t, body)
	assert.Equal(t, "Detailed Course", data["title"])
	assert.EqualValues(t, 100, data["duration"])

	modules, ok := data["modules"].([]interface{})
	if !ok {
		t.Fatalf("modules is not a list")
	}
	assert.Len(t, modules, 2)
	firstModule := modules[0].(map[string]interface{})
	lessons := firstModule["lessons"].([]interface{})
	assert.Len(t, lessons, 2)
}

func TestCourseDetailsHidesDrafts(t *testing.T) {
	app := setupApp(t)

	draft := courseModels.Course{
		Title:       "Secret Draft",
		Description: "Work in progress",
		Category:    "technology",
	}
	if err := database.Database.Db.Create(&draft).Error; err != nil {
		t.Fatalf("failed to create draft: %v", err)
	}

	status, _ := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/courses/%d", draft.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/courses/424242", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
