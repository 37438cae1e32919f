package aiController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"avacademy/config"
	aiRoutes "avacademy/routers/aiRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	// The assistant must degrade cleanly when no API key is present
	config.AppConfig.OpenAIKey = ""

	app := fiber.New()
	aiRoutes.SetupAiRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp.StatusCode, parsed
}

func TestChatRequiresMessage(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, "/api/ai/chat", map[string]interface{}{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Message is required!", body["message"])
}

func TestChatUnavailableWithoutKey(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, "/api/ai/chat", map[string]interface{}{
		"message": "What courses do you offer?",
	})
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, false, body["status"])
}

func TestSuggestRequiresTopic(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, "/api/ai/suggest", map[string]interface{}{"type": "hero"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Topic is required!", body["message"])
}

func TestSuggestUnavailableWithoutKey(t *testing.T) {
	app := setupApp(t)

	status, _ := doRequest(t, app, "/api/ai/suggest", map[string]interface{}{
		"type":  "hero",
		"topic": "pilot training",
	})
	assert.Equal(t, http.StatusServiceUnavailable, status)
}
