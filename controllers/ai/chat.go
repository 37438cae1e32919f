package aiController

import (
	"avacademy/middleware"
	"avacademy/utils"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const assistantSystemPrompt = `You are an AI assistant for a premium aviation platform. You help users with:

1. Platform navigation and features
2. Aviation industry knowledge
3. AI tools and technology in aviation
4. Course recommendations and learning paths
5. General aviation questions

Context about the platform:
- Section 1: Company Profile - showcases the aviation media company, vision, mission, team, and clients
- Section 2: AvTech - focuses on AI and technology solutions for aviation professionals
- Section 3: Digital Academy - comprehensive LMS with aviation courses

Be professional, concise, and helpful. Use aviation terminology appropriately.`

// Chat proxies a user message plus page context to the chat-completion provider
func Chat(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChat").(*struct {
		Message string `json:"message"`
		Context string `json:"context"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	systemPrompt := assistantSystemPrompt
	if reqData.Context != "" {
		systemPrompt += "\n\nAdditional context: " + reqData.Context
	}

	messages := []utils.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: reqData.Message},
	}

	reply, err := utils.ChatCompletion(messages, 500, 0.7)
	if err != nil {
		if errors.Is(err, utils.ErrAINotConfigured) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "AI assistant is currently unavailable. Please try again later.", nil)
		}
		if errors.Is(err, utils.ErrAIQuotaExceeded) {
			return middleware.JsonResponse(c, fiber.StatusTooManyRequests, false, "AI service temporarily unavailable. Please try again later.", nil)
		}
		log.Printf("AI chat error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "AI assistant is currently unavailable. Please try again later.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply generated successfully!", fiber.Map{
		"response": reply,
	})
}

// Suggest generates short content suggestions for the admin editor
func Suggest(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSuggest").(*struct {
		Type    string `json:"type"`
		Topic   string `json:"topic"`
		Section string `json:"section"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	prompt := fmt.Sprintf(`Generate professional content suggestions for an aviation platform:

Type: %s
Topic: %s
Section: %s

Provide 3 concise, professional suggestions that align with aviation industry standards.`, reqData.Type, reqData.Topic, reqData.Section)

	messages := []utils.ChatMessage{
		{Role: "user", Content: prompt},
	}

	reply, err := utils.ChatCompletion(messages, 300, 0.8)
	if err != nil {
		if errors.Is(err, utils.ErrAINotConfigured) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Suggestion service unavailable", nil)
		}
		log.Printf("AI suggest error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Suggestion service unavailable", nil)
	}

	var suggestions []string
	for _, line := range strings.Split(reply, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			suggestions = append(suggestions, trimmed)
		}
		if len(suggestions) == 3 {
			break
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggestions generated successfully!", fiber.Map{
		"suggestions": suggestions,
	})
}
