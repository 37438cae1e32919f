package utils

import (
	"avacademy/config"
	"errors"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrAINotConfigured is returned when no API key is set
	ErrAINotConfigured = errors.New("ai provider not configured")
	// ErrAIQuotaExceeded is returned when the provider reports exhausted quota
	ErrAIQuotaExceeded = errors.New("ai provider quota exceeded")
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// ChatCompletion sends messages to the configured chat-completion provider
// and returns the generated reply text.
func ChatCompletion(messages []ChatMessage, maxTokens int, temperature float64) (string, error) {
	if config.AppConfig.OpenAIKey == "" {
		return "", ErrAINotConfigured
	}

	reqBody := chatCompletionRequest{
		Model:       config.AppConfig.OpenAIModel,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	var result chatCompletionResponse

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(config.AppConfig.OpenAIKey).
		SetBody(reqBody).
		SetResult(&result).
		SetError(&result).
		Post(config.AppConfig.OpenAIUrl)
	if err != nil {
		log.Printf("[AI] Request to chat-completion provider failed: %v", err)
		return "", err
	}

	if resp.IsError() {
		if result.Error != nil && result.Error.Code == "insufficient_quota" {
			return "", ErrAIQuotaExceeded
		}
		log.Printf("[AI] Provider returned status %d: %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("chat-completion provider returned status %d", resp.StatusCode())
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat-completion provider returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
