package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"go.uber.org/zap"
)

const recommendationSystemPrompt = "You are an assistant that gives concise, practical eco-driving recommendations."

// OpenAIRecommendationAdapter generates recommendation text through the OpenAI
// chat completions API.
type OpenAIRecommendationAdapter struct {
	baseURL    string
	model      string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewOpenAIRecommendationAdapter creates a recommendation adapter for one model.
func NewOpenAIRecommendationAdapter(baseURL, model string, timeout time.Duration, logger *zap.Logger) *OpenAIRecommendationAdapter {
	return &OpenAIRecommendationAdapter{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateRecommendation sends the prompt as a system/user message pair and
// returns the first choice's text.
func (a *OpenAIRecommendationAdapter) GenerateRecommendation(ctx context.Context, prompt, apiKey string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	payload := chatCompletionRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: recommendationSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %v", route.ErrRecommendationUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", route.ErrRecommendationUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", route.ErrRecommendationUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", route.ErrRecommendationUnavailable, resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", route.ErrRecommendationUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", route.ErrRecommendationUnavailable)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
