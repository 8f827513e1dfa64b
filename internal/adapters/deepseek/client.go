// Package deepseek implements the diet-plan client against the DeepSeek
// chat-completions API: one synchronous request per plan, JSON-object
// response mode, bearer auth with the user-supplied key.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ovsov/healthwise-cli/internal/domain"
	"github.com/ovsov/healthwise-cli/internal/ports"
)

const (
	DefaultBaseURL = "https://api.deepseek.com"

	completionsPath  = "/chat/completions"
	modelID          = "deepseek-chat"
	temperature      = 0.7
	maxResponseBytes = 1 << 20
)

const systemInstruction = `You are an expert nutritionist and a creative chef. Your primary goal is to create a healthy one-day diet plan that is heavily based on the user's stated preferences. The user's preferences are the most important factor to consider.

You must also provide a step-by-step "thinking process" explaining how you designed the plan. This should detail how you incorporated the health data and, most importantly, the user's preferences into your meal choices.

You MUST respond with a JSON object that strictly follows this structure: {"breakfast": {"title": "string", "description": "string"}, "lunch": {"title": "string", "description": "string"}, "dinner": {"title": "string", "description": "string"}, "snacks": {"title": "string", "description": "string"}, "notes": "string", "thinkingProcess": "string"}.
The language of the entire response must be English.`

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.PlanClient = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the plan request and parses the structured reply. An
// empty key fails before any network I/O.
func (c Client) Generate(ctx context.Context, entry domain.HealthEntry, preferences string, apiKey string) (domain.DietPlan, error) {
	if strings.TrimSpace(apiKey) == "" {
		return domain.DietPlan{}, domain.ErrMissingCredential
	}

	payload := chatRequest{
		Model: modelID,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userPrompt(entry, preferences)},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
		Temperature:    temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.DietPlan{}, fmt.Errorf("encode plan request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	endpoint := strings.TrimRight(c.baseURL(), "/") + completionsPath
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.DietPlan{}, fmt.Errorf("create plan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.DietPlan{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.DietPlan{}, fmt.Errorf("%w: %s", domain.ErrUpstream, decodeError(resp))
	}

	var reply chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&reply); err != nil {
		return domain.DietPlan{}, fmt.Errorf("%w: decode envelope: %v", domain.ErrMalformedResponse, err)
	}
	if len(reply.Choices) == 0 {
		return domain.DietPlan{}, fmt.Errorf("%w: reply holds no choices", domain.ErrMalformedResponse)
	}

	var plan domain.DietPlan
	if err := json.Unmarshal([]byte(reply.Choices[0].Message.Content), &plan); err != nil {
		return domain.DietPlan{}, fmt.Errorf("%w: decode plan content: %v", domain.ErrMalformedResponse, err)
	}

	return plan, nil
}

func userPrompt(entry domain.HealthEntry, preferences string) string {
	if strings.TrimSpace(preferences) == "" {
		preferences = "No particular preferences. Focus on healthy balance."
	}

	return fmt.Sprintf(`Create a healthy one-day diet plan from the health data and the user's preferences below.

Health data:
- Resting heart rate: %d bpm
- Blood oxygen saturation (SpO2): %d%%
- Stress level: %d/100
- Sleep duration: %.1f hours

User dietary preferences (most important):
- %s

Provide a balanced plan for breakfast, lunch, dinner and snacks, plus a short overall note and a thinking process.`,
		entry.HeartRate, entry.SpO2, entry.Stress, entry.SleepHours, preferences)
}

func decodeError(resp *http.Response) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil || payload.Error.Message == "" {
		return fmt.Sprintf("status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return payload.Error.Message
}

func (c Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}

	return DefaultBaseURL
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.RequestTimeout)
}
