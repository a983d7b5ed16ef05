package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Felipeu28/CampaignControl-sub001/logging"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Generator is the boundary the controllers talk to. The production
// implementation is Client; tests substitute their own.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	GenerateImage(ctx context.Context, model, prompt string, opts ImageOptions) (string, error)
}

// ImageOptions carries the optional knobs of an image request.
type ImageOptions struct {
	AspectRatio string
	Quality     string
}

// Client talks to an OpenAI-compatible generation API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality,omitempty"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateText sends a single-turn chat completion and returns the text.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingCredential
	}

	body, err := c.post(ctx, "/chat/completions", chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("ai: failed to parse text response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("ai: empty completion response")
	}
	return parsed.Choices[0].Message.Content, nil
}

// GenerateImage requests a single image and returns its URL.
func (c *Client) GenerateImage(ctx context.Context, model, prompt string, opts ImageOptions) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingCredential
	}

	body, err := c.post(ctx, "/images/generations", imageRequest{
		Model:   model,
		Prompt:  prompt,
		N:       1,
		Size:    sizeForAspectRatio(opts.AspectRatio),
		Quality: opts.Quality,
	})
	if err != nil {
		return "", err
	}

	var parsed imageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("ai: failed to parse image response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return "", fmt.Errorf("ai: empty image response")
	}
	return parsed.Data[0].URL, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ai: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("ai: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logging.Log.Errorf("AI: generation call failed with status %d: %s", resp.StatusCode, string(body))
		return nil, classifyStatus(resp.StatusCode, body)
	}
	return body, nil
}

func classifyStatus(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrMissingCredential, status)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", ErrQuotaExceeded, status)
	case status == http.StatusBadRequest && looksSafetyRejected(body):
		return fmt.Errorf("%w (status %d)", ErrSafetyRejected, status)
	default:
		return fmt.Errorf("ai: generation failed (status %d): %s", status, string(body))
	}
}

func looksSafetyRejected(body []byte) bool {
	lowered := strings.ToLower(string(body))
	return strings.Contains(lowered, "content_policy") || strings.Contains(lowered, "safety")
}

func sizeForAspectRatio(ratio string) string {
	switch ratio {
	case "16:9":
		return "1792x1024"
	case "9:16":
		return "1024x1792"
	default:
		return "1024x1024"
	}
}
