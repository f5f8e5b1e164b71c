package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"career-ai-go/internal/config"
)

// GroqCompletionClient talks to an OpenAI-compatible chat completions
// endpoint (Groq by default). It never retries: a single failed attempt
// surfaces to the caller, who falls back to static data.
type GroqCompletionClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
	timeout    time.Duration
	logger     *log.Logger
}

// GroqOption configures the completion client.
type GroqOption func(*GroqCompletionClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) GroqOption {
	return func(c *GroqCompletionClient) {
		c.httpClient = client
	}
}

// WithCompletionLogger sets a custom logger.
func WithCompletionLogger(logger *log.Logger) GroqOption {
	return func(c *GroqCompletionClient) {
		c.logger = logger
	}
}

// NewGroqCompletionClient builds a client from the LLM config. An empty
// API key is not an error: the client just reports unavailable and every
// feature degrades to fallback data.
func NewGroqCompletionClient(cfg config.LLMConfig, options ...GroqOption) *GroqCompletionClient {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultModel
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client := &GroqCompletionClient{
		apiKey:     cfg.APIKey,
		apiURL:     apiURL,
		model:      model,
		httpClient: &http.Client{},
		timeout:    timeout,
		logger:     log.New(os.Stderr, "[GroqClient] ", log.LstdFlags),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// IsAvailable reports whether a completion credential is configured.
func (c *GroqCompletionClient) IsAvailable() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// ChatCompletionMessage is one message of an OpenAI-compatible request.
type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the OpenAI-compatible request body.
type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

// ChatCompletionChoice is one generated choice of the response.
type ChatCompletionChoice struct {
	Index        int                   `json:"index"`
	Message      ChatCompletionMessage `json:"message"`
	FinishReason string                `json:"finish_reason"`
}

// ChatCompletionResponse is the OpenAI-compatible response body.
type ChatCompletionResponse struct {
	ID      string                 `json:"id,omitempty"`
	Model   string                 `json:"model,omitempty"`
	Choices []ChatCompletionChoice `json:"choices"`
	Error   *APIError              `json:"error,omitempty"`
}

// APIError is an API-level error some providers return with 200 OK.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// Complete sends a single-turn prompt and returns the first choice's
// content, trimmed.
func (c *GroqCompletionClient) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	messages := []ChatCompletionMessage{
		{Role: "user", Content: prompt},
	}
	return c.ChatCompletion(ctx, messages, temperature, maxTokens)
}

// ChatCompletion sends a full message list (system prompt and history are
// the caller's responsibility) and returns the first choice's content,
// trimmed.
func (c *GroqCompletionClient) ChatCompletion(ctx context.Context, messages []ChatCompletionMessage, temperature float64, maxTokens int) (string, error) {
	reqBody := ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Printf("calling %s (model=%s, messages=%d, max_tokens=%d)", c.apiURL, c.model, len(messages), maxTokens)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Printf("completion endpoint returned %d: %.200s", resp.StatusCode, string(body))
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}

	if completion.Error != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: completion.Error.Message}
	}

	if len(completion.Choices) == 0 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: "no choices in completion response"}
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	c.logger.Printf("completion returned %d chars", len(content))
	return content, nil
}
