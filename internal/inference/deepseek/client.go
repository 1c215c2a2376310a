// Package deepseek implements the inference contract against the DeepSeek
// chat-completion API.
package deepseek

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kerwinzhai/speakdaily/internal/inference"
	"resty.dev/v3"
)

const (
	defaultBaseURL = "https://api.deepseek.com"

	// Deterministic-leaning temperature: responses must conform to a JSON
	// schema, not be creative.
	completionTemperature = 0.3
)

// Client is an inference.Client backed by the DeepSeek chat-completion
// endpoint. Each operation performs a single round trip; failures are never
// retried internally, retry is a manual user action.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

var _ inference.Client = (*Client)(nil)

// NewClient creates a DeepSeek client. An empty apiKey is allowed at
// construction time; calls will fail with inference.ErrMissingCredential.
func NewClient(apiKey, model string) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		apiKey:     apiKey,
		model:      model,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type message struct {
	Role    inference.Role `json:"role"`
	Content string         `json:"content"`
}

type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
}

type choice struct {
	Index        int           `json:"index"`
	Message      choiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type choiceMessage struct {
	Role    inference.Role `json:"role"`
	Content string         `json:"content"`
}

// Translate implements the inference.Client interface.
func (client *Client) Translate(ctx context.Context, sourceText string) (inference.TranslationResult, error) {
	content, err := client.chatCompletion(ctx, translationSystemPrompt, translationUserPrompt(sourceText))
	if err != nil {
		return inference.TranslationResult{}, err
	}

	var result inference.TranslationResult
	if err := decodeCompletion(content, &result); err != nil {
		return inference.TranslationResult{}, err
	}
	return result, nil
}

// Summarize implements the inference.Client interface.
func (client *Client) Summarize(ctx context.Context, conversation []inference.ConversationMessage) (inference.StudySummary, error) {
	content, err := client.chatCompletion(ctx, summarySystemPrompt, summaryUserPrompt(conversation))
	if err != nil {
		return inference.StudySummary{}, err
	}

	var result inference.StudySummary
	if err := decodeCompletion(content, &result); err != nil {
		return inference.StudySummary{}, err
	}
	return result, nil
}

// chatCompletion performs a single-turn completion (one system message, one
// user message) and returns the trimmed assistant content.
func (client *Client) chatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if client.apiKey == "" {
		return "", inference.ErrMissingCredential
	}

	requestBody := chatCompletionRequest{
		Model:       client.model,
		Temperature: completionTemperature,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: inference.RoleUser, Content: userPrompt},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&chatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", &inference.UpstreamError{Detail: fmt.Sprintf("httpClient.Post > %v", err)}
	}
	if response.IsError() {
		return "", &inference.UpstreamError{StatusCode: response.StatusCode(), Detail: response.String()}
	}

	responseBody, ok := response.Result().(*chatCompletionResponse)
	if !ok || responseBody == nil || len(responseBody.Choices) == 0 {
		return "", &inference.UpstreamError{StatusCode: response.StatusCode(), Detail: "empty response body or choices"}
	}

	content := strings.TrimSpace(responseBody.Choices[0].Message.Content)
	if content == "" {
		return "", &inference.UpstreamError{StatusCode: response.StatusCode(), Detail: "empty completion content"}
	}

	slog.Default().Debug("deepseek completion",
		"model", client.model,
		"content", content,
	)
	return content, nil
}

// decodeCompletion recovers the first JSON object embedded in content and
// decodes it into target. When no object is found the full content is
// decoded as-is so that the decode failure carries the original text.
func decodeCompletion(content string, target any) error {
	jsonText, err := ExtractFirstJSONObject(content)
	if err != nil {
		jsonText = content
	}
	if err := json.Unmarshal([]byte(jsonText), target); err != nil {
		return &inference.MalformedResponseError{Content: content, Err: err}
	}
	return nil
}
