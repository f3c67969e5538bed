package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var ErrUnparseableClassification = errors.New("unparseable classification")

// NewAIClassifier builds the configured fallback classifier, or returns nil
// when none is configured.
func NewAIClassifier(cfg config.AIConfig, logger *slog.Logger) AIClassifierInterface {
	if !cfg.AIEnabled() {
		return nil
	}
	switch cfg.Provider {
	case config.AIProviderAnthropic:
		return NewAnthropicClassifier(cfg, logger)
	default:
		return NewGeminiClassifier(cfg, logger)
	}
}

func classificationPrompt(text string) string {
	return "Categorize this financial transaction merchant/description into exactly ONE category. " +
		"Choose from: " + strings.Join(models.AICategories(), ", ") + ". " +
		`Respond with ONLY a JSON object: {"category":"CategoryName","confidence":0.95}` + "\n\n" +
		"Merchant: " + text
}

// GeminiClassifier calls the Gemini generateContent endpoint.
type GeminiClassifier struct {
	config config.AIConfig
	client *http.Client
	logger *slog.Logger
}

func NewGeminiClassifier(cfg config.AIConfig, logger *slog.Logger) *GeminiClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiClassifier{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (g *GeminiClassifier) Name() string {
	return config.AIProviderGemini
}

func (g *GeminiClassifier) Classify(ctx context.Context, text string) (*models.AIClassification, error) {
	request := dto.GeminiGenerateRequest{
		Contents: []dto.GeminiContent{{
			Role:  "user",
			Parts: []dto.GeminiPart{{Text: classificationPrompt(text)}},
		}},
		GenerationConfig: dto.GeminiGenerationConfig{
			MaxOutputTokens: g.config.MaxOutputTokens,
			Temperature:     g.config.Temperature,
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.config.GeminiBaseURL, url.PathEscape(g.config.GeminiModel), url.QueryEscape(g.config.GeminiAPIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &apperrors.ExternalServiceError{Service: g.Name(), Operation: "generateContent", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.ExternalServiceError{Service: g.Name(), Operation: "generateContent", Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp dto.GeminiErrorResponse
		message := string(respBody)
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		g.logger.ErrorContext(ctx, "gemini request failed",
			"status", resp.StatusCode,
			"message", message,
		)
		return nil, &apperrors.ExternalServiceError{
			Service:    g.Name(),
			Operation:  "generateContent",
			StatusCode: resp.StatusCode,
			Err:        errors.New(message),
		}
	}

	var generated dto.GeminiGenerateResponse
	if err := json.Unmarshal(respBody, &generated); err != nil {
		return nil, &apperrors.ExternalServiceError{Service: g.Name(), Operation: "generateContent", Err: fmt.Errorf("decode response: %w", err)}
	}

	return parseAIResponse(generated.FirstText())
}

// AnthropicClassifier calls the Anthropic messages API.
type AnthropicClassifier struct {
	config config.AIConfig
	client anthropic.Client
	logger *slog.Logger
}

func NewAnthropicClassifier(cfg config.AIConfig, logger *slog.Logger, opts ...option.RequestOption) *AnthropicClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	clientOpts := append([]option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout),
	}, opts...)

	return &AnthropicClassifier{
		config: cfg,
		client: anthropic.NewClient(clientOpts...),
		logger: logger,
	}
}

func (a *AnthropicClassifier) Name() string {
	return config.AIProviderAnthropic
}

func (a *AnthropicClassifier) Classify(ctx context.Context, text string) (*models.AIClassification, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.config.AnthropicModel),
		MaxTokens:   int64(a.config.MaxOutputTokens),
		Temperature: anthropic.Float(a.config.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(classificationPrompt(text))),
		},
	})
	if err != nil {
		extErr := &apperrors.ExternalServiceError{Service: a.Name(), Operation: "messages", Err: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			extErr.StatusCode = apiErr.StatusCode
		}
		a.logger.ErrorContext(ctx, "anthropic request failed", "error", err)
		return nil, extErr
	}

	var responseText strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText.WriteString(block.Text)
		}
	}

	return parseAIResponse(responseText.String())
}

// parseAIResponse decodes the classifier's answer. Markdown fences are removed
// and decoding starts at the first '{', so prose before or after the object is
// ignored. The object itself must be valid JSON with a known category and a
// confidence in [0, 1].
func parseAIResponse(raw string) (*models.AIClassification, error) {
	text := stripCodeFence(raw)
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON object in %q", ErrUnparseableClassification, truncate(raw, 80))
	}
	text = text[start:]

	var answer dto.AIClassification
	if err := json.NewDecoder(strings.NewReader(text)).Decode(&answer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableClassification, err)
	}

	category := models.CanonicalCategory(answer.Category)
	if category == "" || category == models.CategoryUncategorized {
		return nil, fmt.Errorf("%w: category %q is not allowed", ErrUnparseableClassification, answer.Category)
	}
	if answer.Confidence == nil {
		return nil, fmt.Errorf("%w: missing confidence", ErrUnparseableClassification)
	}
	if *answer.Confidence < 0 || *answer.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %v out of range", ErrUnparseableClassification, *answer.Confidence)
	}

	return &models.AIClassification{Category: category, Confidence: *answer.Confidence}, nil
}

// stripCodeFence returns the body of the first ``` fenced block, or the trimmed
// input when there is none.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	start := strings.Index(text, "```")
	if start < 0 {
		return text
	}

	body := text[start+3:]
	if newline := strings.IndexByte(body, '\n'); newline >= 0 && !strings.Contains(body[:newline], "{") {
		body = body[newline+1:]
	}
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
