package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/suite"
)

type AIClassifierSuite struct {
	suite.Suite
	ctx    context.Context
	logger *slog.Logger
	cfg    config.AIConfig
}

func (s *AIClassifierSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.DiscardHandler)
	s.cfg = config.AIConfig{
		Provider:        config.AIProviderGemini,
		GeminiAPIKey:    "test-key",
		GeminiModel:     "test-model",
		AnthropicAPIKey: "sk-test",
		AnthropicModel:  "claude-test",
		Timeout:         2 * time.Second,
		MaxOutputTokens: 64,
	}
}

func TestAIClassifierSuite(t *testing.T) {
	suite.Run(t, new(AIClassifierSuite))
}

func (s *AIClassifierSuite) geminiServer(status int, text string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/models/test-model:generateContent", r.URL.Path)
		s.Equal("test-key", r.URL.Query().Get("key"))

		var request dto.GeminiGenerateRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&request))
		s.Require().Len(request.Contents, 1)
		s.Contains(request.Contents[0].Parts[0].Text, "Merchant: Magnum Almaty")
		s.Contains(request.Contents[0].Parts[0].Text, "Subscriptions, Transfers, Other")
		s.Equal(64, request.GenerationConfig.MaxOutputTokens)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(dto.GeminiGenerateResponse{
			Candidates: []dto.GeminiCandidate{{
				Content: dto.GeminiContent{Parts: []dto.GeminiPart{{Text: text}}},
			}},
		})
	}))
	s.T().Cleanup(server.Close)
	return server
}

func (s *AIClassifierSuite) TestGemini_Success() {
	server := s.geminiServer(http.StatusOK, "```json\n{\"category\": \"Food\", \"confidence\": 0.97}\n```")
	s.cfg.GeminiBaseURL = server.URL

	result, err := NewGeminiClassifier(s.cfg, s.logger).Classify(s.ctx, "Magnum Almaty")
	s.Require().NoError(err)
	s.Equal(models.CategoryFood, result.Category)
	s.InDelta(0.97, result.Confidence, 1e-9)
}

func (s *AIClassifierSuite) TestGemini_ErrorStatus() {
	server := s.geminiServer(http.StatusTooManyRequests, "")
	s.cfg.GeminiBaseURL = server.URL

	_, err := NewGeminiClassifier(s.cfg, s.logger).Classify(s.ctx, "Magnum Almaty")
	s.ErrorIs(err, apperrors.ErrExternalService)

	var extErr *apperrors.ExternalServiceError
	s.Require().ErrorAs(err, &extErr)
	s.Equal(http.StatusTooManyRequests, extErr.StatusCode)
	s.True(extErr.Retryable())
	s.Contains(extErr.Error(), "quota exceeded")
}

func (s *AIClassifierSuite) TestGemini_UnreachableHost() {
	server := httptest.NewServer(http.NotFoundHandler())
	s.cfg.GeminiBaseURL = server.URL
	server.Close()

	_, err := NewGeminiClassifier(s.cfg, s.logger).Classify(s.ctx, "Magnum Almaty")
	s.ErrorIs(err, apperrors.ErrExternalService)
}

func (s *AIClassifierSuite) TestGemini_ProseAnswer() {
	server := s.geminiServer(http.StatusOK, "I think this is probably food.")
	s.cfg.GeminiBaseURL = server.URL

	_, err := NewGeminiClassifier(s.cfg, s.logger).Classify(s.ctx, "Magnum Almaty")
	s.ErrorIs(err, ErrUnparseableClassification)
}

func (s *AIClassifierSuite) TestGemini_ObjectInsideProse() {
	server := s.geminiServer(http.StatusOK, "Here is the classification: {\"category\":\"Shopping\",\"confidence\":0.95} Let me know.")
	s.cfg.GeminiBaseURL = server.URL

	result, err := NewGeminiClassifier(s.cfg, s.logger).Classify(s.ctx, "Magnum Almaty")
	s.Require().NoError(err)
	s.Equal(models.CategoryShopping, result.Category)
	s.InDelta(0.95, result.Confidence, 1e-9)
}

func (s *AIClassifierSuite) TestAnthropic_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/messages", r.URL.Path)
		s.Equal("sk-test", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "{\"category\":\"transport\",\"confidence\":0.91}"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 12}
		}`)
	}))
	defer server.Close()

	classifier := NewAnthropicClassifier(s.cfg, s.logger, option.WithBaseURL(server.URL))
	result, err := classifier.Classify(s.ctx, "Magnum Almaty")
	s.Require().NoError(err)
	s.Equal(models.CategoryTransport, result.Category)
	s.Equal(config.AIProviderAnthropic, classifier.Name())
}

func (s *AIClassifierSuite) TestAnthropic_ServerError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"overloaded"}}`)
	}))
	defer server.Close()

	_, err := NewAnthropicClassifier(s.cfg, s.logger, option.WithBaseURL(server.URL)).Classify(s.ctx, "x")
	var extErr *apperrors.ExternalServiceError
	s.Require().ErrorAs(err, &extErr)
	s.Equal(http.StatusInternalServerError, extErr.StatusCode)
}

func (s *AIClassifierSuite) TestNewAIClassifier() {
	s.IsType(&GeminiClassifier{}, NewAIClassifier(s.cfg, s.logger))

	s.cfg.Provider = config.AIProviderAnthropic
	s.IsType(&AnthropicClassifier{}, NewAIClassifier(s.cfg, s.logger))

	s.cfg.Provider = config.AIProviderNone
	s.Nil(NewAIClassifier(s.cfg, s.logger))

	s.cfg.Provider = config.AIProviderGemini
	s.cfg.GeminiAPIKey = ""
	s.Nil(NewAIClassifier(s.cfg, s.logger))
}

func (s *AIClassifierSuite) TestParseAIResponse() {
	testCases := []struct {
		name       string
		raw        string
		category   string
		confidence float64
		wantErr    bool
	}{
		{"plain object", `{"category":"Shopping","confidence":0.95}`, models.CategoryShopping, 0.95, false},
		{"json fence", "```json\n{\"category\":\"Food\",\"confidence\":0.5}\n```", models.CategoryFood, 0.5, false},
		{"bare fence", "```\n{\"category\":\"Health\",\"confidence\":1}\n```", models.CategoryHealth, 1, false},
		{"prose around fence", "Sure!\n```json\n{\"category\":\"Other\",\"confidence\":0.2}\n```\nHope it helps", models.CategoryOther, 0.2, false},
		{"lowercase category", `{"category":"salary","confidence":0.99}`, models.CategorySalary, 0.99, false},
		{"trailing text ignored", `{"category":"Education","confidence":0.7} because courses`, models.CategoryEducation, 0.7, false},
		{"unknown fields ignored", `{"category":"Utilities","confidence":0.8,"reason":"power bill"}`, models.CategoryUtilities, 0.8, false},
		{"empty", "", "", 0, true},
		{"prose only", "This looks like groceries", "", 0, true},
		{"leading prose without fence", `Answer: {"category":"Food","confidence":0.9}`, models.CategoryFood, 0.9, false},
		{"prose on both sides", "Here is the classification: {\"category\":\"Shopping\",\"confidence\":0.95}", models.CategoryShopping, 0.95, false},
		{"prose lines around object", "Sure.\n{\"category\":\"Transport\",\"confidence\":0.6}\nLet me know.", models.CategoryTransport, 0.6, false},
		{"prose with broken object", `Answer: {"category":"Food",`, "", 0, true},
		{"truncated json", `{"category":"Food","confid`, "", 0, true},
		{"unknown category", `{"category":"Groceries","confidence":0.9}`, "", 0, true},
		{"uncategorized not allowed", `{"category":"Uncategorized","confidence":0.9}`, "", 0, true},
		{"missing confidence", `{"category":"Food"}`, "", 0, true},
		{"confidence above one", `{"category":"Food","confidence":1.5}`, "", 0, true},
		{"negative confidence", `{"category":"Food","confidence":-0.1}`, "", 0, true},
		{"confidence as string", `{"category":"Food","confidence":"high"}`, "", 0, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result, err := parseAIResponse(tc.raw)
			if tc.wantErr {
				s.ErrorIs(err, ErrUnparseableClassification)
				s.Nil(result)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.category, result.Category)
			s.InDelta(tc.confidence, result.Confidence, 1e-9)
		})
	}
}

func (s *AIClassifierSuite) TestClassificationPromptListsEveryCategory() {
	prompt := classificationPrompt("Kaspi Magazin")
	for _, category := range models.AICategories() {
		s.Contains(prompt, category)
	}
	s.True(strings.HasSuffix(prompt, "Merchant: Kaspi Magazin"))
}
