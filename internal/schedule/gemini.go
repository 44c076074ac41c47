// Package schedule asks an external generation model for a full week's
// nurse schedule. The five ward scheduling rules travel inside the prompt;
// this package enforces only the shape of the JSON that comes back, never
// the rules themselves.
package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nurse-roster/internal/models"

	"go.uber.org/zap"
)

// ErrGeneration is the single error kind surfaced for any failed generation
// attempt: transport failure, API error, malformed JSON or a response
// missing required keys. The underlying cause is logged, not returned.
var ErrGeneration = errors.New("could not generate schedule")

// Config carries the settings for the Gemini client. The API key is
// injected here at construction time and never read from ambient state.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns the production defaults for the given key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   "gemini-2.5-flash",
		Timeout: 2 * time.Minute,
	}
}

// GeminiClient implements Generator against the Gemini generateContent API.
type GeminiClient struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGeminiClient creates a client with the given config.
func NewGeminiClient(cfg Config, logger *zap.Logger) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig(cfg.APIKey).BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig(cfg.APIKey).Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig(cfg.APIKey).Timeout
	}
	return &GeminiClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64                `json:"temperature"`
	ResponseMimeType string                 `json:"responseMimeType"`
	ResponseSchema   map[string]interface{} `json:"responseSchema"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
			Role  string       `json:"role"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Generate issues one generateContent call for the given nurse snapshot and
// returns the shape-validated schedule. A single failed attempt surfaces
// immediately as ErrGeneration; there are no retries.
func (c *GeminiClient) Generate(ctx context.Context, nurses []models.Nurse) (models.Schedule, error) {
	if c.cfg.APIKey == "" {
		c.logger.Error("generation request refused", zap.String("cause", "API key not configured"))
		return nil, ErrGeneration
	}

	started := time.Now()

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: BuildPrompt(nurses)}},
			},
		},
		GenerationConfig: geminiGenerationConfig{
			// Moderately high temperature: varied but still valid rosters.
			Temperature:      0.8,
			ResponseMimeType: "application/json",
			ResponseSchema:   scheduleResponseSchema(),
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("generation request marshal failed", zap.Error(err))
		return nil, ErrGeneration
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("generation request build failed", zap.Error(err))
		return nil, ErrGeneration
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("generation request failed", zap.Error(err))
		return nil, ErrGeneration
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("generation response read failed", zap.Error(err))
		return nil, ErrGeneration
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("generation request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, ErrGeneration
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		c.logger.Error("generation response parse failed", zap.Error(err))
		return nil, ErrGeneration
	}
	if genResp.Error != nil {
		c.logger.Error("generation API error",
			zap.Int("code", genResp.Error.Code),
			zap.String("message", genResp.Error.Message))
		return nil, ErrGeneration
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("generation returned no completion")
		return nil, ErrGeneration
	}

	var text strings.Builder
	for _, part := range genResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	sched, err := ParseSchedule([]byte(strings.TrimSpace(text.String())))
	if err != nil {
		c.logger.Error("generation response shape invalid", zap.Error(err))
		return nil, ErrGeneration
	}

	c.logger.Info("schedule generated",
		zap.Int("nurses", len(nurses)),
		zap.Duration("elapsed", time.Since(started)))
	return sched, nil
}
